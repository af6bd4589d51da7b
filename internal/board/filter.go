package board

import (
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Matches reports whether a card's title or description contains the query
// as typed, ignoring case. A blank query matches every card.
func Matches(card models.Card, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(card.Title), q) ||
		strings.Contains(strings.ToLower(card.Description), q)
}

// Filtered returns a snapshot of the board keeping only matching cards.
// Every column is kept, even when none of its cards match.
func (b *Board) Filtered(query string) []models.Column {
	cols := b.Columns()
	if strings.TrimSpace(query) == "" {
		return cols
	}
	for i := range cols {
		kept := cols[i].Tasks[:0]
		for _, card := range cols[i].Tasks {
			if Matches(card, query) {
				kept = append(kept, card)
			}
		}
		cols[i].Tasks = kept
	}
	return cols
}

// ParseLabels splits comma-separated label text into trimmed, non-empty labels.
// Returns nil when nothing remains.
func ParseLabels(s string) []string {
	return normalizeLabels(strings.Split(s, ","))
}

// JoinLabels renders labels back into the comma-separated edit form
func JoinLabels(labels []string) string {
	return strings.Join(labels, ", ")
}

func normalizeLabels(labels []string) []string {
	var out []string
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
