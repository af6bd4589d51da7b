// Package board holds the in-memory kanban board.
//
// Columns and cards live in an arena keyed by id. Each column keeps the
// ordered list of the card ids it owns, so a move only splices id slices
// instead of copying card structs around.
package board

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tablero/internal/models"
)

// column is the arena entry for a board column
type column struct {
	id    string
	title string
	cards []string
}

// Board is the single source of truth for columns and cards.
// It is not safe for concurrent use; the TUI owns it and mutates it from
// its update loop only.
type Board struct {
	order   []string
	columns map[string]*column
	cards   map[string]*models.Card
	owner   map[string]string // card id -> column id

	now       func() time.Time
	lastStamp int64
}

// Option configures a Board
type Option func(*Board)

// WithClock overrides the clock used for timestamp-derived ids.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

// New creates an empty board
func New(opts ...Option) *Board {
	b := &Board{
		order:   []string{},
		columns: make(map[string]*column),
		cards:   make(map[string]*models.Card),
		owner:   make(map[string]string),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromColumns builds a board from seed data.
// Duplicate column or card ids are dropped with a warning so the uniqueness
// invariants hold no matter what the seed contains. Missing ids are generated.
func FromColumns(cols []models.Column, opts ...Option) *Board {
	b := New(opts...)
	for _, c := range cols {
		colID := c.ID
		if colID == "" {
			colID = models.ColumnIDPrefix + uuid.NewString()
		}
		if _, dup := b.columns[colID]; dup {
			slog.Warn("dropping duplicate seed column", "column_id", colID)
			continue
		}
		title := strings.TrimSpace(c.Title)
		if title == "" {
			slog.Warn("seed column has empty title", "column_id", colID)
			title = "Untitled"
		}
		b.columns[colID] = &column{id: colID, title: title, cards: []string{}}
		b.order = append(b.order, colID)

		for _, card := range c.Tasks {
			cardID := card.ID
			if cardID == "" {
				cardID = models.CardIDPrefix + uuid.NewString()
			}
			if _, dup := b.cards[cardID]; dup {
				slog.Warn("dropping duplicate seed card", "card_id", cardID, "column_id", colID)
				continue
			}
			if strings.TrimSpace(card.Title) == "" {
				slog.Warn("dropping seed card with empty title", "card_id", cardID)
				continue
			}
			stored := card.Clone()
			stored.ID = cardID
			stored.Title = strings.TrimSpace(stored.Title)
			stored.Labels = normalizeLabels(stored.Labels)
			b.cards[cardID] = &stored
			b.owner[cardID] = colID
			b.columns[colID].cards = append(b.columns[colID].cards, cardID)
		}
	}
	return b
}

// nextID returns a timestamp-derived id that is not in use.
// Two ids requested in the same millisecond get consecutive stamps.
func (b *Board) nextID(prefix string) string {
	stamp := b.now().UnixMilli()
	if stamp <= b.lastStamp {
		stamp = b.lastStamp + 1
	}
	for {
		id := fmt.Sprintf("%s%d", prefix, stamp)
		_, colTaken := b.columns[id]
		_, cardTaken := b.cards[id]
		if !colTaken && !cardTaken {
			b.lastStamp = stamp
			return id
		}
		stamp++
	}
}

// ============================================================================
// READ ACCESS
// ============================================================================

// Len returns the number of columns
func (b *Board) Len() int {
	return len(b.order)
}

// CardCount returns the number of cards across all columns
func (b *Board) CardCount() int {
	return len(b.cards)
}

// ColumnIDs returns the column ids in display order
func (b *Board) ColumnIDs() []string {
	return append([]string(nil), b.order...)
}

// IndexOf returns the display index of a column, or -1
func (b *Board) IndexOf(colID string) int {
	for i, id := range b.order {
		if id == colID {
			return i
		}
	}
	return -1
}

// Column returns a snapshot of one column with its cards
func (b *Board) Column(colID string) (models.Column, error) {
	col, ok := b.columns[colID]
	if !ok {
		return models.Column{}, fmt.Errorf("%w: %s", models.ErrColumnNotFound, colID)
	}
	return b.snapshot(col), nil
}

// Columns returns a snapshot of the whole board in display order.
// The result shares nothing with the board.
func (b *Board) Columns() []models.Column {
	out := make([]models.Column, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.snapshot(b.columns[id]))
	}
	return out
}

// Cards returns a snapshot of the cards in a column, in order.
// A stale column id yields an empty slice.
func (b *Board) Cards(colID string) []models.Card {
	col, ok := b.columns[colID]
	if !ok {
		return []models.Card{}
	}
	return b.snapshot(col).Tasks
}

// Card returns a copy of a card by id
func (b *Board) Card(cardID string) (models.Card, bool) {
	c, ok := b.cards[cardID]
	if !ok {
		return models.Card{}, false
	}
	return c.Clone(), true
}

// ColumnOf returns the id of the column owning a card
func (b *Board) ColumnOf(cardID string) (string, bool) {
	colID, ok := b.owner[cardID]
	return colID, ok
}

func (b *Board) snapshot(col *column) models.Column {
	tasks := make([]models.Card, 0, len(col.cards))
	for _, id := range col.cards {
		tasks = append(tasks, b.cards[id].Clone())
	}
	return models.Column{ID: col.id, Title: col.title, Tasks: tasks}
}
