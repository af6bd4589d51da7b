package board

import (
	"slices"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// ============================================================================
// COLUMNS
// ============================================================================

// AddColumn appends a new empty column and returns its id.
// The title is trimmed; an empty title is rejected and the board is unchanged.
func (b *Board) AddColumn(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", models.ErrEmptyTitle
	}
	id := b.nextID(models.ColumnIDPrefix)
	b.columns[id] = &column{id: id, title: title, cards: []string{}}
	b.order = append(b.order, id)
	return id, nil
}

// RenameColumn changes a column title. A stale id is a no-op.
func (b *Board) RenameColumn(colID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.ErrEmptyTitle
	}
	if col, ok := b.columns[colID]; ok {
		col.title = title
	}
	return nil
}

// DeleteColumn removes a column and every card it owns.
// Returns the number of cards removed with it.
func (b *Board) DeleteColumn(colID string) int {
	col, ok := b.columns[colID]
	if !ok {
		return 0
	}
	for _, cardID := range col.cards {
		delete(b.cards, cardID)
		delete(b.owner, cardID)
	}
	delete(b.columns, colID)
	if idx := b.IndexOf(colID); idx >= 0 {
		b.order = slices.Delete(b.order, idx, idx+1)
	}
	return len(col.cards)
}

// MoveColumn removes the column at from and reinserts it at to.
// Out-of-range indices and from == to are no-ops.
func (b *Board) MoveColumn(from, to int) bool {
	if from < 0 || from >= len(b.order) || to < 0 || to >= len(b.order) || from == to {
		return false
	}
	id := b.order[from]
	b.order = slices.Delete(b.order, from, from+1)
	b.order = slices.Insert(b.order, to, id)
	return true
}

// ============================================================================
// CARDS
// ============================================================================

// AddCard appends a new card to the end of a column and returns its id.
// Blank titles are rejected; descriptions are trimmed; labels are trimmed
// and blanks dropped.
func (b *Board) AddCard(colID, title, description string, labels []string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", models.ErrEmptyTitle
	}
	col, ok := b.columns[colID]
	if !ok {
		return "", models.ErrColumnNotFound
	}
	id := b.nextID(models.CardIDPrefix)
	b.cards[id] = &models.Card{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(description),
		Labels:      normalizeLabels(labels),
	}
	b.owner[id] = colID
	col.cards = append(col.cards, id)
	return id, nil
}

// UpdateCard replaces a card's title, description and labels in place.
// A stale id is a no-op.
func (b *Board) UpdateCard(cardID, title, description string, labels []string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.ErrEmptyTitle
	}
	card, ok := b.cards[cardID]
	if !ok {
		return nil
	}
	card.Title = title
	card.Description = strings.TrimSpace(description)
	card.Labels = normalizeLabels(labels)
	return nil
}

// DeleteCard removes a card from its column. Returns false for a stale id.
func (b *Board) DeleteCard(cardID string) bool {
	colID, ok := b.owner[cardID]
	if !ok {
		return false
	}
	col := b.columns[colID]
	if idx := slices.Index(col.cards, cardID); idx >= 0 {
		col.cards = slices.Delete(col.cards, idx, idx+1)
	}
	delete(b.cards, cardID)
	delete(b.owner, cardID)
	return true
}

// MoveCardWithin reorders a card inside its own column, placing it before or
// after targetID. An empty or unknown target appends the card at the end.
func (b *Board) MoveCardWithin(colID, cardID, targetID string, side models.Side) bool {
	col, ok := b.columns[colID]
	if !ok || b.owner[cardID] != colID || cardID == targetID {
		return false
	}

	from := slices.Index(col.cards, cardID)
	rest := slices.Delete(slices.Clone(col.cards), from, from+1)

	to := len(rest)
	if targetID != "" {
		if t := slices.Index(rest, targetID); t >= 0 {
			to = t
			if side == models.After {
				to++
			}
		}
	}

	if to == from {
		return false
	}
	col.cards = slices.Insert(rest, to, cardID)
	return true
}

// MoveCard removes a card from its column and appends it to another column.
// Moving to the column that already owns the card is a no-op.
func (b *Board) MoveCard(cardID, toColID string) bool {
	fromColID, ok := b.owner[cardID]
	if !ok || fromColID == toColID {
		return false
	}
	to, ok := b.columns[toColID]
	if !ok {
		return false
	}
	from := b.columns[fromColID]
	if idx := slices.Index(from.cards, cardID); idx >= 0 {
		from.cards = slices.Delete(from.cards, idx, idx+1)
	}
	to.cards = append(to.cards, cardID)
	b.owner[cardID] = toColID
	return true
}

// Apply performs a resolved drop. Returns false when nothing changed.
func (b *Board) Apply(mv models.Move) bool {
	switch mv.Kind {
	case models.MoveReorder:
		return b.MoveCardWithin(mv.FromColumn, mv.CardID, mv.TargetCard, mv.Side)
	case models.MoveTransfer:
		if b.owner[mv.CardID] != mv.FromColumn {
			return false
		}
		return b.MoveCard(mv.CardID, mv.ToColumn)
	case models.MoveColumnReorder:
		return b.MoveColumn(mv.FromIndex, mv.ToIndex)
	}
	return false
}
