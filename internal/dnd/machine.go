// Package dnd tracks an in-progress drag of a card or a column and resolves
// the drop into a board move.
//
// The drag state is a closed set of variants (Idle, DraggingCard,
// DraggingColumn) plus a single drop target, so a card highlight and a column
// highlight can never be active at the same time.
package dnd

import (
	"github.com/thenoetrevino/tablero/internal/models"
)

// State is one of Idle, DraggingCard or DraggingColumn
type State interface {
	isState()
}

// Idle means nothing is being dragged
type Idle struct{}

// DraggingCard remembers where the dragged card came from
type DraggingCard struct {
	SourceColumn string
	Card         string
}

// DraggingColumn remembers the display index the column was picked up at
type DraggingColumn struct {
	Column      string
	SourceIndex int
}

func (Idle) isState()           {}
func (DraggingCard) isState()   {}
func (DraggingColumn) isState() {}

// TargetKind says what is currently highlighted as the drop destination
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCard
	TargetColumn
)

// Target is the current drop target.
// For TargetCard, Side is the insertion side relative to Card.
type Target struct {
	Kind   TargetKind
	Column string
	Index  int
	Card   string
	Side   models.Side
}

// Slot identifies a column by id and display index
type Slot struct {
	ID    string
	Index int
}

// Outcome is the result of a drop.
// Fallback is set when the tracked hover target did not match where the drop
// actually happened and the move was resolved against the drop location.
type Outcome struct {
	Move     models.Move
	Fallback bool
}

// Rejected reports whether the drop leaves the board unchanged
func (o Outcome) Rejected() bool {
	return o.Move.Kind == models.MoveNone
}

// Machine is the drag-and-drop state machine.
// The zero value is Idle and ready to use.
type Machine struct {
	state  State
	target Target
}

// State returns the current drag variant
func (m *Machine) State() State {
	if m.state == nil {
		return Idle{}
	}
	return m.state
}

// Target returns the current drop target
func (m *Machine) Target() Target {
	return m.target
}

// Dragging reports whether a card or column is being dragged
func (m *Machine) Dragging() bool {
	_, idle := m.State().(Idle)
	return !idle
}

// DraggedCard returns the id of the card being dragged, if any
func (m *Machine) DraggedCard() (string, bool) {
	if s, ok := m.state.(DraggingCard); ok {
		return s.Card, true
	}
	return "", false
}

// DraggedColumn returns the id of the column being dragged, if any
func (m *Machine) DraggedColumn() (string, bool) {
	if s, ok := m.state.(DraggingColumn); ok {
		return s.Column, true
	}
	return "", false
}

// StartCard picks up a card. Any previous drag is discarded.
func (m *Machine) StartCard(colID, cardID string) {
	m.state = DraggingCard{SourceColumn: colID, Card: cardID}
	m.target = Target{}
}

// StartColumn picks up a column. Any previous drag is discarded.
func (m *Machine) StartColumn(col Slot) {
	m.state = DraggingColumn{Column: col.ID, SourceIndex: col.Index}
	m.target = Target{}
}

// HoverCard updates the target while the cursor is over a card.
//
// When dragging a card over another card of its own column, the insertion
// side is taken from the cursor row relative to the hovered card's vertical
// midpoint: top half inserts before, bottom half after. Hovering over a card
// in any other column counts as hovering that column.
func (m *Machine) HoverCard(col Slot, cardID string, cursorY, top, height int) {
	switch s := m.State().(type) {
	case DraggingCard:
		if col.ID != s.SourceColumn {
			m.HoverColumn(col)
			return
		}
		if cardID == s.Card {
			m.target = Target{}
			return
		}
		side := models.After
		if (cursorY-top)*2 < height {
			side = models.Before
		}
		m.target = Target{Kind: TargetCard, Column: col.ID, Index: col.Index, Card: cardID, Side: side}
	case DraggingColumn:
		m.HoverColumn(col)
	}
}

// HoverColumn updates the target while the cursor is over a column but not
// over a specific card.
func (m *Machine) HoverColumn(col Slot) {
	switch s := m.State().(type) {
	case DraggingCard:
		// Gaps in the source column keep whatever card target was last tracked.
		if col.ID == s.SourceColumn {
			return
		}
		m.target = Target{Kind: TargetColumn, Column: col.ID, Index: col.Index}
	case DraggingColumn:
		if col.Index == s.SourceIndex {
			m.target = Target{}
			return
		}
		m.target = Target{Kind: TargetColumn, Column: col.ID, Index: col.Index}
	}
}

// Locator reports where a column or card currently sits on the board
type Locator interface {
	IndexOf(colID string) int
	ColumnOf(cardID string) (string, bool)
}

// Resync re-reads the dragged item's position from the board, which may have
// changed through the keyboard since the drag started. The target is dropped
// when the source moved. Returns false, leaving the machine Idle, if the
// dragged item is gone.
func (m *Machine) Resync(loc Locator) bool {
	switch s := m.State().(type) {
	case DraggingCard:
		colID, ok := loc.ColumnOf(s.Card)
		if !ok {
			m.Cancel()
			return false
		}
		if colID != s.SourceColumn {
			m.state = DraggingCard{SourceColumn: colID, Card: s.Card}
			m.target = Target{}
		}
	case DraggingColumn:
		i := loc.IndexOf(s.Column)
		if i < 0 {
			m.Cancel()
			return false
		}
		if i != s.SourceIndex {
			m.state = DraggingColumn{Column: s.Column, SourceIndex: i}
			m.target = Target{}
		}
	}
	return true
}

// Leave clears the target when the cursor is outside every column
func (m *Machine) Leave() {
	m.target = Target{}
}

// Cancel abandons the drag without moving anything
func (m *Machine) Cancel() {
	m.state = Idle{}
	m.target = Target{}
}

// Drop ends the drag over the given column and resolves the move.
// The machine is Idle afterwards whatever the outcome.
//
// Card dropped on its own column: reorder relative to the tracked card
// target, or rejected when there is none. Card dropped on another column:
// append at the end; if the tracked target was not that column the outcome is
// flagged Fallback. Column dropped on another column: move to that index.
func (m *Machine) Drop(col Slot) Outcome {
	defer m.Cancel()

	switch s := m.State().(type) {
	case DraggingCard:
		if col.ID == s.SourceColumn {
			if m.target.Kind != TargetCard || m.target.Column != col.ID {
				return Outcome{}
			}
			return Outcome{Move: models.Move{
				Kind:       models.MoveReorder,
				CardID:     s.Card,
				FromColumn: s.SourceColumn,
				ToColumn:   col.ID,
				TargetCard: m.target.Card,
				Side:       m.target.Side,
			}}
		}
		stale := m.target.Kind != TargetColumn || m.target.Column != col.ID
		return Outcome{
			Move: models.Move{
				Kind:       models.MoveTransfer,
				CardID:     s.Card,
				FromColumn: s.SourceColumn,
				ToColumn:   col.ID,
			},
			Fallback: stale,
		}

	case DraggingColumn:
		if col.Index == s.SourceIndex {
			return Outcome{}
		}
		stale := m.target.Kind != TargetColumn || m.target.Index != col.Index
		return Outcome{
			Move: models.Move{
				Kind:      models.MoveColumnReorder,
				FromIndex: s.SourceIndex,
				ToIndex:   col.Index,
			},
			Fallback: stale,
		}
	}
	return Outcome{}
}

// IsCardTarget reports whether a card is highlighted and on which side
func (m *Machine) IsCardTarget(cardID string) (bool, models.Side) {
	if m.target.Kind == TargetCard && m.target.Card == cardID {
		return true, m.target.Side
	}
	return false, models.Before
}

// IsColumnTarget reports whether a column is highlighted as a drop target
func (m *Machine) IsColumnTarget(colID string) bool {
	return m.target.Kind == TargetColumn && m.target.Column == colID
}
