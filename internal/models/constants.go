package models

// ============================================================================
// ID PREFIXES
// ============================================================================

// Prefixes for timestamp-derived ids
const (
	CardIDPrefix   = "task-"
	ColumnIDPrefix = "col-"
)

// ============================================================================
// MOVE KINDS
// ============================================================================

// MoveKind identifies which list splice a drop resolves to
type MoveKind int

const (
	// MoveNone means the drop was rejected and the board is left untouched
	MoveNone MoveKind = iota
	// MoveReorder reinserts a card within its own column
	MoveReorder
	// MoveTransfer removes a card from one column and appends it to another
	MoveTransfer
	// MoveColumnReorder moves a column to a new index
	MoveColumnReorder
)

func (k MoveKind) String() string {
	switch k {
	case MoveReorder:
		return "reorder"
	case MoveTransfer:
		return "transfer"
	case MoveColumnReorder:
		return "column-reorder"
	default:
		return "none"
	}
}

// Side is the insertion side relative to a target card
type Side int

const (
	Before Side = iota
	After
)

func (s Side) String() string {
	if s == After {
		return "after"
	}
	return "before"
}
