package models

// Move is a resolved drop, ready to be applied to the board
type Move struct {
	Kind MoveKind

	// Card moves
	CardID     string
	FromColumn string
	ToColumn   string
	TargetCard string // empty for append-at-end
	Side       Side

	// Column moves
	FromIndex int
	ToIndex   int
}
