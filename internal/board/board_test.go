package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
)

// fixedClock returns a clock frozen at a known instant so ids are predictable
func fixedClock() func() time.Time {
	t := time.UnixMilli(1_700_000_000_000)
	return func() time.Time { return t }
}

func cardIDs(cards []models.Card) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

// newTodoBoard builds Todo=[A,B], Done=[C]
func newTodoBoard() *Board {
	return FromColumns([]models.Column{
		{ID: "todo", Title: "Todo", Tasks: []models.Card{
			{ID: "A", Title: "Card A"},
			{ID: "B", Title: "Card B"},
		}},
		{ID: "done", Title: "Done", Tasks: []models.Card{
			{ID: "C", Title: "Card C"},
		}},
	}, WithClock(fixedClock()))
}

// ============================================================================
// Seeding
// ============================================================================

func TestFromColumns_DropsDuplicateIDs(t *testing.T) {
	b := FromColumns([]models.Column{
		{ID: "todo", Title: "Todo", Tasks: []models.Card{{ID: "A", Title: "first"}}},
		{ID: "todo", Title: "Dup column"},
		{ID: "done", Title: "Done", Tasks: []models.Card{{ID: "A", Title: "dup card"}}},
	})

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 1, b.CardCount())
	card, ok := b.Card("A")
	require.True(t, ok)
	assert.Equal(t, "first", card.Title)
}

func TestFromColumns_GeneratesMissingIDs(t *testing.T) {
	b := FromColumns([]models.Column{
		{Title: "Todo", Tasks: []models.Card{{Title: "no id"}}},
	})

	cols := b.Columns()
	require.Len(t, cols, 1)
	assert.Contains(t, cols[0].ID, models.ColumnIDPrefix)
	require.Len(t, cols[0].Tasks, 1)
	assert.Contains(t, cols[0].Tasks[0].ID, models.CardIDPrefix)
}

func TestFromColumns_SkipsBlankCardTitles(t *testing.T) {
	b := FromColumns([]models.Column{
		{ID: "todo", Title: "Todo", Tasks: []models.Card{{ID: "x", Title: "   "}}},
	})
	assert.Equal(t, 0, b.CardCount())
}

// ============================================================================
// Validation
// ============================================================================

func TestAddCard_BlankTitleLeavesBoardUnchanged(t *testing.T) {
	b := newTodoBoard()
	before := b.Columns()

	id, err := b.AddCard("todo", "   ", "desc", []string{"x"})

	assert.ErrorIs(t, err, models.ErrEmptyTitle)
	assert.Empty(t, id)
	assert.Equal(t, before, b.Columns())
}

func TestAddColumn_BlankTitleRejected(t *testing.T) {
	b := newTodoBoard()

	_, err := b.AddColumn("")

	assert.ErrorIs(t, err, models.ErrEmptyTitle)
	assert.Equal(t, 2, b.Len())
}

func TestRenameColumn_BlankTitleKeepsOld(t *testing.T) {
	b := newTodoBoard()

	err := b.RenameColumn("todo", "  ")

	assert.ErrorIs(t, err, models.ErrEmptyTitle)
	col, _ := b.Column("todo")
	assert.Equal(t, "Todo", col.Title)
}

func TestUpdateCard_BlankTitleRejected(t *testing.T) {
	b := newTodoBoard()

	err := b.UpdateCard("A", "", "", nil)

	assert.ErrorIs(t, err, models.ErrEmptyTitle)
	card, _ := b.Card("A")
	assert.Equal(t, "Card A", card.Title)
}

// ============================================================================
// Creation and ids
// ============================================================================

func TestAddCard_AppendsWithTimestampID(t *testing.T) {
	b := newTodoBoard()

	id, err := b.AddCard("todo", "  New  ", "  details ", []string{" a ", "", "b"})

	require.NoError(t, err)
	assert.Equal(t, "task-1700000000000", id)
	cards := b.Cards("todo")
	require.Len(t, cards, 3)
	last := cards[2]
	assert.Equal(t, "New", last.Title)
	assert.Equal(t, "details", last.Description)
	assert.Equal(t, []string{"a", "b"}, last.Labels)
}

func TestNextID_SameMillisecondStaysUnique(t *testing.T) {
	b := New(WithClock(fixedClock()))
	colID, err := b.AddColumn("Todo")
	require.NoError(t, err)

	first, _ := b.AddCard(colID, "one", "", nil)
	second, _ := b.AddCard(colID, "two", "", nil)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, colID, first)
}

func TestAddCard_StaleColumn(t *testing.T) {
	b := newTodoBoard()

	_, err := b.AddCard("gone", "title", "", nil)

	assert.ErrorIs(t, err, models.ErrColumnNotFound)
	assert.Equal(t, 3, b.CardCount())
}

// ============================================================================
// Deletes
// ============================================================================

func TestDeleteColumn_RemovesItsCards(t *testing.T) {
	b := newTodoBoard()

	removed := b.DeleteColumn("todo")

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 1, b.CardCount())
	_, ok := b.Card("A")
	assert.False(t, ok)
	_, ok = b.ColumnOf("B")
	assert.False(t, ok)
}

func TestDeleteCard(t *testing.T) {
	b := newTodoBoard()

	assert.True(t, b.DeleteCard("A"))
	assert.False(t, b.DeleteCard("A"), "second delete is a stale id")
	assert.Equal(t, []string{"B"}, cardIDs(b.Cards("todo")))
}

func TestStaleIDsAreNoOps(t *testing.T) {
	b := newTodoBoard()
	before := b.Columns()

	assert.NoError(t, b.UpdateCard("missing", "x", "", nil))
	assert.NoError(t, b.RenameColumn("missing", "x"))
	assert.Equal(t, 0, b.DeleteColumn("missing"))
	assert.False(t, b.MoveCard("missing", "done"))
	assert.False(t, b.MoveCard("A", "missing"))
	assert.False(t, b.MoveCardWithin("todo", "missing", "A", models.Before))

	assert.Equal(t, before, b.Columns())
}

// ============================================================================
// Moves
// ============================================================================

func TestMoveCard_TransfersExactlyOnce(t *testing.T) {
	b := newTodoBoard()

	moved := b.MoveCard("A", "done")

	require.True(t, moved)
	assert.Equal(t, []string{"B"}, cardIDs(b.Cards("todo")))
	assert.Equal(t, []string{"C", "A"}, cardIDs(b.Cards("done")))
	assert.Equal(t, 3, b.CardCount())
	owner, _ := b.ColumnOf("A")
	assert.Equal(t, "done", owner)
}

func TestMoveCard_SameColumnIsNoOp(t *testing.T) {
	b := newTodoBoard()

	assert.False(t, b.MoveCard("A", "todo"))
	assert.Equal(t, []string{"A", "B"}, cardIDs(b.Cards("todo")))
}

func TestMoveCardWithin(t *testing.T) {
	tests := []struct {
		name   string
		card   string
		target string
		side   models.Side
		want   []string
		moved  bool
	}{
		{"C before A", "C", "A", models.Before, []string{"C", "A", "B", "D"}, true},
		{"A after B", "A", "B", models.After, []string{"B", "A", "C", "D"}, true},
		{"A after D", "A", "D", models.After, []string{"B", "C", "D", "A"}, true},
		{"D before B", "D", "B", models.Before, []string{"A", "D", "B", "C"}, true},
		{"A before B is where it is", "A", "B", models.Before, []string{"A", "B", "C", "D"}, false},
		{"onto itself", "B", "B", models.After, []string{"A", "B", "C", "D"}, false},
		{"unknown target appends", "A", "zzz", models.Before, []string{"B", "C", "D", "A"}, true},
		{"empty target appends", "B", "", models.Before, []string{"A", "C", "D", "B"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromColumns([]models.Column{{ID: "col", Title: "Col", Tasks: []models.Card{
				{ID: "A", Title: "A"}, {ID: "B", Title: "B"}, {ID: "C", Title: "C"}, {ID: "D", Title: "D"},
			}}})

			moved := b.MoveCardWithin("col", tt.card, tt.target, tt.side)

			assert.Equal(t, tt.moved, moved)
			got := cardIDs(b.Cards("col"))
			assert.Equal(t, tt.want, got)
			assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, got, "identity preserved")
		})
	}
}

func TestMoveCardWithin_RejectsCardFromOtherColumn(t *testing.T) {
	b := newTodoBoard()

	assert.False(t, b.MoveCardWithin("todo", "C", "A", models.Before))
	assert.Equal(t, []string{"A", "B"}, cardIDs(b.Cards("todo")))
}

func TestMoveColumn(t *testing.T) {
	b := FromColumns([]models.Column{
		{ID: "a", Title: "A"}, {ID: "b", Title: "B"}, {ID: "c", Title: "C"},
	})

	require.True(t, b.MoveColumn(0, 2))
	assert.Equal(t, []string{"b", "c", "a"}, b.ColumnIDs())

	require.True(t, b.MoveColumn(2, 0))
	assert.Equal(t, []string{"a", "b", "c"}, b.ColumnIDs())

	assert.False(t, b.MoveColumn(1, 1))
	assert.False(t, b.MoveColumn(-1, 0))
	assert.False(t, b.MoveColumn(0, 3))
}

// Todo=[A,B]: put B before A, then send A to Done.
func TestApply_ReorderThenTransfer(t *testing.T) {
	b := newTodoBoard()

	require.True(t, b.Apply(models.Move{
		Kind: models.MoveReorder, CardID: "B", FromColumn: "todo", ToColumn: "todo",
		TargetCard: "A", Side: models.Before,
	}))
	assert.Equal(t, []string{"B", "A"}, cardIDs(b.Cards("todo")))

	require.True(t, b.Apply(models.Move{
		Kind: models.MoveTransfer, CardID: "A", FromColumn: "todo", ToColumn: "done",
	}))
	assert.Equal(t, []string{"B"}, cardIDs(b.Cards("todo")))
	assert.Equal(t, []string{"C", "A"}, cardIDs(b.Cards("done")))
}

func TestApply_TransferFromWrongSourceIsRejected(t *testing.T) {
	b := newTodoBoard()

	moved := b.Apply(models.Move{Kind: models.MoveTransfer, CardID: "C", FromColumn: "todo", ToColumn: "todo"})

	assert.False(t, moved)
	assert.False(t, b.Apply(models.Move{Kind: models.MoveNone}))
}

// ============================================================================
// Snapshots
// ============================================================================

func TestColumns_SnapshotIsDetached(t *testing.T) {
	b := FromColumns([]models.Column{{ID: "todo", Title: "Todo", Tasks: []models.Card{
		{ID: "A", Title: "A", Labels: []string{"x"}},
	}}})

	cols := b.Columns()
	cols[0].Title = "mutated"
	cols[0].Tasks[0].Labels[0] = "mutated"

	col, err := b.Column("todo")
	require.NoError(t, err)
	assert.Equal(t, "Todo", col.Title)
	assert.Equal(t, []string{"x"}, col.Tasks[0].Labels)
}

func TestColumn_NotFoundWrapsSentinel(t *testing.T) {
	b := New()

	_, err := b.Column("nope")

	assert.ErrorIs(t, err, models.ErrColumnNotFound)
}
