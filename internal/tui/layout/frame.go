// Package layout maps screen coordinates to board elements.
//
// The board is drawn as a row of equally sized column boxes. Inside each
// box the first row is the border, the second the column header, the third
// a scroll indicator, followed by fixed-height cards.
package layout

// Rows inside a column box above the first card: border, header, indicator
const CardsOffset = 3

// Rows a column box spends on anything but cards: two borders, header and
// both scroll indicators
const ColumnChrome = 5

// Metrics are the rendered sizes of board pieces
type Metrics struct {
	ColumnWidth int // outer width of a column box
	ColumnGap   int // blank cells between two boxes
	CardHeight  int // outer height of a card
}

// Column is one column as displayed: its id, the ids of the cards shown
// (after any search filter) and the index of the first visible card.
type Column struct {
	ID     string
	Cards  []string
	Scroll int
}

// Frame is one rendered board.
type Frame struct {
	Metrics

	Top    int // screen row of the column boxes' top border
	Left   int // screen cell of the first visible box
	Height int // outer height of every column box

	Offset  int // index of the leftmost visible column
	Visible int // number of columns that fit
	Columns []Column
}

// HitKind says what a screen cell belongs to
type HitKind int

const (
	HitNone   HitKind = iota
	HitHeader         // column title row or top border
	HitColumn         // column body outside any card
	HitCard
)

// Hit is the board element under a screen cell.
// Column is the display index; Card indexes the column's displayed cards.
type Hit struct {
	Kind     HitKind
	Column   int
	ColumnID string
	Card     int
	CardID   string
	CardTop  int // screen row of the card's top border
}

// InColumn reports whether the hit landed anywhere inside a column box
func (h Hit) InColumn() bool {
	return h.Kind != HitNone
}

// MaxVisibleCards is how many cards fit in one column box
func (f Frame) MaxVisibleCards() int {
	if f.CardHeight <= 0 {
		return 1
	}
	return max((f.Height-ColumnChrome)/f.CardHeight, 1)
}

// ColumnLeft returns the screen cell where a column box starts.
// The second result is false when the column is scrolled out of view.
func (f Frame) ColumnLeft(index int) (int, bool) {
	v := index - f.Offset
	if index < 0 || index >= len(f.Columns) || v < 0 || v >= f.Visible {
		return 0, false
	}
	return f.Left + v*(f.ColumnWidth+f.ColumnGap), true
}

// CardTop returns the screen row of a displayed card's top border.
// The second result is false when the card is scrolled out of view.
func (f Frame) CardTop(column, card int) (int, bool) {
	if column < 0 || column >= len(f.Columns) {
		return 0, false
	}
	col := f.Columns[column]
	slot := card - col.Scroll
	if card < 0 || card >= len(col.Cards) || slot < 0 || slot >= f.MaxVisibleCards() {
		return 0, false
	}
	return f.Top + CardsOffset + slot*f.CardHeight, true
}

// HitTest finds the board element at screen cell (x, y)
func (f Frame) HitTest(x, y int) Hit {
	if y < f.Top || y >= f.Top+f.Height {
		return Hit{}
	}

	for index := f.Offset; index < len(f.Columns) && index < f.Offset+f.Visible; index++ {
		left, _ := f.ColumnLeft(index)
		if x < left || x >= left+f.ColumnWidth {
			continue
		}

		col := f.Columns[index]
		hit := Hit{Kind: HitColumn, Column: index, ColumnID: col.ID}

		row := y - f.Top
		if row < CardsOffset-1 {
			hit.Kind = HitHeader
			return hit
		}
		if row < CardsOffset || f.CardHeight <= 0 {
			return hit
		}

		slot := (row - CardsOffset) / f.CardHeight
		card := col.Scroll + slot
		if slot < f.MaxVisibleCards() && card < len(col.Cards) {
			hit.Kind = HitCard
			hit.Card = card
			hit.CardID = col.Cards[card]
			hit.CardTop = f.Top + CardsOffset + slot*f.CardHeight
		}
		return hit
	}
	return Hit{}
}
