package state

import (
	"testing"
)

// TestCalculateViewportSize_ZeroWidth ensures viewport defaults to 1 when terminal width is 0.
// Edge case: Terminal not fully initialized yet.
func TestCalculateViewportSize_ZeroWidth(t *testing.T) {
	state := NewUIState()
	state.SetWidth(0, 45)

	if got := state.ViewportSize(); got != 1 {
		t.Errorf("ViewportSize() with width=0 = %d, want 1", got)
	}
}

// TestCalculateViewportSize_NarrowTerminal ensures at least one column is visible.
func TestCalculateViewportSize_NarrowTerminal(t *testing.T) {
	state := NewUIState()
	state.SetWidth(20, 45)

	if got := state.ViewportSize(); got != 1 {
		t.Errorf("ViewportSize() with width=20 = %d, want 1", got)
	}
}

func TestCalculateViewportSize_Wide(t *testing.T) {
	state := NewUIState()
	state.SetWidth(4+45*3, 45)

	if got := state.ViewportSize(); got != 3 {
		t.Errorf("ViewportSize() = %d, want 3", got)
	}
}

func TestEnsureSelectionVisible(t *testing.T) {
	state := NewUIState()
	state.SetWidth(4+45*2, 45)

	state.EnsureSelectionVisible(3)
	if state.ViewportOffset() != 2 {
		t.Errorf("ViewportOffset() = %d, want 2", state.ViewportOffset())
	}

	state.EnsureSelectionVisible(0)
	if state.ViewportOffset() != 0 {
		t.Errorf("ViewportOffset() = %d, want 0", state.ViewportOffset())
	}
}

// TestClampViewport covers deleting columns while scrolled right.
func TestClampViewport(t *testing.T) {
	state := NewUIState()
	state.SetWidth(4+45*2, 45)
	state.SetViewportOffset(3)

	state.ClampViewport(3)

	if state.ViewportOffset() != 1 {
		t.Errorf("ViewportOffset() = %d, want 1", state.ViewportOffset())
	}
}

func TestCardScrolling(t *testing.T) {
	state := NewUIState()

	if state.ScrollCardsUp("todo") {
		t.Error("ScrollCardsUp() at top returned true")
	}
	if !state.ScrollCardsDown("todo", 5, 3) {
		t.Error("ScrollCardsDown() returned false with hidden cards")
	}
	state.SetCardScrollOffset("todo", 2)
	if state.ScrollCardsDown("todo", 5, 3) {
		t.Error("ScrollCardsDown() past the last card returned true")
	}

	state.EnsureCardVisible("todo", 0, 3)
	if got := state.CardScrollOffset("todo"); got != 0 {
		t.Errorf("CardScrollOffset() = %d, want 0", got)
	}
	state.EnsureCardVisible("todo", 4, 3)
	if got := state.CardScrollOffset("todo"); got != 2 {
		t.Errorf("CardScrollOffset() = %d, want 2", got)
	}

	state.ForgetColumn("todo")
	if got := state.CardScrollOffset("todo"); got != 0 {
		t.Errorf("CardScrollOffset() after ForgetColumn = %d, want 0", got)
	}
}

func TestAlert(t *testing.T) {
	state := NewUIState()

	state.ShowAlert("Card title cannot be empty!")
	if state.Mode() != AlertMode || state.Alert() == "" {
		t.Fatalf("ShowAlert() mode = %v alert = %q", state.Mode(), state.Alert())
	}

	state.DismissAlert()
	if state.Mode() != NormalMode || state.Alert() != "" {
		t.Errorf("DismissAlert() mode = %v alert = %q", state.Mode(), state.Alert())
	}
}

func TestModeIsForm(t *testing.T) {
	forms := map[Mode]bool{
		AddCardMode:      true,
		EditCardMode:     true,
		AddColumnMode:    true,
		RenameColumnMode: true,
		NormalMode:       false,
		SearchMode:       false,
		ContextMenuMode:  false,
	}
	for mode, want := range forms {
		if got := mode.IsForm(); got != want {
			t.Errorf("%v.IsForm() = %v, want %v", mode, got, want)
		}
	}
}

func TestSearchState(t *testing.T) {
	s := NewSearchState()

	s.AppendText("dé")
	s.AppendText("v")
	if s.Query != "dév" {
		t.Fatalf("Query = %q", s.Query)
	}
	if !s.Backspace() || s.Query != "dé" {
		t.Errorf("Backspace() left %q, want dé", s.Query)
	}
	if !s.Filtering(SearchMode) {
		t.Error("typing in search mode should filter live")
	}
	if s.Filtering(NormalMode) {
		t.Error("inactive search should not filter in normal mode")
	}

	s.Activate()
	if !s.Filtering(NormalMode) {
		t.Error("activated search should filter in normal mode")
	}

	s.Clear()
	s.Activate()
	if s.IsActive {
		t.Error("empty query should not activate the filter")
	}
}

func TestSearchState_MaxLength(t *testing.T) {
	s := NewSearchState()
	for i := 0; i < 100; i++ {
		s.AppendText("x")
	}
	if s.AppendText("y") {
		t.Error("AppendText() past max length returned true")
	}
}

func TestMenuState_Wraps(t *testing.T) {
	menu := NewMenuState()
	if menu.IsOpen() {
		t.Fatal("new menu should be closed")
	}

	menu.Open(CardMenu(), 10, 5, "todo", "task-1")
	menu.MoveUp()
	item, ok := menu.Selected()
	if !ok || item.Action != ActionDeleteCard {
		t.Errorf("MoveUp() from top selected %+v, want last entry", item)
	}
	menu.MoveDown()
	item, _ = menu.Selected()
	if item.Action != ActionViewCard {
		t.Errorf("MoveDown() from bottom selected %+v, want first entry", item)
	}

	menu.Close()
	if menu.IsOpen() || menu.CardID != "" {
		t.Error("Close() should reset the menu")
	}
}

func TestNotificationState_Latest(t *testing.T) {
	n := NewNotificationState()
	if _, ok := n.Latest(); ok {
		t.Fatal("Latest() on empty state returned ok")
	}

	n.Add(LevelInfo, "first")
	n.Add(LevelError, "second")

	got, ok := n.Latest()
	if !ok || got.Message != "second" || got.Level != LevelError {
		t.Errorf("Latest() = %+v", got)
	}

	n.Clear()
	if n.HasAny() {
		t.Error("Clear() left notifications")
	}
}

func TestNotificationState_KeepsMoreSevere(t *testing.T) {
	n := NewNotificationState()
	n.Add(LevelError, "failed")
	n.Add(LevelInfo, "moved")

	got, _ := n.Latest()
	if got.Message != "failed" {
		t.Errorf("Latest() = %q, want the error to stay", got.Message)
	}
}
