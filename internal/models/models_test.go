package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{ErrEmptyTitle, "title cannot be empty"},
		{ErrColumnNotFound, "column not found"},
		{ErrCardNotFound, "card not found"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Expected error message '%s', got '%s'", tt.expectedMessage, tt.err.Error())
		}
	}
}

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrColumnNotFound, ErrCardNotFound) {
		t.Error("ErrColumnNotFound should not equal ErrCardNotFound")
	}
}

// ============================================================================
// Card Tests
// ============================================================================

func TestCard_CloneDoesNotShareLabels(t *testing.T) {
	c := Card{ID: "task-1", Title: "Write docs", Labels: []string{"docs"}}

	clone := c.Clone()
	clone.Labels[0] = "changed"

	if c.Labels[0] != "docs" {
		t.Errorf("Clone shares label storage: original now %q", c.Labels[0])
	}
}

func TestCard_CloneNilLabels(t *testing.T) {
	c := Card{ID: "task-1", Title: "No labels"}

	if c.Clone().Labels != nil {
		t.Error("Clone of card without labels should keep nil labels")
	}
}

// ============================================================================
// Enum Tests
// ============================================================================

func TestMoveKind_String(t *testing.T) {
	tests := map[MoveKind]string{
		MoveNone:          "none",
		MoveReorder:       "reorder",
		MoveTransfer:      "transfer",
		MoveColumnReorder: "column-reorder",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("MoveKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestSide_String(t *testing.T) {
	if Before.String() != "before" {
		t.Errorf("Before.String() = %q", Before.String())
	}
	if After.String() != "after" {
		t.Errorf("After.String() = %q", After.String())
	}
}
