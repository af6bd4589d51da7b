package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCenteredLayer_Empty(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))
	assert.Nil(t, CreateAnchoredLayer("", 0, 0, 80, 24))
}

func TestClampAnchor(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"fits", 10, 5, 10, 5},
		{"right edge", 75, 5, 60, 5},
		{"bottom edge", 10, 22, 10, 18},
		{"too big for screen", -3, -1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ClampAnchor(tt.x, tt.y, 20, 6, 80, 24)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}
