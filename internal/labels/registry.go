// Package labels assigns display colors to free-text card labels.
package labels

import (
	"sync"

	"github.com/thenoetrevino/tablero/internal/models"
)

// palette is the fixed set of label colors, handed out in order
var palette = [...]string{
	"#5F87D7", // blue
	"#5FD75F", // green
	"#D7AF5F", // yellow
	"#D75F5F", // red
	"#AF87D7", // purple
	"#D787AF", // pink
	"#5FD7D7", // teal
	"#D7875F", // orange
}

// PaletteSize is the number of distinct label colors
const PaletteSize = len(palette)

// Palette returns a copy of the label palette
func Palette() []string {
	return append([]string(nil), palette[:]...)
}

// Registry maps label text to a color, assigning on first sight.
// Colors are handed out round-robin and restart from the first entry once
// the palette is exhausted, so labels may share a color after PaletteSize
// distinct names. Entries are never removed.
type Registry struct {
	mu     sync.Mutex
	colors map[string]string
	next   int
}

// Default is the process-wide registry used by the renderer
var Default = NewRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{colors: make(map[string]string)}
}

// Color returns the color for a label, assigning one if it is new
func (r *Registry) Color(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.colors[name]; ok {
		return c
	}
	c := palette[r.next%PaletteSize]
	r.colors[name] = c
	r.next++
	return c
}

// Resolve returns the labels with their colors, in the given order
func (r *Registry) Resolve(names []string) []models.Label {
	out := make([]models.Label, 0, len(names))
	for _, n := range names {
		out = append(out, models.Label{Name: n, Color: r.Color(n)})
	}
	return out
}

// Known returns how many distinct labels have been seen
func (r *Registry) Known() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.colors)
}

// Color resolves a label against the Default registry
func Color(name string) string {
	return Default.Color(name)
}

// Resolve colors labels against the Default registry
func Resolve(names []string) []models.Label {
	return Default.Resolve(names)
}

// Known reports how many labels the Default registry has colored
func Known() int {
	return Default.Known()
}
