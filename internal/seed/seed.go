// Package seed loads the initial board contents.
//
// Seed data is read once at startup and never written back; the board lives
// in memory for the rest of the session.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// ErrUnknownSource is returned for a source whose format cannot be inferred
var ErrUnknownSource = errors.New("unknown seed source")

// Document is the on-disk seed layout shared by the YAML and JSON formats
type Document struct {
	Columns []models.Column `json:"columns" yaml:"columns"`
}

// Loader resolves seed sources. The zero value handles everything except
// S3 sources that need explicit endpoint or credentials.
type Loader struct {
	S3 S3Config

	// objects is swapped out in tests
	objects objectGetter
}

// Load reads seed columns from source using a zero Loader
func Load(ctx context.Context, source string) ([]models.Column, error) {
	var l Loader
	return l.Load(ctx, source)
}

// Load reads seed columns from source.
//
// Accepted sources: "" or "default" for the built-in board, "s3://bucket/key"
// for an object in S3, and a file path ending in .yaml, .yml, .json, .db,
// .sqlite or .sqlite3.
func (l *Loader) Load(ctx context.Context, source string) ([]models.Column, error) {
	source = strings.TrimSpace(source)
	if source == "" || source == "default" {
		return Default(), nil
	}

	if strings.HasPrefix(source, "s3://") {
		return l.loadS3(ctx, source)
	}

	format := FormatOf(source)
	switch format {
	case FormatYAML, FormatJSON:
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open seed file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				slog.Error("error closing seed file", "path", source, "error", err)
			}
		}()
		return Decode(f, format)
	case FormatSQLite:
		return loadSQLite(ctx, source)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
}

// Format is a seed file encoding
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatJSON
	FormatSQLite
)

// FormatOf infers the seed format from a file extension
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	}
	return FormatUnknown
}
