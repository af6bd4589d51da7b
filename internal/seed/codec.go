package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/tablero/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when a seed document cannot be parsed
var ErrMalformed = errors.New("malformed seed")

// Decode reads a seed document in the given format
func Decode(r io.Reader, f Format) ([]models.Column, error) {
	var doc Document
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: yaml: %w", ErrMalformed, err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: json: %w", ErrMalformed, err)
		}
	default:
		return nil, ErrUnknownSource
	}
	if doc.Columns == nil {
		doc.Columns = []models.Column{}
	}
	return doc.Columns, nil
}

// EncodeYAML writes columns as a YAML seed document
func EncodeYAML(w io.Writer, cols []models.Column) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Columns: cols}); err != nil {
		return fmt.Errorf("error encoding seed yaml: %w", err)
	}
	return enc.Close()
}
