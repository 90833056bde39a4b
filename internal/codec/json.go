package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"railbook/internal/dto"
)

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports a snapshot from JSON
func (c *JSONCodec) Parse(r io.Reader) (*dto.Snapshot, error) {
	var snap dto.Snapshot
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := checkVersion(&snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

// Export exports a snapshot to JSON
func (c *JSONCodec) Export(snap *dto.Snapshot, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
