package codec

import (
	"errors"
	"fmt"
	"io"

	"railbook/internal/dto"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse imports a snapshot from YAML. An empty document is an empty
// snapshot.
func (c *YAMLCodec) Parse(r io.Reader) (*dto.Snapshot, error) {
	var snap dto.Snapshot
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&snap); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := checkVersion(&snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

// Export exports a snapshot to YAML
func (c *YAMLCodec) Export(snap *dto.Snapshot, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}
