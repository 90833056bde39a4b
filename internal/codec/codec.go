package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"railbook/internal/dto"
)

var (
	// ErrUnknownFormat is returned for a format no codec handles
	ErrUnknownFormat = errors.New("unknown format")
	// ErrUnsupportedVersion is returned when parsing a snapshot written by
	// an incompatible version
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// Importer interface for importing booking snapshots from various formats
type Importer interface {
	Parse(r io.Reader) (*dto.Snapshot, error)
	Format() string
}

// Exporter interface for exporting booking snapshots to various formats
type Exporter interface {
	Export(snap *dto.Snapshot, w io.Writer) error
	Format() string
}

// Codec both parses and exports one format
type Codec interface {
	Importer
	Exporter
}

// Formats lists the supported format identifiers
func Formats() []string {
	return []string{"json", "yaml"}
}

// ForFormat returns the codec for a format identifier
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	}
	return nil, fmt.Errorf("%w %q, must be one of %s", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
}

// ForPath returns the codec matching the extension of path
func ForPath(path string) (Codec, error) {
	return ForFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// checkVersion fills in a missing version and rejects foreign ones
func checkVersion(snap *dto.Snapshot) error {
	if snap.Version == "" {
		snap.Version = dto.SnapshotVersion
	}
	if snap.Version != dto.SnapshotVersion {
		return fmt.Errorf("%w %q", ErrUnsupportedVersion, snap.Version)
	}
	return nil
}
