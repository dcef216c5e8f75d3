package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for snapshot files whose extension is not
// a known board format.
var ErrUnsupportedFormat = errors.New("unsupported board format")

// Format is the serialization of a board snapshot file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// BoardSchema is the top-level structure of a board snapshot.
type BoardSchema struct {
	Board    BoardInfo       `json:"board" yaml:"board"`
	Sections []SectionImport `json:"sections" yaml:"sections"`
}

// BoardInfo carries descriptive board metadata.
type BoardInfo struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// SectionImport is one sprint or backlog bucket.
type SectionImport struct {
	Name  string       `json:"name" yaml:"name"`
	Cards []CardImport `json:"cards" yaml:"cards"`
}

// CardImport is a single card as exported from the board. Pointer fields
// distinguish a missing field from an empty one.
type CardImport struct {
	Key               string  `json:"key,omitempty" yaml:"key,omitempty"`
	Title             *string `json:"title" yaml:"title"`
	Priority          *string `json:"priority,omitempty" yaml:"priority,omitempty"`
	OriginalEstimate  *string `json:"original_estimate" yaml:"original_estimate"`
	RemainingEstimate *string `json:"remaining_estimate" yaml:"remaining_estimate"`
	// Filtered marks cards hidden by the active board filter.
	Filtered bool `json:"filtered,omitempty" yaml:"filtered,omitempty"`
}

// FormatForPath picks the snapshot format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadBoardSchema reads and parses a board snapshot file.
func LoadBoardSchema(path string) (*BoardSchema, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBoardSchema(f, format)
}

// ReadBoardSchema parses a board snapshot from r.
func ReadBoardSchema(r io.Reader, format Format) (*BoardSchema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}

	var schema BoardSchema
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing board file: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&schema); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing board file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &schema, nil
}
