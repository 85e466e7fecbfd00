package locale

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format is the on-disk encoding of a locale file.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// FilePath returns the path of the locale file for lang inside dir.
func FilePath(dir, lang string, f Format) string {
	return filepath.Join(dir, lang+f.Ext())
}

// Decode parses data in format f.
func Decode(data []byte, f Format) (*Node, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Encode renders tree in format f.
func Encode(tree *Node, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(tree)
	case FormatYAML:
		return EncodeYAML(tree)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Load reads and parses the locale file at path. The format is taken from
// the file extension.
func Load(path string) (*Node, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingFile, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	tree, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tree, nil
}

// Save writes tree to path, replacing any existing file in full.
func Save(path string, tree *Node) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(tree, f)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}
