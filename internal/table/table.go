// Package table holds literal translations used to scaffold new locale
// files: source language -> target language -> source text -> translation.
package table

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTable []byte

// Table maps source language, target language and exact source text to a
// translation. The zero value is an empty, read-only table.
type Table map[string]map[string]map[string]string

// Lookup returns the translation of text. An empty translation counts as
// missing.
func (t Table) Lookup(from, to, text string) (string, bool) {
	s := t[from][to][text]
	return s, s != ""
}

// Add records one translation.
func (t Table) Add(from, to, text, translation string) {
	if t[from] == nil {
		t[from] = make(map[string]map[string]string)
	}
	if t[from][to] == nil {
		t[from][to] = make(map[string]string)
	}
	t[from][to][text] = translation
}

// Merge copies every entry of other into t. Entries of other win.
func (t Table) Merge(other Table) {
	for from, targets := range other {
		for to, entries := range targets {
			for text, translation := range entries {
				t.Add(from, to, text, translation)
			}
		}
	}
}

// Len returns the number of entries for one language pair.
func (t Table) Len(from, to string) int {
	return len(t[from][to])
}

// Default returns a fresh copy of the built-in zh-CN -> en-US table.
func Default() Table {
	t, err := Parse(defaultTable, ".yaml")
	if err != nil {
		panic(fmt.Sprintf("table: built-in table is invalid: %v", err))
	}
	return t
}

// Parse decodes a table; ext selects the decoder (".yaml", ".yml",
// ".toml" or ".json").
func Parse(data []byte, ext string) (Table, error) {
	t := make(Table)
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &t)
	case ".toml":
		err = toml.Unmarshal(data, &t)
	case ".json":
		err = json.Unmarshal(data, &t)
	default:
		return nil, fmt.Errorf("unsupported translation table format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a table file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// LoadAll returns the built-in table overlaid with each file in order.
func LoadAll(paths ...string) (Table, error) {
	t := Default()
	for _, p := range paths {
		extra, err := Load(p)
		if err != nil {
			return nil, err
		}
		t.Merge(extra)
	}
	return t, nil
}
