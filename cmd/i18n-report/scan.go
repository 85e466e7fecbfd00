package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AllesOderNicht/door-web/internal/locale"
)

// sourceDir holds the site's components, hooks and pages.
const sourceDir = "src"

var sourceExts = []string{".ts", ".tsx", ".js", ".jsx"}

// keyReference records where a translation key is used.
type keyReference struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// Patterns for finding translation key references in source code.
var (
	// t('...'), t("..."), t(`...`), also i18n.t(...) and $t(...)
	keyPattern = regexp.MustCompile(`(?:^|[^a-zA-Z])t\(\s*['"\x60]([a-zA-Z0-9_.]+)['"\x60]`)
	// titleKey/labelKey/descriptionKey properties with string literal values.
	keyPropPattern = regexp.MustCompile(`(?:titleKey|descriptionKey|labelKey):\s*['"]([a-zA-Z0-9_.]+)['"]`)
	// Lines containing a Key property may use ternaries; extract all dotted keys.
	keyPropLine = regexp.MustCompile(`(?:titleKey|descriptionKey|labelKey)[:\s=]`)
	// Dotted key literals in quoted strings.
	dottedKeyLiteral = regexp.MustCompile(`['"]([a-z][a-zA-Z0-9]*(?:\.[a-z][a-zA-Z0-9]*)+)['"]`)
	// String values that look like translation keys in property assignments,
	// e.g. `{ label: 'nav.home', href: '#home' }` later passed to t().
	// Only matches that name a known key are counted.
	indirectKeyPattern = regexp.MustCompile(`(?:\b\w+|'[^']+'):\s+['"]([a-z][a-zA-Z0-9]*(?:\.[a-z][a-zA-Z0-9]*)+)['"]`)
)

// scanSourceFiles walks the source tree and returns file paths matching
// the given extensions.
func scanSourceFiles(root string, exts []string) ([]string, error) {
	var files []string
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			switch name {
			case "node_modules", ".git", ".next", "dist", "out", "__tests__":
				return filepath.SkipDir
			}
			return nil
		}
		if extSet[filepath.Ext(name)] && !strings.Contains(name, ".test.") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// findKeyReferences scans the source tree under root for uses of the keys
// in known. Literal t() calls are recorded even for unknown keys, so that
// callers can report references to keys that do not exist.
func findKeyReferences(root string, known map[locale.KeyPath]struct{}) (map[locale.KeyPath][]keyReference, error) {
	refs := make(map[locale.KeyPath][]keyReference)

	dir := filepath.Join(root, sourceDir)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return refs, nil
	}
	files, err := scanSourceFiles(dir, sourceExts)
	if err != nil {
		return nil, err
	}

	add := func(key string, ref keyReference) {
		refs[locale.KeyPath(key)] = append(refs[locale.KeyPath(key)], ref)
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		relPath, _ := filepath.Rel(root, file)
		for i, line := range strings.Split(string(data), "\n") {
			ref := keyReference{File: filepath.ToSlash(relPath), Line: i + 1}

			for _, pat := range []*regexp.Regexp{keyPattern, keyPropPattern} {
				for _, m := range pat.FindAllStringSubmatch(line, -1) {
					add(m[1], ref)
				}
			}
			if keyPropLine.MatchString(line) {
				for _, m := range dottedKeyLiteral.FindAllStringSubmatch(line, -1) {
					add(m[1], ref)
				}
			}
			for _, m := range indirectKeyPattern.FindAllStringSubmatch(line, -1) {
				if _, exists := known[locale.KeyPath(m[1])]; exists {
					add(m[1], ref)
				}
			}
		}
	}
	return refs, nil
}
