package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/AllesOderNicht/door-web/internal/config"
)

const (
	zhComplete = `{
  "nav": {
    "home": "首页",
    "contact": "联系我们"
  },
  "hero": {
    "title": "专业海洋工程解决方案"
  }
}
`
	enComplete = `{
  "nav": {
    "home": "Home",
    "contact": "Contact Us"
  },
  "hero": {
    "title": "Professional Marine Engineering Solutions"
  }
}
`
)

// newTestRepo writes files, keyed by path relative to the repository
// root, into a fresh root containing package.json and returns an app
// rooted there whose output is captured.
func newTestRepo(t *testing.T, files map[string]string) (*app, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"package.json": "{}\n"})
	writeFiles(t, root, files)

	var out bytes.Buffer
	a := newApp()
	a.root = root
	a.cfg = config.Default()
	a.out = &out
	return a, &out
}

// localeFiles maps language codes to locale file contents in the default
// locales directory.
func localeFiles(byLang map[string]string) map[string]string {
	files := make(map[string]string, len(byLang))
	for lang, content := range byLang {
		files[filepath.Join(config.DefaultLocalesDir, lang+".json")] = content
	}
	return files
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
