package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/locale"
)

// mergeEntry holds one translated key-value pair.
type mergeEntry struct {
	key   locale.KeyPath
	value string
}

func newMergeCommand(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "merge [files...]",
		Short: "Read flat key=value translations and write them into a locale file",
		Long: `Reads flat "key=value" or "key: value" lines from the given files, or
from stdin when none are given, and sets each key in the target locale.
Lines inside markdown code fences are used when the input has any.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reportMerge(lang, args, cmd.InOrStdin())
		},
	}
	cmd.Flags().StringVar(&lang, "locale", "", "Target locale code (required)")
	cmd.MarkFlagRequired("locale")
	return cmd
}

// reportMerge sets the parsed entries into lang's locale tree, keeping the
// position of keys that already exist, and rewrites the file.
func (a *app) reportMerge(lang string, files []string, stdin io.Reader) error {
	if err := requireLanguage(lang); err != nil {
		return err
	}
	path := a.localePath(lang)

	tree, err := locale.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		tree, err = locale.NewTree(), nil
	}
	if err != nil {
		return err
	}

	var input io.Reader = stdin
	if len(files) > 0 {
		var combined strings.Builder
		for _, p := range files {
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("reading %s: %w", p, err)
			}
			combined.WriteString(extractTranslationText(string(data)))
		}
		input = strings.NewReader(combined.String())
	}

	entries, err := parseMergeInput(input)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no translation entries found in input")
	}

	var known map[locale.KeyPath]struct{}
	if lang != a.base() {
		if base, err := a.loadLocale(a.base()); err == nil {
			known = locale.KeySet(base)
		}
	}

	added := 0
	for _, e := range entries {
		if _, exists := tree.Lookup(e.key); !exists {
			added++
		}
		if known != nil {
			if _, ok := known[e.key]; !ok {
				a.log.Warn().Str("key", string(e.key)).Msgf("key is not in base locale %s", a.base())
			}
		}
		tree.SetPath(e.key, locale.Leaf(e.value))
	}

	if err := locale.Save(path, tree); err != nil {
		return err
	}

	a.log.Info().Str("file", a.rel(path)).Int("added", added).Int("updated", len(entries)-added).
		Int("total", len(locale.ExtractKeys(tree))).Msg("merged translations")
	return nil
}

// extractTranslationText returns the lines inside markdown code fences,
// or content unchanged when it has none.
func extractTranslationText(content string) string {
	if !strings.Contains(content, "```") {
		return content
	}

	var extracted strings.Builder
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			extracted.WriteString(line)
			extracted.WriteString("\n")
		}
	}
	if extracted.Len() == 0 {
		return content
	}
	return extracted.String()
}

// parseMergeInput reads flat key=value or key: value lines from a reader.
// Blank lines, comments and lines without a dotted key are skipped.
func parseMergeInput(r io.Reader) ([]mergeEntry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var entries []mergeEntry
	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || trimmed == "---" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
			continue
		}

		// Try "key: value" first, then "key=value".
		var key, value string
		if idx := strings.Index(trimmed, ": "); idx > 0 {
			if candidate := trimmed[:idx]; locale.IsValidKeyPath(candidate) {
				key = candidate
				value = unquote(strings.TrimSpace(trimmed[idx+2:]))
			}
		}
		if key == "" {
			if idx := strings.Index(trimmed, "="); idx > 0 {
				if candidate := strings.TrimSpace(trimmed[:idx]); locale.IsValidKeyPath(candidate) {
					key = candidate
					value = trimmed[idx+1:]
				}
			}
		}
		if key == "" {
			continue
		}
		entries = append(entries, mergeEntry{key: locale.KeyPath(key), value: value})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return entries, nil
}

// unquote strips YAML-style single or double quotes from s.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	switch {
	case s[0] == '"' && s[len(s)-1] == '"':
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	case s[0] == '\'' && s[len(s)-1] == '\'':
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	return s
}
