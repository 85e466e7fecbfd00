package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/diff"
	"github.com/AllesOderNicht/door-web/internal/languages"
	"github.com/AllesOderNicht/door-web/internal/locale"
)

func newPruneCommand(a *app) *cobra.Command {
	var fromStdin bool
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove keys absent from the base locale from every other locale",
		Long: `Removes stale keys, those a locale has but the base locale lacks, from
every non-base locale file. Branches left empty are removed too.

With --stdin, removes the dotted keys read from stdin (one per line) from
every locale file instead, base included. The output of "unused" can be
piped in directly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromStdin {
				return a.pruneKeys(cmd.InOrStdin())
			}
			return a.pruneStale()
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the keys to remove from stdin")
	return cmd
}

// pruneStale removes keys from each non-base locale file that do not
// exist in the base locale.
func (a *app) pruneStale() error {
	base, err := a.loadLocale(a.base())
	if err != nil {
		return err
	}

	for _, lang := range a.targets() {
		tree, err := a.loadLocale(lang)
		if err != nil {
			return err
		}
		removed := removeKeys(tree, diff.Stale(base, tree))
		if removed == 0 {
			continue
		}
		if err := a.saveLocale(lang, tree); err != nil {
			return err
		}
		a.log.Info().Str("file", a.rel(a.localePath(lang))).Int("removed", removed).Msg("removed stale keys")
	}
	return nil
}

// pruneKeys removes the keys listed in r from every locale file.
func (a *app) pruneKeys(r io.Reader) error {
	keys, err := readKeys(r)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("no valid keys provided on stdin")
	}

	for _, lang := range languages.Codes() {
		tree, err := a.loadLocale(lang)
		if err != nil {
			return err
		}
		removed := removeKeys(tree, keys)
		if removed == 0 {
			continue
		}
		if err := a.saveLocale(lang, tree); err != nil {
			return err
		}
		a.log.Info().Str("file", a.rel(a.localePath(lang))).Int("removed", removed).Msg("removed keys")
	}
	return nil
}

func (a *app) saveLocale(lang string, tree *locale.Node) error {
	return locale.Save(a.localePath(lang), tree)
}

// removeKeys deletes keys from tree, pruning empty parents, and returns
// how many were found.
func removeKeys(tree *locale.Node, keys []locale.KeyPath) int {
	removed := 0
	for _, k := range keys {
		if tree.DeletePath(k) {
			removed++
		}
	}
	return removed
}

// readKeys reads dotted translation keys, one per line. Lines that are not
// valid dotted keys are skipped, so the output of "unused" or "stale" can
// be piped directly.
func readKeys(r io.Reader) ([]locale.KeyPath, error) {
	var keys []locale.KeyPath
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if locale.IsValidKeyPath(key) {
			keys = append(keys, locale.KeyPath(key))
		}
	}
	return keys, scanner.Err()
}
