package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/generate"
	"github.com/AllesOderNicht/door-web/internal/locale"
	"github.com/AllesOderNicht/door-web/internal/table"
)

var errGenerateFailed = errors.New("some locale files could not be written")

func newGenerateCommand(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Rebuild every non-base locale from the base locale and translation tables",
		Long: `Rebuilds each non-base locale file from the base locale. Every string is
looked up in the translation tables; strings without a translation are
written as "[source text]" for later review.

Target files are overwritten in full. Manual edits that are not in a
translation table are lost; re-apply them with "merge".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reportGenerate(dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the generated locales instead of writing them")
	return cmd
}

func (a *app) reportGenerate(dryRun bool) error {
	basePath := a.localePath(a.base())
	base, err := locale.Load(basePath)
	if err != nil {
		return err
	}
	a.log.Info().Str("file", a.rel(basePath)).Int("keys", len(locale.ExtractKeys(base))).Msg("read base locale")

	tbl, err := table.LoadAll(a.cfg.TablePaths(a.root)...)
	if err != nil {
		return err
	}

	failed := 0
	for _, lang := range a.targets() {
		tree, stats := generate.GenerateWithStats(base, a.base(), lang, tbl)
		path := a.localePath(lang)
		log := a.log.With().Str("lang", lang).Str("file", a.rel(path)).Logger()

		ev := log.Info().Int("translated", stats.Translated).Int("untranslated", len(stats.Untranslated))
		if stats.PassedThrough > 0 {
			ev = ev.Int("copied", stats.PassedThrough)
		}
		ev.Msg("generated locale")
		for _, k := range stats.Untranslated {
			log.Debug().Str("key", string(k)).Msg("no translation, wrote placeholder")
		}

		if dryRun {
			data, err := locale.Encode(tree, a.cfg.LocaleFormat())
			if err != nil {
				return err
			}
			log.Info().Msg("dry run, not writing")
			if _, err := a.out.Write(data); err != nil {
				return err
			}
			continue
		}

		if _, err := os.Stat(path); err == nil {
			log.Warn().Msg("overwriting existing locale file; manual edits not in a translation table are lost")
		}
		if err := locale.Save(path, tree); err != nil {
			log.Error().Err(err).Msg("writing locale file failed")
			failed++
			continue
		}
		log.Info().Msg("wrote locale file")
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errGenerateFailed, failed, len(a.targets()))
	}
	if !dryRun {
		a.log.Warn().Msg("generated translations may need manual review")
	}
	return nil
}
