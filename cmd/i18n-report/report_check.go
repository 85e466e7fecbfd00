package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/diff"
	"github.com/AllesOderNicht/door-web/internal/languages"
)

var errChecksFailed = errors.New("checks failed")

func newCheckCommand(a *app) *cobra.Command {
	var ignore []string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Lint check: keys missing from or extra in each locale",
		Long: `Reads every supported locale file and compares their key sets.

A locale is missing a key when any other locale has it. Keys a locale has
beyond the base locale are reported as extra but do not fail the check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reportCheck(ignore)
		},
	}
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "Glob patterns of keys to skip, added to the configured ones")
	return cmd
}

type checkOutput struct {
	diff.Report
	TotalKeys int  `json:"totalKeys"`
	Failed    bool `json:"failed"`
}

func (a *app) reportCheck(ignore []string) error {
	patterns, err := diff.CompileIgnore(append(slices.Clone(a.cfg.Ignore), ignore...))
	if err != nil {
		return err
	}

	// A missing or unreadable file aborts before anything is printed.
	locales, err := a.loadAll()
	if err != nil {
		return err
	}

	report := diff.Diff(locales, a.base(), diff.WithIgnore(patterns...))
	for _, res := range report.Results {
		a.log.Info().Str("lang", res.Lang).Int("keys", res.Keys).Msg("loaded locale")
		if len(res.Extra) > 0 {
			a.log.Warn().Str("lang", res.Lang).Int("count", len(res.Extra)).Msgf("keys not present in base locale %s", report.Base)
		}
	}

	if a.format == formatJSON {
		if err := outputJSON(a.out, checkOutput{Report: report, TotalKeys: report.TotalKeys(), Failed: report.Failed()}); err != nil {
			return err
		}
	} else {
		a.printCheck(report)
	}

	if report.Failed() {
		return errChecksFailed
	}
	return nil
}

func (a *app) printCheck(report diff.Report) {
	w := a.out
	fmt.Fprintf(w, "Checked %d locales in %s against %s: %d unique keys.\n\n",
		len(report.Results), a.rel(a.localesDir()), report.Base, report.TotalKeys())

	for _, res := range report.Results {
		fmt.Fprintf(w, "%s %s (%d keys)\n", languages.Flag(res.Lang), res.Lang, res.Keys)
		statusLine(w, "missing keys", len(res.Missing))
		for _, k := range res.Missing {
			fmt.Fprintf(w, "    - %s\n", k)
		}
		if len(res.Extra) > 0 {
			fmt.Fprintf(w, "  %-30s %3d  %s\n", "extra keys:", len(res.Extra), warnMark("WARN"))
			for _, k := range res.Extra {
				fmt.Fprintf(w, "    - %s\n", k)
			}
		}
	}
	fmt.Fprintln(w)

	if report.Failed() {
		fmt.Fprintf(w, "%d keys missing; complete the translations and run again.\n", report.MissingCount())
		return
	}
	fmt.Fprintln(w, "All checks passed.")
}
