// i18n-report maintains the site's locale files: it checks them for
// missing keys, scaffolds target languages from the base language and
// produces the reports translators work from.
//
// Usage:
//
//	i18n-report <subcommand> [flags] [args]
//
// Run "i18n-report --help" for a list of subcommands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/config"
)

func main() {
	if err := newRootCommand(newApp()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "i18n-report",
		Short:         "Translation maintenance for the zh-CN / en-US locale files",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.flags.config, "config", "", "Config file (default: <repo>/"+config.DefaultFile+")")
	f.StringVar(&a.flags.localesDir, "locales-dir", "", "Locale directory, relative to the repository root")
	f.StringVar(&a.flags.base, "base", "", "Base language code")
	f.StringVar(&a.format, "format", formatText, "Output format: text, json")
	f.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newCheckCommand(a),
		newGenerateCommand(a),
		newMissingCommand(a),
		newStaleCommand(a),
		newTranslateCommand(a),
		newMergeCommand(a),
		newPruneCommand(a),
		newUnusedCommand(a),
		newReferencesCommand(a),
		newKeysCommand(a),
		newLanguagesCommand(a),
		newLookupCommand(a),
	)
	return root
}
