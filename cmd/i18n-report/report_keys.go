package main

import (
	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/locale"
)

func newKeysCommand(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "All key paths of a locale, in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lang == "" {
				lang = a.base()
			}
			return a.reportKeys(lang)
		},
	}
	cmd.Flags().StringVar(&lang, "locale", "", "Locale code (default: the base language)")
	return cmd
}

func (a *app) reportKeys(lang string) error {
	if err := requireLanguage(lang); err != nil {
		return err
	}
	tree, err := a.loadLocale(lang)
	if err != nil {
		return err
	}
	return outputKeys(a.out, locale.ExtractKeys(tree), a.format, "keys in "+lang)
}
