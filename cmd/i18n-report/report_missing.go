package main

import (
	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/diff"
)

func newMissingCommand(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "missing",
		Short: "Keys in the base locale absent from a target locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reportMissing(lang)
		},
	}
	cmd.Flags().StringVar(&lang, "locale", "", "Target locale code (required)")
	cmd.MarkFlagRequired("locale")
	return cmd
}

func (a *app) reportMissing(lang string) error {
	base, target, err := a.loadPair(lang)
	if err != nil {
		return err
	}
	return outputKeys(a.out, diff.Missing(base, target), a.format, "missing keys in "+lang)
}
