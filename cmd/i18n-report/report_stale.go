package main

import (
	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/diff"
)

func newStaleCommand(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "stale",
		Short: "Keys in a locale file absent from the base locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reportStale(lang)
		},
	}
	cmd.Flags().StringVar(&lang, "locale", "", "Target locale code (required)")
	cmd.MarkFlagRequired("locale")
	return cmd
}

func (a *app) reportStale(lang string) error {
	base, target, err := a.loadPair(lang)
	if err != nil {
		return err
	}
	return outputKeys(a.out, diff.Stale(base, target), a.format, "stale keys in "+lang)
}
