package main

import (
	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/locale"
)

func newUnusedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unused",
		Short: "Keys in the base locale not referenced in source code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reportUnused()
		},
	}
}

func (a *app) reportUnused() error {
	base, err := a.loadLocale(a.base())
	if err != nil {
		return err
	}

	refs, err := findKeyReferences(a.root, locale.KeySet(base))
	if err != nil {
		return err
	}

	var unused []locale.KeyPath
	for _, k := range locale.ExtractKeys(base) {
		if _, found := refs[k]; !found {
			unused = append(unused, k)
		}
	}
	return outputKeys(a.out, unused, a.format, "unused keys")
}
