package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/locale"
)

func newReferencesCommand(a *app) *cobra.Command {
	var undefined bool
	cmd := &cobra.Command{
		Use:   "references",
		Short: "Where each base-locale key is used (file:line)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reportReferences(undefined)
		},
	}
	cmd.Flags().BoolVar(&undefined, "undefined", false, "List referenced keys that the base locale does not define instead")
	return cmd
}

func (a *app) reportReferences(undefined bool) error {
	base, err := a.loadLocale(a.base())
	if err != nil {
		return err
	}
	known := locale.KeySet(base)

	refs, err := findKeyReferences(a.root, known)
	if err != nil {
		return err
	}

	if undefined {
		var keys []locale.KeyPath
		for _, k := range locale.SortedKeys(refs) {
			if _, found := known[k]; !found {
				keys = append(keys, k)
			}
		}
		return outputKeys(a.out, keys, a.format, "undefined keys referenced in source")
	}

	if a.format == formatJSON {
		return outputJSON(a.out, refs)
	}

	for _, k := range locale.ExtractKeys(base) {
		locations := refs[k]
		if len(locations) == 0 {
			continue
		}
		fmt.Fprintf(a.out, "%s:\n", k)
		for _, loc := range locations {
			fmt.Fprintf(a.out, "  %s:%d\n", loc.File, loc.Line)
		}
	}
	return nil
}
