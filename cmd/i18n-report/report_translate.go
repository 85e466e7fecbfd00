package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/generate"
	"github.com/AllesOderNicht/door-web/internal/locale"
)

type translateOptions struct {
	lang         string
	batch        int
	batches      int
	placeholders bool
	usedOnly     bool
}

func newTranslateCommand(a *app) *cobra.Command {
	var opts translateOptions
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Keys needing translation in a locale, with their base-language values",
		Long: `Prints key=value pairs, taking values from the base locale, for every key
that a target locale lacks or still holds as a "[...]" placeholder. The
output is the input format of "merge".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reportTranslate(opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.lang, "locale", "", "Target locale code (required)")
	f.IntVar(&opts.batch, "batch", 0, "Batch number (1-indexed); requires --batches")
	f.IntVar(&opts.batches, "batches", 0, "Total number of batches")
	f.BoolVar(&opts.placeholders, "placeholders", true, "Include keys whose value is still a placeholder")
	f.BoolVar(&opts.usedOnly, "used", false, "Only include keys referenced in source code")
	cmd.MarkFlagRequired("locale")
	return cmd
}

type translatePair struct {
	Key   locale.KeyPath `json:"key"`
	Value string         `json:"value"`
}

func (a *app) reportTranslate(opts translateOptions) error {
	if opts.batches > 0 && (opts.batch < 1 || opts.batch > opts.batches) {
		return fmt.Errorf("--batch must be between 1 and %d", opts.batches)
	}

	base, target, err := a.loadPair(opts.lang)
	if err != nil {
		return err
	}

	var refs map[locale.KeyPath][]keyReference
	if opts.usedOnly {
		if refs, err = findKeyReferences(a.root, locale.KeySet(base)); err != nil {
			return err
		}
	}

	var pairs []translatePair
	locale.Walk(base, func(k locale.KeyPath, n *locale.Node) {
		value, ok := n.Text()
		if !ok {
			return
		}
		if refs != nil {
			if _, used := refs[k]; !used {
				return
			}
		}
		if existing, found := target.Lookup(k); found {
			s, isText := existing.Text()
			if !opts.placeholders || !isText || !generate.IsPlaceholder(s) {
				return
			}
		}
		pairs = append(pairs, translatePair{Key: k, Value: value})
	})

	pairs = batchSlice(pairs, opts.batch, opts.batches)

	if a.format == formatJSON {
		if pairs == nil {
			pairs = []translatePair{}
		}
		return outputJSON(a.out, pairs)
	}

	if len(pairs) == 0 {
		fmt.Fprintf(a.out, "No keys to translate in %s.\n", opts.lang)
		return nil
	}

	label := fmt.Sprintf("Found %d keys to translate in %s", len(pairs), opts.lang)
	if opts.batches > 0 {
		label += fmt.Sprintf(" (batch %d of %d)", opts.batch, opts.batches)
	}
	fmt.Fprintf(a.out, "# %s:\n\n", label)
	for _, p := range pairs {
		fmt.Fprintf(a.out, "%s=%s\n", p.Key, p.Value)
	}
	return nil
}

// batchSlice returns the batch-th of batches roughly equal slices of s.
// With batches <= 0 it returns s unchanged.
func batchSlice[T any](s []T, batch, batches int) []T {
	if batches <= 0 {
		return s
	}
	total := len(s)
	size := (total + batches - 1) / batches
	start := min((batch-1)*size, total)
	end := min(start+size, total)
	return s[start:end]
}
