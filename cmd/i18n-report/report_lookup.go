package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/languages"
	"github.com/AllesOderNicht/door-web/internal/locale"
)

func newLookupCommand(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "lookup <key>",
		Short: "Resolve a key the way the site does, with fallback to the base language",
		Long: `Resolves a key for a language as the site's translation function does:
the language's own string, then the base language's, then the key itself.

--lang accepts any BCP 47 tag or Accept-Language value; it is matched to
the closest supported language.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if lang != "" {
				ctx = languages.WithLanguage(ctx, languages.Match(lang))
			} else {
				ctx = languages.WithLanguage(ctx, a.base())
			}
			return a.reportLookup(ctx, args[0])
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "Language to resolve for (default: the base language)")
	return cmd
}

type lookupResult struct {
	Key      string `json:"key"`
	Lang     string `json:"lang"`
	Value    string `json:"value"`
	Found    bool   `json:"found"`
	From     string `json:"from,omitempty"`
	Fallback bool   `json:"fallback"`
}

func (a *app) reportLookup(ctx context.Context, key string) error {
	lang := languages.FromContext(ctx)
	trees := make(map[string]*locale.Node)
	for _, code := range languages.Codes() {
		tree, err := a.loadLocale(code)
		if err != nil {
			a.log.Warn().Err(err).Str("lang", code).Msg("skipping locale")
			continue
		}
		trees[code] = tree
	}

	catalog, err := languages.NewCatalog(a.base(), trees)
	if err != nil {
		return err
	}

	res := lookupResult{Key: key, Lang: lang}
	tr, ok := catalog.Resolve(lang, key)
	res.Found = ok
	if ok {
		res.Value, res.From, res.Fallback = tr.Text, tr.Lang, tr.Fallback
	} else {
		res.Value = catalog.T(ctx, key)
	}

	if a.format == formatJSON {
		return outputJSON(a.out, res)
	}
	fmt.Fprintln(a.out, res.Value)
	if res.Fallback {
		a.log.Info().Str("key", key).Str("lang", lang).Str("from", res.From).Msg("used base language translation")
	}
	if !res.Found {
		a.log.Warn().Str("key", key).Str("lang", lang).Msg("no translation found")
	}
	return nil
}
