package languages

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/AllesOderNicht/door-web/internal/locale"
)

// Catalog resolves key paths to translated strings for the language
// carried by a context.
type Catalog struct {
	bundle  *i18n.Bundle
	base    string
	baseTag language.Tag
}

// NewCatalog builds a catalog from loaded locale trees keyed by language
// code. Lookups fall back to base, then to the key itself.
func NewCatalog(base string, trees map[string]*locale.Node) (*Catalog, error) {
	baseTag, err := language.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base language %q: %w", base, err)
	}
	bundle := i18n.NewBundle(baseTag)

	for code, tree := range trees {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", code, err)
		}
		var msgs []*i18n.Message
		locale.Walk(tree, func(path locale.KeyPath, n *locale.Node) {
			if s, ok := n.Text(); ok {
				msgs = append(msgs, &i18n.Message{ID: string(path), Other: s})
			}
		})
		if err := bundle.AddMessages(tag, msgs...); err != nil {
			return nil, fmt.Errorf("loading %s messages: %w", code, err)
		}
	}
	return &Catalog{bundle: bundle, base: base, baseTag: baseTag}, nil
}

// Languages returns the tags that have messages, base first.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// T translates key for the language in ctx. A key with no string value in
// that language or the base language is returned unchanged.
func (c *Catalog) T(ctx context.Context, key string) string {
	s, ok := c.Lookup(FromContext(ctx), key)
	if !ok {
		return key
	}
	return s
}

// Translation is a resolved message.
type Translation struct {
	Text string `json:"text"`
	// Lang is the language the text was taken from.
	Lang string `json:"lang"`
	// Fallback is set when lang had no message and the base language's
	// was used.
	Fallback bool `json:"fallback"`
}

// Resolve translates key for lang, falling back to the base language.
// It reports false when neither has a string for key.
func (c *Catalog) Resolve(lang, key string) (Translation, bool) {
	loc := i18n.NewLocalizer(c.bundle, lang, c.base)
	msg, tag, err := loc.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: key})

	// go-i18n returns the base-language message together with a
	// MessageNotFoundErr when lang lacks it.
	var notFound *i18n.MessageNotFoundErr
	switch {
	case err == nil:
		return Translation{Text: msg, Lang: tag.String(), Fallback: lang != c.base && tag == c.baseTag}, true
	case errors.As(err, &notFound) && msg != "":
		return Translation{Text: msg, Lang: tag.String(), Fallback: true}, true
	}
	return Translation{}, false
}

// Lookup translates key for lang, reporting whether a message was found
// in lang or the base language.
func (c *Catalog) Lookup(lang, key string) (string, bool) {
	tr, ok := c.Resolve(lang, key)
	return tr.Text, ok
}
