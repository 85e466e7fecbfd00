// Package diff compares the key sets of several locale trees.
//
// A locale is complete when it holds every key that any locale holds: the
// union of all key paths is the reference for missing keys. Extra keys are
// measured against the base locale instead, since a key present in any
// locale is by definition part of the union.
package diff

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/AllesOderNicht/door-web/internal/locale"
)

// Locale is one language's tree.
type Locale struct {
	Lang string
	Tree *locale.Node
}

// Result lists the problems of one locale.
type Result struct {
	Lang    string           `json:"lang"`
	Keys    int              `json:"keys"`
	Missing []locale.KeyPath `json:"missing"`
	Extra   []locale.KeyPath `json:"extra"`
}

// Complete reports whether the locale has neither missing nor extra keys.
func (r Result) Complete() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// Report is the outcome of Diff.
type Report struct {
	Base    string           `json:"base"`
	Union   []locale.KeyPath `json:"-"`
	Results []Result         `json:"locales"`
}

// TotalKeys is the size of the union of all key sets.
func (r Report) TotalKeys() int { return len(r.Union) }

// Failed reports whether any locale is missing keys. Extra keys never fail
// a report.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if len(res.Missing) > 0 {
			return true
		}
	}
	return false
}

// MissingCount returns the number of missing keys across all locales.
func (r Report) MissingCount() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Missing)
	}
	return n
}

// Result returns the entry for lang.
func (r Report) Result(lang string) (Result, bool) {
	for _, res := range r.Results {
		if res.Lang == lang {
			return res, true
		}
	}
	return Result{}, false
}

// Option configures Diff.
type Option func(*options)

type options struct {
	ignore []glob.Glob
}

// WithIgnore skips key paths matching any of the compiled patterns.
func WithIgnore(patterns ...glob.Glob) Option {
	return func(o *options) {
		o.ignore = append(o.ignore, patterns...)
	}
}

// CompileIgnore compiles glob patterns over key paths, with "." as the
// segment separator: "meta.*" matches "meta.title" but not
// "meta.og.title", while "meta.**" matches both.
func CompileIgnore(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func (o *options) ignored(k locale.KeyPath) bool {
	for _, g := range o.ignore {
		if g.Match(string(k)) {
			return true
		}
	}
	return false
}

// Diff computes, for every locale, the keys it lacks relative to the union
// of all locales and the keys it has beyond the base locale. Results come
// back in the order of locales; key lists follow first-seen order.
//
// If base is not among locales, extra keys are computed against the union
// and are therefore always empty.
func Diff(locales []Locale, base string, opts ...Option) Report {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	keys := make([][]locale.KeyPath, len(locales))
	sets := make([]map[locale.KeyPath]struct{}, len(locales))
	union := make([]locale.KeyPath, 0)
	unionSet := make(map[locale.KeyPath]struct{})
	var baseSet map[locale.KeyPath]struct{}

	for i, l := range locales {
		keys[i] = locale.ExtractKeys(l.Tree)
		sets[i] = make(map[locale.KeyPath]struct{}, len(keys[i]))
		for _, k := range keys[i] {
			sets[i][k] = struct{}{}
			if _, seen := unionSet[k]; !seen {
				unionSet[k] = struct{}{}
				union = append(union, k)
			}
		}
		if l.Lang == base {
			baseSet = sets[i]
		}
	}
	if baseSet == nil {
		baseSet = unionSet
	}

	report := Report{Base: base, Union: union, Results: make([]Result, 0, len(locales))}
	for i, l := range locales {
		res := Result{
			Lang:    l.Lang,
			Keys:    len(keys[i]),
			Missing: make([]locale.KeyPath, 0),
			Extra:   make([]locale.KeyPath, 0),
		}
		for _, k := range union {
			if _, found := sets[i][k]; !found && !o.ignored(k) {
				res.Missing = append(res.Missing, k)
			}
		}
		for _, k := range keys[i] {
			if _, found := baseSet[k]; !found && !o.ignored(k) {
				res.Extra = append(res.Extra, k)
			}
		}
		report.Results = append(report.Results, res)
	}
	return report
}

// Missing returns the keys of base absent from target, in base order.
func Missing(base, target *locale.Node) []locale.KeyPath {
	targetSet := locale.KeySet(target)
	out := make([]locale.KeyPath, 0)
	for _, k := range locale.ExtractKeys(base) {
		if _, found := targetSet[k]; !found {
			out = append(out, k)
		}
	}
	return out
}

// Stale returns the keys of target absent from base, in target order.
func Stale(base, target *locale.Node) []locale.KeyPath {
	return Missing(target, base)
}
