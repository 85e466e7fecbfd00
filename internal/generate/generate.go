// Package generate scaffolds a target-language locale tree from the base
// locale and a table of literal translations.
//
// Strings without a translation are emitted as placeholders, "[source]",
// so that gaps stand out for human review. Writing the result over an
// existing locale file discards any manual edits not present in the table.
package generate

import (
	"github.com/AllesOderNicht/door-web/internal/locale"
	"github.com/AllesOderNicht/door-web/internal/table"
)

// Stats summarises one Generate run.
type Stats struct {
	Translated    int
	Untranslated  []locale.KeyPath
	PassedThrough int
}

// Placeholder marks text as awaiting translation.
func Placeholder(text string) string {
	return "[" + text + "]"
}

// IsPlaceholder reports whether s looks like the output of Placeholder.
func IsPlaceholder(s string) bool {
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}

// Generate returns a tree with the structure and key order of base in
// which every string leaf is replaced by its translation from baseLang to
// targetLang, or by a placeholder. Non-string terminals are copied
// unchanged. The result only depends on its arguments.
func Generate(base *locale.Node, baseLang, targetLang string, tbl table.Table) *locale.Node {
	out, _ := GenerateWithStats(base, baseLang, targetLang, tbl)
	return out
}

// GenerateWithStats is Generate, also reporting what happened to each
// terminal.
func GenerateWithStats(base *locale.Node, baseLang, targetLang string, tbl table.Table) (*locale.Node, Stats) {
	g := generator{from: baseLang, to: targetLang, tbl: tbl}
	g.stats.Untranslated = make([]locale.KeyPath, 0)
	return g.branch("", base), g.stats
}

type generator struct {
	from, to string
	tbl      table.Table
	stats    Stats
}

// branch rebuilds src key by key rather than through SetPath, so keys
// that themselves contain dots keep their shape.
func (g *generator) branch(prefix locale.KeyPath, src *locale.Node) *locale.Node {
	out := locale.NewTree()
	for _, k := range src.Keys() {
		child, _ := src.Get(k)
		out.Set(k, g.node(prefix.Join(k), child))
	}
	return out
}

func (g *generator) node(path locale.KeyPath, n *locale.Node) *locale.Node {
	if n.IsBranch() {
		return g.branch(path, n)
	}
	text, ok := n.Text()
	if !ok {
		g.stats.PassedThrough++
		return n.Clone()
	}
	if tr, found := g.tbl.Lookup(g.from, g.to, text); found {
		g.stats.Translated++
		return locale.Leaf(tr)
	}
	g.stats.Untranslated = append(g.stats.Untranslated, path)
	return locale.Leaf(Placeholder(text))
}
