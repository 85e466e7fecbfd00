package languages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/AllesOderNicht/door-web/internal/locale"
)

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{"zh-CN", "en-US"}, Codes())
	assert.True(t, IsSupported(Base))
	assert.False(t, IsSupported("fr-FR"))

	list := Supported()
	list[0].Name = "changed"
	assert.Equal(t, "中文", Name("zh-CN"))
}

func TestNameAndFlag(t *testing.T) {
	tests := []struct {
		code, name, flag string
	}{
		{"zh-CN", "中文", "🇨🇳"},
		{"en-US", "English", "🇺🇸"},
		{"ja-JP", "ja-JP", UnknownFlag},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.name, Name(tc.code))
			assert.Equal(t, tc.flag, Flag(tc.code))
		})
	}
}

func TestNext(t *testing.T) {
	assert.Equal(t, "en-US", Next("zh-CN"))
	assert.Equal(t, "zh-CN", Next("en-US"))
	assert.Equal(t, "zh-CN", Next("unknown"))
}

func TestPrefixChecks(t *testing.T) {
	assert.True(t, IsChinese("zh-CN"))
	assert.True(t, IsChinese("zh"))
	assert.False(t, IsChinese("en-US"))
	assert.True(t, IsEnglish("en-GB"))
	assert.False(t, IsEnglish("zh-CN"))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		prefs []string
		want  string
	}{
		{"no preference", nil, "zh-CN"},
		{"exact", []string{"en-US"}, "en-US"},
		{"regional variant", []string{"en-GB"}, "en-US"},
		{"accept-language header", []string{"fr-CH, en;q=0.8, zh;q=0.5"}, "en-US"},
		{"unsupported falls back to first", []string{"fr"}, "zh-CN"},
		{"chinese", []string{"zh"}, "zh-CN"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Match(tc.prefs...))
		})
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Base, FromContext(ctx))
	//nolint:staticcheck // SA1012
	assert.Equal(t, Base, FromContext(nil))

	ctx = WithLanguage(ctx, "en-US")
	assert.Equal(t, "en-US", FromContext(ctx))

	ctx = Switch(ctx)
	assert.Equal(t, "zh-CN", FromContext(ctx))
	assert.Equal(t, "en-US", FromContext(Switch(ctx)))
}

func TestCatalog(t *testing.T) {
	zh, err := locale.DecodeJSON([]byte(`{"nav": {"home": "首页", "blog": "博客"}, "list": ["a"]}`))
	require.NoError(t, err)
	en, err := locale.DecodeJSON([]byte(`{"nav": {"home": "Home"}}`))
	require.NoError(t, err)

	cat, err := NewCatalog("zh-CN", map[string]*locale.Node{"zh-CN": zh, "en-US": en})
	require.NoError(t, err)

	ctx := WithLanguage(context.Background(), "en-US")
	assert.Equal(t, "Home", cat.T(ctx, "nav.home"))
	assert.Equal(t, "博客", cat.T(ctx, "nav.blog"), "falls back to base")
	assert.Equal(t, "nav.missing", cat.T(ctx, "nav.missing"))
	assert.Equal(t, "list", cat.T(ctx, "list"), "non-string values are not messages")
	assert.Equal(t, "首页", cat.T(context.Background(), "nav.home"))

	s, ok := cat.Lookup("en-US", "nav.home")
	assert.True(t, ok)
	assert.Equal(t, "Home", s)

	tags := cat.Languages()
	require.NotEmpty(t, tags)
	assert.Equal(t, language.MustParse("zh-CN"), tags[0])
}

func TestCatalogResolve(t *testing.T) {
	zh, err := locale.DecodeJSON([]byte(`{"nav": {"home": "首页", "blog": "博客"}}`))
	require.NoError(t, err)
	en, err := locale.DecodeJSON([]byte(`{"nav": {"home": "Home"}}`))
	require.NoError(t, err)
	cat, err := NewCatalog("zh-CN", map[string]*locale.Node{"zh-CN": zh, "en-US": en})
	require.NoError(t, err)

	tests := []struct {
		name   string
		lang   string
		key    string
		want   Translation
		wantOK bool
	}{
		{"own translation", "en-US", "nav.home", Translation{Text: "Home", Lang: "en-US"}, true},
		{"base fallback", "en-US", "nav.blog", Translation{Text: "博客", Lang: "zh-CN", Fallback: true}, true},
		{"base language", "zh-CN", "nav.blog", Translation{Text: "博客", Lang: "zh-CN"}, true},
		{"unknown key", "en-US", "nav.none", Translation{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := cat.Resolve(tc.lang, tc.key)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	s, ok := cat.Lookup("en-US", "nav.blog")
	assert.True(t, ok, "base fallback counts as found")
	assert.Equal(t, "博客", s)
}

func TestCatalogRejectsBadCode(t *testing.T) {
	_, err := NewCatalog("zh-CN", map[string]*locale.Node{"not a tag!": locale.NewTree()})
	assert.Error(t, err)
	_, err = NewCatalog("???", nil)
	assert.Error(t, err)
}
