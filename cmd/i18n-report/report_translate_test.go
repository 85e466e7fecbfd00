package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportTranslate(t *testing.T) {
	a, out := newTestRepo(t, localeFiles(map[string]string{
		"zh-CN": `{"nav": {"home": "首页", "blog": "博客", "news": "新闻"}, "phones": ["1", "2"]}`,
		"en-US": `{"nav": {"home": "Home", "news": "[新闻]"}}`,
	}))

	require.NoError(t, a.reportTranslate(translateOptions{lang: "en-US", placeholders: true}))

	output := out.String()
	if !strings.Contains(output, "nav.blog=博客\n") {
		t.Errorf("missing key not listed:\n%s", output)
	}
	if !strings.Contains(output, "nav.news=新闻\n") {
		t.Errorf("placeholder key not listed:\n%s", output)
	}
	if strings.Contains(output, "nav.home") {
		t.Errorf("translated key listed:\n%s", output)
	}
	if strings.Contains(output, "phones") {
		t.Errorf("non-string value listed:\n%s", output)
	}

	out.Reset()
	require.NoError(t, a.reportTranslate(translateOptions{lang: "en-US"}))
	assert.NotContains(t, out.String(), "nav.news", "placeholders excluded")
}

func TestReportTranslateJSONBatches(t *testing.T) {
	a, out := newTestRepo(t, localeFiles(map[string]string{
		"zh-CN": `{"a": {"one": "一", "two": "二", "three": "三"}}`,
		"en-US": `{}`,
	}))
	a.format = formatJSON

	var batches [][]translatePair
	for batch := 1; batch <= 2; batch++ {
		out.Reset()
		require.NoError(t, a.reportTranslate(translateOptions{lang: "en-US", batch: batch, batches: 2}))
		var pairs []translatePair
		require.NoError(t, json.Unmarshal(out.Bytes(), &pairs))
		batches = append(batches, pairs)
	}

	require.Len(t, batches[0], 2)
	require.Len(t, batches[1], 1)
	assert.Equal(t, translatePair{Key: "a.one", Value: "一"}, batches[0][0])
	assert.Equal(t, translatePair{Key: "a.three", Value: "三"}, batches[1][0])

	assert.Error(t, a.reportTranslate(translateOptions{lang: "en-US", batch: 3, batches: 2}))
}

func TestReportTranslateUsedOnly(t *testing.T) {
	a, out := newTestRepo(t, map[string]string{
		"src/i18n/locales/zh-CN.json": `{"nav": {"home": "首页", "blog": "博客"}}`,
		"src/i18n/locales/en-US.json": `{}`,
		"src/components/Header.tsx":   "<a>{t('nav.home')}</a>\n",
	})

	require.NoError(t, a.reportTranslate(translateOptions{lang: "en-US", usedOnly: true}))
	assert.Contains(t, out.String(), "nav.home=首页")
	assert.NotContains(t, out.String(), "nav.blog")
}

func TestReportTranslateRejectsUnknownLocale(t *testing.T) {
	a, _ := newTestRepo(t, localeFiles(map[string]string{"zh-CN": zhComplete}))
	assert.Error(t, a.reportTranslate(translateOptions{lang: "de"}))
}

func TestBatchSlice(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	tests := []struct {
		batch, batches int
		want           []int
	}{
		{0, 0, []int{1, 2, 3, 4, 5}},
		{1, 2, []int{1, 2, 3}},
		{2, 2, []int{4, 5}},
		{3, 3, []int{5}},
		{4, 4, []int{}},
	}
	for _, tc := range tests {
		got := batchSlice(s, tc.batch, tc.batches)
		if len(got) != len(tc.want) {
			t.Errorf("batchSlice(%d/%d) = %v, want %v", tc.batch, tc.batches, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("batchSlice(%d/%d) = %v, want %v", tc.batch, tc.batches, got, tc.want)
				break
			}
		}
	}
}
