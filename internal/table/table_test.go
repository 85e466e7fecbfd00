package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tbl := Default()

	got, ok := tbl.Lookup("zh-CN", "en-US", "首页")
	require.True(t, ok)
	assert.Equal(t, "Home", got)

	got, ok = tbl.Lookup("zh-CN", "en-US", "© 2024 益阳海洋服务. 保留所有权利.")
	require.True(t, ok)
	assert.Equal(t, "© 2024 Yiyang Marine Service. All rights reserved.", got)

	_, ok = tbl.Lookup("zh-CN", "en-US", "未收录")
	assert.False(t, ok)
	_, ok = tbl.Lookup("en-US", "zh-CN", "Home")
	assert.False(t, ok)
	assert.Equal(t, 24, tbl.Len("zh-CN", "en-US"))

	// Each call returns an independent copy.
	tbl.Add("zh-CN", "en-US", "首页", "Start")
	got, _ = Default().Lookup("zh-CN", "en-US", "首页")
	assert.Equal(t, "Home", got)
}

func TestLookupZeroTable(t *testing.T) {
	var tbl Table
	_, ok := tbl.Lookup("en", "zh", "hello")
	assert.False(t, ok)
}

func TestEmptyTranslationIsMissing(t *testing.T) {
	tbl := make(Table)
	tbl.Add("en", "zh", "hello", "")
	_, ok := tbl.Lookup("en", "zh", "hello")
	assert.False(t, ok)
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		ext  string
		data string
	}{
		{".yaml", "en:\n  zh:\n    hello: 你好\n"},
		{".yml", "en:\n  zh:\n    hello: 你好\n"},
		{".toml", "[en.zh]\nhello = \"你好\"\n"},
		{".json", `{"en": {"zh": {"hello": "你好"}}}`},
	}

	for _, tc := range tests {
		t.Run(tc.ext, func(t *testing.T) {
			tbl, err := Parse([]byte(tc.data), tc.ext)
			require.NoError(t, err)
			got, ok := tbl.Lookup("en", "zh", "hello")
			require.True(t, ok)
			assert.Equal(t, "你好", got)
		})
	}

	_, err := Parse([]byte("x"), ".po")
	assert.Error(t, err)
	_, err = Parse([]byte("en: [\n"), ".yaml")
	assert.Error(t, err)
}

func TestLoadAllOverlaysFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, os.WriteFile(first, []byte("[zh-CN.en-US]\n\"首页\" = \"Start\"\n\"船体\" = \"Hull\"\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("zh-CN:\n  en-US:\n    首页: Front page\n"), 0644))

	tbl, err := LoadAll(first, second)
	require.NoError(t, err)

	got, _ := tbl.Lookup("zh-CN", "en-US", "首页")
	assert.Equal(t, "Front page", got)
	got, _ = tbl.Lookup("zh-CN", "en-US", "船体")
	assert.Equal(t, "Hull", got)
	got, _ = tbl.Lookup("zh-CN", "en-US", "电话")
	assert.Equal(t, "Phone", got)

	_, err = LoadAll(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
