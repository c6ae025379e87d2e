package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `{
  "featured": ["KJV"],
  "versions": [
    {"initials": "KJV", "name": "King James Version", "languageCode": "en", "languageName": "English", "category": "BIBLE"},
    {"initials": "ESV", "name": "English Standard Version", "languageCode": "en", "languageName": "English", "category": "BIBLE"},
    {"initials": "LXX", "name": "Septuagint", "languageCode": "grc", "languageName": "Ancient Greek", "category": "BIBLE"},
    {"initials": "MHC", "name": "Matthew Henry Concise", "languageCode": "en", "languageName": "English", "category": "COMMENTARY"}
  ]
}`

func runList(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, _ := execute(t, append([]string{"list", "--catalog", writeCatalog(t), "--lang", "en"}, args...)...)
	return out
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String(), errOut.String()
}

func TestListDefaultFacets(t *testing.T) {
	out := runList(t)
	assert.Contains(t, out, "King James Version")
	assert.Contains(t, out, "English Standard Version")
	assert.NotContains(t, out, "Septuagint")
	assert.NotContains(t, out, "Matthew Henry")
}

func TestListCommentaries(t *testing.T) {
	out := runList(t, "--type", "commentaries", "--language", "langAll")
	assert.Contains(t, out, "Matthew Henry")
	assert.NotContains(t, out, "King James")
}

func TestListQueryIgnoresFacets(t *testing.T) {
	out := runList(t, "--type", "commentaries", "sept")
	assert.Contains(t, out, "Septuagint")
	assert.NotContains(t, out, "Matthew Henry")
}

func TestListCatalogOrderWithoutDuplicates(t *testing.T) {
	out := runList(t, "--language", "langAll")
	assert.Equal(t, 1, strings.Count(out, "King James Version"))
	assert.Less(t, strings.Index(out, "King James"), strings.Index(out, "Septuagint"))
}

func TestListMenuOrder(t *testing.T) {
	out := runList(t, "--menu")
	assert.Equal(t, 2, strings.Count(out, "King James Version"), "featured row and catalog row")
	assert.Contains(t, out, "English Standard Version")

	ancient := runList(t, "--menu", "--language", "langAncient")
	assert.Equal(t, 1, strings.Count(ancient, "Septuagint"))
	assert.NotContains(t, ancient, "King James")
}

func TestListWarnsOnBadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	require.NoError(t, os.MkdirAll(filepath.Join(configHome, "sword-picker"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configHome, "sword-picker", "config.json"), []byte("{not json"), 0o644))

	out, errOut := execute(t, "list", "--catalog", writeCatalog(t), "--lang", "en")
	assert.Contains(t, errOut, "warning:")
	assert.Contains(t, out, "King James Version")
}

func TestCacheInfo(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, _ := execute(t, "cache", "info")
	assert.Contains(t, out, "no cached catalog")

	dir := filepath.Join(home, ".cache", "sword-picker")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.json"), []byte(testCatalog), 0o644))

	out, _ = execute(t, "cache", "info")
	assert.Contains(t, out, "4 versions (3 BIBLE, 1 COMMENTARY)")
}

func TestInitLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.log")
	closer, err := initLogging(path, true)
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
