package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardrename/internal/config"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	}
}

func TestLoadDeck(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"c_a.png", "c_a.webp", "h_k.png", "back_b.png",
		"c_a_dup1.png", "Clubs_1.png", "notes.txt",
		"sub/s_a.png",
	)

	d, err := LoadDeck(dir, config.ParseExtensions(config.DefaultExtensions))
	require.NoError(t, err)

	assert.Equal(t, []string{"back_b", "c_a", "h_k"}, d.Stems())
	assert.Len(t, d.Cards["c_a"], 2)
	assert.Equal(t, []string{filepath.Join(dir, "c_a_dup1.png")}, d.Duplicates)
	assert.Equal(t, []string{filepath.Join(dir, "Clubs_1.png")}, d.Unrecognized)
}

func TestGetCard(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "h_q.webp", "h_q.png")

	d, err := LoadDeck(dir, config.ParseExtensions(config.DefaultExtensions))
	require.NoError(t, err)

	c, path, err := d.GetCard("h_q")
	require.NoError(t, err)
	assert.Equal(t, "Queen of Hearts", c.Name())
	assert.Equal(t, filepath.Join(dir, "h_q.png"), path)

	_, _, err = d.GetCard("h_k")
	assert.Error(t, err)

	_, _, err = d.GetCard("Hearts_12")
	assert.Error(t, err)
}

func TestLoadDeckErrors(t *testing.T) {
	_, err := LoadDeck(filepath.Join(t.TempDir(), "missing"), config.ParseExtensions("png"))
	assert.Error(t, err)

	dir := t.TempDir()
	touch(t, dir, "c_a.png")
	_, err = LoadDeck(filepath.Join(dir, "c_a.png"), config.ParseExtensions("png"))
	assert.Error(t, err)
}

func TestLoadDeckFollowsSymlinks(t *testing.T) {
	src := t.TempDir()
	touch(t, src, "Queen.png")
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d_q.png"), 0755))
	if err := os.Symlink(filepath.Join(src, "Queen.png"), filepath.Join(dir, "h_q.png")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(src, "gone.png"), filepath.Join(dir, "h_k.png")))

	d, err := LoadDeck(dir, config.ParseExtensions(config.DefaultExtensions))
	require.NoError(t, err)

	assert.Equal(t, []string{"h_q"}, d.Stems())
	assert.Empty(t, d.Unrecognized)
}
