package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtensions(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    []string
	}{
		{"default csv", []string{DefaultExtensions}, []string{".png", ".jpg", ".jpeg", ".webp"}},
		{"mixed case and dots", []string{"PNG,.Gif, .jpeg"}, []string{".png", ".gif", ".jpeg"}},
		{"blank entries", []string{" , png,,"}, []string{".png"}},
		{"multiple entries", []string{"png", "webp"}, []string{".png", ".webp"}},
		{"double dot", []string{"..png"}, []string{".png"}},
		{"empty", []string{""}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ParseExtensions(tt.entries...)
			assert.Len(t, set, len(tt.want))
			for _, ext := range tt.want {
				assert.True(t, set.Contains(ext), ext)
			}
		})
	}
}

func TestExtensionSetContainsIgnoresCase(t *testing.T) {
	set := ParseExtensions("png")
	assert.True(t, set.Contains(".PNG"))
	assert.False(t, set.Contains(".gif"))
	assert.False(t, set.Contains(""))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Recursive)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `roots = ["/srv/cards"]
extensions = ["png", "gif"]
recursive = false
color = "never"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/srv/cards"}, cfg.Roots)
	assert.Equal(t, []string{"png", "gif"}, cfg.Extensions)
	assert.False(t, cfg.Recursive)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`roots = ["a"]`+"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cfg.Roots)
	assert.True(t, cfg.Recursive)
	assert.Equal(t, Default().Extensions, cfg.Extensions)
}

func TestLoadInvalidColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`color = "rainbow"`+"\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("roots = [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Default()
	want.Roots = []string{"/one", "/two"}
	want.Color = ColorAlways

	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))
	assert.Contains(t, buf.String(), `color = "auto"`)
	assert.Contains(t, buf.String(), "recursive = true")
}

func TestGetConfigFilePathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "cardrename", "config.toml"), GetConfigFilePath())
}
