package renamer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniquePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		existing []string
		want     string
	}{
		{"free", "/deck/c_a.png", nil, "/deck/c_a.png"},
		{"first dup", "/deck/c_a.png", []string{"/deck/c_a.png"}, "/deck/c_a_dup1.png"},
		{"next free dup", "/deck/c_a.png", []string{"/deck/c_a.png", "/deck/c_a_dup1.png", "/deck/c_a_dup2.png"}, "/deck/c_a_dup3.png"},
		{"gap is reused", "/deck/c_a.png", []string{"/deck/c_a.png", "/deck/c_a_dup2.png"}, "/deck/c_a_dup1.png"},
		{"no extension", "/deck/blank", []string{"/deck/blank"}, "/deck/blank_dup1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taken := make(map[string]bool)
			for _, p := range tt.existing {
				taken[p] = true
			}
			got, err := UniquePath(tt.path, func(p string) bool { return taken[p] })
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUniquePathExhausted(t *testing.T) {
	calls := 0
	_, err := UniquePath("/deck/c_a.png", func(string) bool {
		calls++
		return true
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyCollisions))
	assert.Contains(t, err.Error(), "/deck/c_a.png")
	assert.Equal(t, MaxDupSuffix, calls)
}

func TestUniquePathOnDisk(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "h_k.png")

	got, err := UniquePath(target, nil)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	require.NoError(t, os.WriteFile(target, nil, 0644))
	got, err = UniquePath(target, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "h_k_dup1.png"), got)
}
