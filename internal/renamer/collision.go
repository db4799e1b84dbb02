package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxDupSuffix bounds the _dupN search; suffixes run from 1 to MaxDupSuffix-1.
const MaxDupSuffix = 9999

// ErrTooManyCollisions is returned when every _dupN candidate is taken.
var ErrTooManyCollisions = errors.New("too many collisions")

// UniquePath returns path if nothing exists there, otherwise the first free
// "{stem}_dup{N}{ext}" variant in the same directory. exists defaults to an
// os.Lstat check when nil.
//
// The check is time-of-check/time-of-use; callers must apply renames one at
// a time.
func UniquePath(path string, exists func(string) bool) (string, error) {
	if exists == nil {
		exists = pathExists
	}
	if !exists(path) {
		return path, nil
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; i < MaxDupSuffix; i++ {
		candidate := fmt.Sprintf("%s_dup%d%s", base, i, ext)
		if !exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w for %s", ErrTooManyCollisions, path)
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
