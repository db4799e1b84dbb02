package renamer

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Walk calls fn for every candidate path under roots. A file root is passed
// to fn directly. A directory root is walked recursively or, when recursive
// is false, only its immediate children are visited. Roots that do not exist
// are reported through missing and skipped. Directory entries are yielded
// without filtering; callers decide what counts as a file. Errors returned
// by fn stop the walk.
func Walk(roots []string, recursive bool, log logrus.FieldLogger, missing func(root string), fn func(path string) error) error {
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			if missing != nil {
				missing(root)
			}
			continue
		}

		if !info.IsDir() {
			if err := fn(root); err != nil {
				return err
			}
			continue
		}

		if recursive {
			err = walkRecursive(root, log, fn)
		} else {
			err = walkShallow(root, log, fn)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func walkRecursive(root string, log logrus.FieldLogger, fn func(string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, the walk goes on
			log.WithError(err).WithField("path", path).Debug("skipping unreadable path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		return fn(path)
	})
}

func walkShallow(root string, log logrus.FieldLogger, fn func(string) error) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		log.WithError(err).WithField("path", root).Debug("skipping unreadable directory")
		return nil
	}
	for _, entry := range entries {
		if err := fn(filepath.Join(root, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
