// Package renamer walks card asset folders and renames recognized image
// files to canonical {suit}_{rank}.{ext} names.
//
// Processing is strictly sequential: each file goes through
// stat → extension filter → classify → collision resolve → report/rename
// before the next one is looked at, so the existence check in [UniquePath]
// cannot race with another rename from the same run.
package renamer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arcanaland/cardrename/internal/classify"
	"github.com/arcanaland/cardrename/internal/config"
)

// Options controls a rename run.
type Options struct {
	Roots      []string
	Recursive  bool
	Apply      bool // false means dry-run
	Extensions config.ExtensionSet
}

// Stats tracks counters across a run. Renamed includes dry-run previews.
type Stats struct {
	Seen    int
	Renamed int
	Skipped int
}

// Renamer executes one rename run.
type Renamer struct {
	opts   Options
	report *Reporter
	log    logrus.FieldLogger
	stats  Stats

	rename func(oldpath, newpath string) error
	exists func(path string) bool
}

// New creates a Renamer. A nil log discards diagnostics.
func New(opts Options, report *Reporter, log logrus.FieldLogger) *Renamer {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Renamer{
		opts:   opts,
		report: report,
		log:    log,
		rename: os.Rename,
		exists: pathExists,
	}
}

// Run processes every file under the configured roots and prints the
// summary. It stops at the first fatal error (rename failure or collision
// suffix exhaustion) and returns the counters gathered so far.
func (r *Renamer) Run() (Stats, error) {
	err := Walk(r.opts.Roots, r.opts.Recursive, r.log, r.report.MissingRoot, r.process)
	if err != nil {
		return r.stats, err
	}
	r.report.Summary(r.stats, !r.opts.Apply)
	return r.stats, nil
}

func (r *Renamer) process(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	r.stats.Seen++

	log := r.log.WithField("path", path)

	ext := strings.ToLower(filepath.Ext(path))
	if !r.opts.Extensions.Contains(ext) {
		log.Debug("skipping: extension not accepted")
		r.stats.Skipped++
		return nil
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	target, rule, ok := classify.Explain(stem)
	if !ok {
		log.Debug("skipping: unrecognized name")
		r.stats.Skipped++
		return nil
	}

	dest := filepath.Join(filepath.Dir(path), target+ext)
	if dest == filepath.Clean(path) {
		log.Debug("skipping: already canonical")
		r.stats.Skipped++
		return nil
	}

	dest, err = UniquePath(dest, r.exists)
	if err != nil {
		return err
	}
	log = log.WithFields(logrus.Fields{"rule": rule, "target": dest})

	if !r.opts.Apply {
		log.Debug("planned rename")
		r.report.Planned(path, dest)
		r.stats.Renamed++
		return nil
	}

	if err := r.rename(path, dest); err != nil {
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	log.Debug("renamed")
	r.report.Renamed(path, dest)
	r.stats.Renamed++
	return nil
}
