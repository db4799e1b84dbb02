package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/arcanaland/cardrename/internal/card"
	"github.com/arcanaland/cardrename/internal/config"
)

var reDupSuffix = regexp.MustCompile(`_dup\d+$`)

// Deck represents a folder of normalized card images
type Deck struct {
	Path string

	// Card files by canonical stem; a stem may exist with several extensions
	Cards map[string][]string

	// Leftover collision copies (e.g., c_a_dup1.png)
	Duplicates []string

	// Image files whose names are not canonical
	Unrecognized []string
}

// LoadDeck scans the immediate children of deckPath for image files with
// one of the given extensions
func LoadDeck(deckPath string, exts config.ExtensionSet) (*Deck, error) {
	info, err := os.Stat(deckPath)
	if err != nil {
		return nil, fmt.Errorf("deck directory not found: %s", deckPath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", deckPath)
	}

	entries, err := os.ReadDir(deckPath)
	if err != nil {
		return nil, fmt.Errorf("error reading deck directory: %w", err)
	}

	d := &Deck{
		Path:  deckPath,
		Cards: make(map[string][]string),
	}

	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		if !exts.Contains(ext) {
			continue
		}

		// Stat follows symlinks, matching what a rename run counts
		path := filepath.Join(deckPath, name)
		if fi, err := os.Stat(path); err != nil || !fi.Mode().IsRegular() {
			continue
		}
		stem := strings.TrimSuffix(name, ext)

		if _, ok := card.ParseCanonical(stem); ok {
			d.Cards[stem] = append(d.Cards[stem], path)
			continue
		}
		if base := reDupSuffix.ReplaceAllString(stem, ""); base != stem {
			if _, ok := card.ParseCanonical(base); ok {
				d.Duplicates = append(d.Duplicates, path)
				continue
			}
		}
		d.Unrecognized = append(d.Unrecognized, path)
	}

	sort.Strings(d.Duplicates)
	sort.Strings(d.Unrecognized)
	return d, nil
}

// GetCard returns the image path for a canonical stem. When the stem exists
// with several extensions the lexically first path wins.
func (d *Deck) GetCard(stem string) (card.Card, string, error) {
	c, ok := card.ParseCanonical(stem)
	if !ok {
		return card.Card{}, "", fmt.Errorf("invalid card ID format: %s", stem)
	}
	paths := d.Cards[stem]
	if len(paths) == 0 {
		return card.Card{}, "", fmt.Errorf("card not found: %s", stem)
	}
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	return c, sorted[0], nil
}

// Stems returns the canonical stems present, sorted
func (d *Deck) Stems() []string {
	stems := make([]string, 0, len(d.Cards))
	for stem := range d.Cards {
		stems = append(stems, stem)
	}
	sort.Strings(stems)
	return stems
}
