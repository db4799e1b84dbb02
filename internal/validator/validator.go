package validator

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arcanaland/cardrename/internal/card"
	"github.com/arcanaland/cardrename/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Deck    *deck.Deck
	Results ValidationResults
}

func NewValidator(d *deck.Deck) *Validator {
	return &Validator{
		Deck:    d,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateStandardCards()
	v.validateSpecials()
	v.validateRanks()
	v.validateExtensions()
	v.validateLeftovers()

	return v.Results
}

// validateStandardCards checks that all 52 suit cards exist
func (v *Validator) validateStandardCards() {
	for _, suit := range card.Suits {
		missing := []string{}
		for _, rank := range card.RankCodes {
			stem := card.Stem(suit, rank)
			if len(v.Deck.Cards[stem]) == 0 {
				missing = append(missing, stem)
			}
		}
		if len(missing) > 0 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("missing cards: %s", strings.Join(missing, ", ")))
		}
	}
}

// validateSpecials checks for card backs, jokers and the blank card
func (v *Validator) validateSpecials() {
	for _, stem := range card.Specials() {
		if len(v.Deck.Cards[stem]) == 0 {
			c, _ := card.ParseCanonical(stem)
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("missing %s: %s", strings.ToLower(c.Name()), stem))
		}
	}
}

// validateRanks flags cards whose rank is outside ace through king
func (v *Validator) validateRanks() {
	for _, stem := range v.Deck.Stems() {
		c, _ := card.ParseCanonical(stem)
		if !c.IsSpecial() && !c.IsStandard() {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("rank out of range: %s", stem))
		}
	}
}

// validateExtensions flags a card stored under several extensions
func (v *Validator) validateExtensions() {
	for _, stem := range v.Deck.Stems() {
		paths := v.Deck.Cards[stem]
		if len(paths) < 2 {
			continue
		}
		names := make([]string, len(paths))
		for i, p := range paths {
			names[i] = filepath.Base(p)
		}
		sort.Strings(names)
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("card %s has several files: %s", stem, strings.Join(names, ", ")))
	}
}

// validateLeftovers reports collision copies and files still awaiting a rename
func (v *Validator) validateLeftovers() {
	for _, p := range v.Deck.Duplicates {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("duplicate copy left by a rename: %s", filepath.Base(p)))
	}
	for _, p := range v.Deck.Unrecognized {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("non-canonical image file: %s", filepath.Base(p)))
	}
}
