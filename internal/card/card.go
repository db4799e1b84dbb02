package card

import (
	"fmt"
	"strings"
	"unicode"
)

// Suit codes used in canonical file names
const (
	Clubs    = "c"
	Spades   = "s"
	Diamonds = "d"
	Hearts   = "h"
)

// Special canonical stems
const (
	Blank      = "blank"
	BackBlue   = "back_b"
	BackRed    = "back_r"
	JokerBlack = "joker_b"
	JokerRed   = "joker_r"
)

const (
	stemSep   = "_"
	aceCode   = "a"
	jackCode  = "j"
	queenCode = "q"
	kingCode  = "k"
)

// Suits lists the suit codes in deck order
var Suits = []string{Clubs, Spades, Diamonds, Hearts}

// RankCodes lists the rank codes from ace to king
var RankCodes = []string{"a", "2", "3", "4", "5", "6", "7", "8", "9", "10", "j", "q", "k"}

// EnglishSuits maps English suit words to suit codes
var EnglishSuits = map[string]string{
	"clubs":    Clubs,
	"spades":   Spades,
	"diamonds": Diamonds,
	"hearts":   Hearts,
}

// FinnishSuits maps Finnish suit words to suit codes
var FinnishSuits = map[string]string{
	"risti":  Clubs,
	"pata":   Spades,
	"ruutu":  Diamonds,
	"hertta": Hearts,
}

var suitNames = map[string]string{
	Clubs:    "Clubs",
	Spades:   "Spades",
	Diamonds: "Diamonds",
	Hearts:   "Hearts",
}

var rankNames = map[string]string{
	aceCode:   "Ace",
	jackCode:  "Jack",
	queenCode: "Queen",
	kingCode:  "King",
}

var specialNames = map[string]string{
	Blank:      "Blank card",
	BackBlue:   "Card back (blue)",
	BackRed:    "Card back (red)",
	JokerBlack: "Joker (black)",
	JokerRed:   "Joker (red)",
}

// Card represents a playing card asset identity
type Card struct {
	ID   string // Canonical stem (e.g., h_q, back_b)
	Suit string // Suit code, empty for specials
	Rank string // Rank code, empty for specials
}

// IsSpecial reports whether the card is a back, joker or blank
func (c Card) IsSpecial() bool {
	return c.Suit == ""
}

// IsStandard reports whether the rank is one of ace through king
func (c Card) IsStandard() bool {
	if c.IsSpecial() {
		return false
	}
	for _, r := range RankCodes {
		if r == c.Rank {
			return true
		}
	}
	return false
}

// Name returns a human readable card name
func (c Card) Name() string {
	if c.IsSpecial() {
		return specialNames[c.ID]
	}
	rank, ok := rankNames[c.Rank]
	if !ok {
		rank = c.Rank
	}
	return fmt.Sprintf("%s of %s", rank, suitNames[c.Suit])
}

// RankCode converts a decimal digit string to a rank code. Any Unicode
// decimal digits are accepted and folded to ASCII. Values outside 1-13 pass
// through as their decimal string.
func RankCode(digits string) string {
	n := strings.TrimLeft(asciiDigits(digits), "0")
	if n == "" {
		n = "0"
	}
	switch n {
	case "1":
		return aceCode
	case "11":
		return jackCode
	case "12":
		return queenCode
	case "13":
		return kingCode
	}
	return n
}

// Stem builds the canonical stem for a suit and rank code
func Stem(suit, rank string) string {
	return suit + stemSep + rank
}

// ParseCanonical recognizes a canonical stem. Ranks are not range checked,
// so "c_14" parses as a non-standard card.
func ParseCanonical(stem string) (Card, bool) {
	if _, ok := specialNames[stem]; ok {
		return Card{ID: stem}, true
	}

	suit, rank, found := strings.Cut(stem, stemSep)
	if !found || rank == "" {
		return Card{}, false
	}
	if _, ok := suitNames[suit]; !ok {
		return Card{}, false
	}
	if _, ok := rankNames[rank]; !ok && !isDecimal(rank) {
		return Card{}, false
	}
	// Canonical decimal ranks never carry leading zeros
	if isDecimal(rank) && RankCode(rank) != rank {
		return Card{}, false
	}
	return Card{ID: stem, Suit: suit, Rank: rank}, true
}

// StandardDeck returns the 52 canonical stems in suit then rank order
func StandardDeck() []string {
	stems := make([]string, 0, len(Suits)*len(RankCodes))
	for _, s := range Suits {
		for _, r := range RankCodes {
			stems = append(stems, Stem(s, r))
		}
	}
	return stems
}

// Specials returns the special canonical stems
func Specials() []string {
	return []string{BackBlue, BackRed, JokerBlack, JokerRed, Blank}
}

// asciiDigits folds Unicode decimal digits (e.g., "١٢" or "１２") to ASCII.
// Other runes are kept as they are.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if v, ok := digitValue(r); ok {
			return '0' + rune(v)
		}
		return r
	}, s)
}

// digitValue returns the value of a Unicode decimal digit. Nd digits come in
// contiguous runs of ten starting at zero, so the value is the offset into
// the range modulo ten.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return int((r-lo)/rune(rg.Stride)) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return int((r-lo)/rune(rg.Stride)) % 10, true
		}
	}
	return 0, false
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
