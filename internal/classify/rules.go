package classify

import (
	"regexp"
	"strings"

	"github.com/arcanaland/cardrename/internal/card"
)

// Rule pairs a name with a match function. Rules are evaluated in order by
// [Classify]; first match wins. Exact patterns must precede their prefix
// variants.
type Rule struct {
	Name  string
	Match func(stem string) (string, bool)
}

// specialNames maps lowercase source stems to special canonical stems.
var specialNames = map[string]string{
	// Pixel_Cards scheme
	"card_blank":  card.Blank,
	"card_back":   card.BackBlue,
	"joker_black": card.JokerBlack,
	"joker black": card.JokerBlack,
	"joker_red":   card.JokerRed,
	"joker red":   card.JokerRed,

	// Finnish scheme
	"tausta_sininen":  card.BackBlue,
	"tausta sininen":  card.BackBlue,
	"tausta_punainen": card.BackRed,
	"tausta punainen": card.BackRed,
	"jokeri_musta":    card.JokerBlack,
	"jokeri musta":    card.JokerBlack,
	"jokeri_punainen": card.JokerRed,
	"jokeri punainen": card.JokerRed,
}

var (
	reEnglishExact  = regexp.MustCompile(`(?i)^(clubs|spades|diamonds|hearts)_(\p{Nd}+)$`)
	reEnglishPrefix = regexp.MustCompile(`(?i)^(clubs|spades|diamonds|hearts)_(\p{Nd}+)`)
	reFinnishExact  = regexp.MustCompile(`^(hertta|pata|risti|ruutu)_(\p{Nd}+)$`)
	reFinnishPrefix = regexp.MustCompile(`^(hertta|pata|risti|ruutu)_(\p{Nd}+)`)
)

var rules = []Rule{
	{Name: "special", Match: matchSpecial},
	{Name: "english-exact", Match: suitRank(reEnglishExact, card.EnglishSuits, false)},
	{Name: "english-prefix", Match: suitRank(reEnglishPrefix, card.EnglishSuits, false)},
	{Name: "finnish-exact", Match: suitRank(reFinnishExact, card.FinnishSuits, true)},
	{Name: "finnish-prefix", Match: suitRank(reFinnishPrefix, card.FinnishSuits, true)},
}

// Rules returns a copy of the ordered classification table.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

func matchSpecial(stem string) (string, bool) {
	target, ok := specialNames[strings.ToLower(stem)]
	return target, ok
}

// suitRank builds a match function for a suit_number pattern. When lower is
// set the stem is lowercased before matching.
func suitRank(re *regexp.Regexp, suits map[string]string, lower bool) func(string) (string, bool) {
	return func(stem string) (string, bool) {
		if lower {
			stem = strings.ToLower(stem)
		}
		m := re.FindStringSubmatch(stem)
		if m == nil {
			return "", false
		}
		suit, ok := suits[strings.ToLower(m[1])]
		if !ok {
			return "", false
		}
		return card.Stem(suit, card.RankCode(m[2])), true
	}
}
