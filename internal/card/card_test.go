package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankCode(t *testing.T) {
	tests := []struct {
		digits string
		want   string
	}{
		{"1", "a"},
		{"01", "a"},
		{"2", "2"},
		{"06", "6"},
		{"10", "10"},
		{"11", "j"},
		{"12", "q"},
		{"13", "k"},
		{"0", "0"},
		{"00", "0"},
		{"14", "14"},
		{"0099", "99"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"١", "a"},
		{"０１", "a"},
		{"１２", "q"},
		{"१०", "10"},
		{"\U0001D7D9\U0001D7CF", "j"},
	}
	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, RankCode(tt.digits))
		})
	}
}

func TestParseCanonical(t *testing.T) {
	tests := []struct {
		stem     string
		ok       bool
		standard bool
		name     string
	}{
		{"h_q", true, true, "Queen of Hearts"},
		{"c_a", true, true, "Ace of Clubs"},
		{"s_10", true, true, "10 of Spades"},
		{"back_b", true, false, "Card back (blue)"},
		{"joker_r", true, false, "Joker (red)"},
		{"blank", true, false, "Blank card"},
		{"d_14", true, false, "14 of Diamonds"},
		{"c_1", false, false, ""},
		{"c_01", false, false, ""},
		{"x_a", false, false, ""},
		{"c_", false, false, ""},
		{"c_a_dup1", false, false, ""},
		{"Clubs_1", false, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			c, ok := ParseCanonical(tt.stem)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.stem, c.ID)
			assert.Equal(t, tt.standard, c.IsStandard())
			assert.Equal(t, tt.name, c.Name())
		})
	}
}

func TestStandardDeck(t *testing.T) {
	deck := StandardDeck()
	assert.Len(t, deck, 52)
	assert.Equal(t, "c_a", deck[0])
	assert.Equal(t, "h_k", deck[51])

	seen := make(map[string]bool)
	for _, stem := range deck {
		assert.False(t, seen[stem], "duplicate stem %s", stem)
		seen[stem] = true
		c, ok := ParseCanonical(stem)
		assert.True(t, ok, stem)
		assert.True(t, c.IsStandard(), stem)
	}
}

func TestParseCanonicalRejectsNonASCIIRank(t *testing.T) {
	_, ok := ParseCanonical("c_\uff12")
	assert.False(t, ok)
}
