// Package classify infers canonical card stems from source asset file names.
//
// Two source naming schemes are understood: the English Pixel_Cards scheme
// (Clubs_1, Hearts_13, Joker_Red) and the Finnish scheme (hertta_01,
// tausta_sininen). Classification is pure and never touches the filesystem.
package classify

import "strings"

// Classify returns the canonical stem for a file name stem (extension
// already stripped), or false if no rule recognizes it.
func Classify(stem string) (string, bool) {
	target, _, ok := Explain(stem)
	return target, ok
}

// Explain is Classify that also reports the name of the matching rule.
func Explain(stem string) (target, rule string, ok bool) {
	s := strings.TrimSpace(stem)
	for _, r := range rules {
		if target, ok := r.Match(s); ok {
			return target, r.Name, true
		}
	}
	return "", "", false
}
