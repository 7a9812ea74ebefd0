package processor

import (
	"iter"

	"github.com/badele/namenorm/internal/chars"
	"github.com/badele/namenorm/internal/words"
)

// Sanitize produces the search form of text: words split on whitespace and
// seps, joined by single spaces, diacritics stripped and lower-cased.
func Sanitize(text string, seps ...rune) iter.Seq[rune] {
	return chars.ToLower(chars.StripDiacritics(words.SpaceJoin(words.SplitExt(text, seps...))))
}

// SanitizeName produces the display form of a name: single spaces and every
// word capitalized, particles included.
//
//	"MIKE THOMPSON garcia perez" -> "Mike Thompson Garcia Perez"
func SanitizeName(text string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for w := range words.SanitizeSpacesSeq(text) {
			for r := range chars.CapitalizeFirst(chars.Word(w)) {
				if !yield(r) {
					return
				}
			}
		}
	}
}
