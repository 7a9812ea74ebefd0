// Package chars provides lazy character-level transforms over rune
// sequences: diacritic stripping, full case mapping, capitalization and
// character substitution.
//
// Case mapping uses the full Unicode mappings from golang.org/x/text/cases,
// so a single input character may produce several output characters
// ('ß' upper-cases to "SS"). Output length is not tied to input length.
package chars

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Runes flattens a sequence of words into their characters.
func Runes(words iter.Seq[string]) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for w := range words {
			for _, r := range w {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Word yields the characters of w.
func Word(w string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range w {
			if !yield(r) {
				return
			}
		}
	}
}

// StripDiacritics yields the characters of words with their diacritical
// marks removed. See BaseRune.
func StripDiacritics(words iter.Seq[string]) iter.Seq[rune] {
	return StripDiacriticsRunes(Runes(words))
}

// StripDiacriticsRunes maps every character of seq to BaseRune.
func StripDiacriticsRunes(seq iter.Seq[rune]) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for r := range seq {
			if !yield(BaseRune(r)) {
				return
			}
		}
	}
}

// BaseRune returns the first scalar of the canonical decomposition (NFD) of
// r, which is the base letter for precomposed Latin characters ('é' gives
// 'e'). Characters whose decomposition needs several scalars to represent
// the base form lose everything after the first one.
func BaseRune(r rune) rune {
	var (
		enc     [utf8.UTFMax]byte
		scratch [4 * utf8.UTFMax]byte
	)

	n := utf8.EncodeRune(enc[:], r)
	decomposed := norm.NFD.Append(scratch[:0], enc[:n]...)
	if len(decomposed) == 0 {
		panic(fmt.Sprintf("chars: empty canonical decomposition for %U", r))
	}

	base, _ := utf8.DecodeRune(decomposed)
	return base
}

// ToLower maps every character of seq to its full lower-case mapping.
func ToLower(seq iter.Seq[rune]) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		lower := cases.Lower(language.Und)
		for r := range seq {
			if !yieldMapped(lower, r, yield) {
				return
			}
		}
	}
}

// ToUpper maps every character of seq to its full upper-case mapping.
func ToUpper(seq iter.Seq[rune]) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		upper := cases.Upper(language.Und)
		for r := range seq {
			if !yieldMapped(upper, r, yield) {
				return
			}
		}
	}
}

// CapitalizeFirst upper-cases the first character of seq and lower-cases
// every following one. Each call handles a single word: apply it per word to
// capitalize a whole name.
func CapitalizeFirst(seq iter.Seq[rune]) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		upper := cases.Upper(language.Und)
		lower := cases.Lower(language.Und)
		first := true
		for r := range seq {
			c := lower
			if first {
				c, first = upper, false
			}
			if !yieldMapped(c, r, yield) {
				return
			}
		}
	}
}

// Replace yields to in place of every character of seq found in matches.
func Replace(seq iter.Seq[rune], matches []rune, to rune) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for r := range seq {
			if slices.Contains(matches, r) {
				r = to
			}
			if !yield(r) {
				return
			}
		}
	}
}

// FirstN yields, for each word, its first n characters lower-cased. Only
// the first character of each lower-case mapping is kept, so exactly
// min(n, len) characters come out per word.
func FirstN(words iter.Seq[string], n int) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		lower := cases.Lower(language.Und)
		for w := range words {
			taken := 0
			for _, r := range w {
				if taken == n {
					break
				}
				taken++
				if !yield(firstMapped(lower, r)) {
					return
				}
			}
		}
	}
}

// Collect builds a string from seq.
func Collect(seq iter.Seq[rune]) string {
	var sb strings.Builder
	for r := range seq {
		sb.WriteRune(r)
	}
	return sb.String()
}

func yieldMapped(c cases.Caser, r rune, yield func(rune) bool) bool {
	for _, m := range mapRune(c, r) {
		if !yield(m) {
			return false
		}
	}
	return true
}

func firstMapped(c cases.Caser, r rune) rune {
	m, _ := utf8.DecodeRuneInString(mapRune(c, r))
	return m
}

func mapRune(c cases.Caser, r rune) string {
	return c.String(string(r))
}
