// Package compare matches names by the initials of their words.
package compare

import (
	"iter"

	"github.com/badele/namenorm/internal/chars"
	"github.com/badele/namenorm/internal/words"
)

// FirstLetter reports whether a and b have the same number of words and the
// same lower-cased first letter for each word, in order. Diacritics are not
// stripped, so "Álvaro" and "Alvaro" do not match.
//
//	FirstLetter("Bob A. Wilson García", "Bob Antonio W. G.") == true
func FirstLetter(a, b string) bool {
	return equal(initials(a), initials(b))
}

// Initials returns the lower-cased first letter of every word of text.
func Initials(text string) string {
	return chars.Collect(initials(text))
}

func initials(text string) iter.Seq[rune] {
	return chars.FirstN(words.Split(text), 1)
}

// equal compares two sequences element by element and stops at the first
// difference.
func equal(a, b iter.Seq[rune]) bool {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	for {
		ra, okA := nextA()
		rb, okB := nextB()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if ra != rb {
			return false
		}
	}
}
