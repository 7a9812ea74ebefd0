// Package words splits free text into words and rejoins them with a single
// canonical space.
//
// Every word yielded is a substring of the input, so no text is copied while
// iterating. Sequences are lazy: nothing is computed until the caller ranges
// over them, and breaking out of the loop stops the scan.
package words

import (
	"iter"
	"slices"
	"strings"
)

// Space is the separator emitted between two words by SpaceJoin.
const Space = " "

// baseSeparators are always word boundaries.
var baseSeparators = []rune{' ', '\n', '\t', '\r'}

// Split yields the words of text, separated by spaces, tabs, newlines and
// carriage returns.
func Split(text string) iter.Seq[string] {
	return SplitExt(text)
}

// SplitExt is Split with extra separator characters. Runs of separators
// collapse into a single break and words are trimmed of surrounding
// whitespace, so an empty word is never yielded.
func SplitExt(text string, extras ...rune) iter.Seq[string] {
	isSep := func(r rune) bool {
		return IsSeparator(r, extras...)
	}

	return func(yield func(string) bool) {
		for field := range strings.FieldsFuncSeq(text, isSep) {
			word := strings.TrimSpace(field)
			if word == "" {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

// IsSeparator reports whether r is a base separator or one of extras.
func IsSeparator(r rune, extras ...rune) bool {
	return slices.Contains(baseSeparators, r) || slices.Contains(extras, r)
}

// SpaceJoin yields the words of seq with Space between each consecutive
// pair. There is never a space before the first word or after the last.
func SpaceJoin(seq iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		first := true
		for word := range seq {
			if !first && !yield(Space) {
				return
			}
			first = false
			if !yield(word) {
				return
			}
		}
	}
}

// SanitizeSpacesSeq yields the words of text interleaved with single spaces.
func SanitizeSpacesSeq(text string) iter.Seq[string] {
	return SpaceJoin(Split(text))
}

// SanitizeSpaces collapses every whitespace run of text into a single space
// and trims both ends.
//
//	SanitizeSpaces("\t\t\n Hello, \n\n\t \r\n world!\n\t\n") == "Hello, world!"
func SanitizeSpaces(text string) string {
	return Join(SanitizeSpacesSeq(text))
}

// Join concatenates every string of seq.
func Join(seq iter.Seq[string]) string {
	var sb strings.Builder
	for s := range seq {
		sb.WriteString(s)
	}
	return sb.String()
}
