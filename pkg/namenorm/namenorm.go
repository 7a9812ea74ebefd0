// Package namenorm provides a public API for normalizing and comparing
// personal names.
//
// This package provides functions to:
//   - Split names into words and collapse whitespace
//   - Strip diacritics and apply full Unicode case mappings
//   - Compare names by the initials of their words
//   - Classify name words into particles (de, la, del, y) and parts
//   - Convert legacy encodings (CP437, CP850, ISO-8859-1) to UTF-8
//
// All sequences are lazy iter.Seq values computed as they are ranged over.
//
// Example usage:
//
//	import "github.com/badele/namenorm/pkg/namenorm"
//
//	namenorm.SanitizeSpaces(" Sarah \t Martinez ")       // "Sarah Martinez"
//	namenorm.SanitizeName("MARIA del CARMEN")            // "Maria Del Carmen"
//	namenorm.CompareFirstLetter("Bob A. W.", "Bob Ann W") // true
//	tokens := namenorm.NewTokenizer("Martinez de la Cruz").Tokenize()
package namenorm

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/badele/namenorm/internal/chars"
	"github.com/badele/namenorm/internal/compare"
	"github.com/badele/namenorm/internal/importer/particles"
	"github.com/badele/namenorm/internal/processor"
	"github.com/badele/namenorm/internal/types"
	"github.com/badele/namenorm/internal/words"
)

// Type aliases for public API
type (
	// Token is a classified word of a name (particle or part)
	Token = types.Token

	// TokenKind is the classification of a token
	TokenKind = types.TokenKind

	// TokenStats contains statistics about scanned tokens
	TokenStats = types.TokenStats

	// Tokenizer classifies the words of a name
	Tokenizer = particles.Tokenizer

	// Segment is a name part with the particles leading into it
	Segment = particles.Segment

	// Pipeline is a configurable normalization pipeline
	Pipeline = processor.Pipeline

	// PipelineOptions configures a Pipeline
	PipelineOptions = processor.Options

	// CaseMode selects the case transform of a Pipeline
	CaseMode = processor.CaseMode
)

// Token kind constants
const (
	TokenPart = types.TokenPart
	TokenDe   = types.TokenDe
	TokenLa   = types.TokenLa
	TokenDel  = types.TokenDel
	TokenY    = types.TokenY
)

// Case mode constants
const (
	CaseKeep  = processor.CaseKeep
	CaseLower = processor.CaseLower
	CaseUpper = processor.CaseUpper
	CaseName  = processor.CaseName
)

// Words yields the words of text. extras are additional separators.
func Words(text string, extras ...rune) iter.Seq[string] {
	return words.SplitExt(text, extras...)
}

// SpaceJoin yields the words of seq with a single space between each pair.
func SpaceJoin(seq iter.Seq[string]) iter.Seq[string] {
	return words.SpaceJoin(seq)
}

// SanitizeSpaces collapses whitespace runs into single spaces and trims both
// ends.
func SanitizeSpaces(text string) string {
	return words.SanitizeSpaces(text)
}

// Sanitize returns the search form of text: single spaces, no diacritics,
// lower case.
func Sanitize(text string, seps ...rune) string {
	return chars.Collect(processor.Sanitize(text, seps...))
}

// SanitizeName capitalizes every word of a name and collapses whitespace.
func SanitizeName(text string) string {
	return chars.Collect(processor.SanitizeName(text))
}

// StripDiacritics removes diacritical marks from text, keeping the first
// scalar of each character's canonical decomposition.
func StripDiacritics(text string) string {
	return chars.Collect(chars.StripDiacriticsRunes(chars.Word(text)))
}

// CompareFirstLetter reports whether a and b have the same number of words
// with the same initials in the same order.
func CompareFirstLetter(a, b string) bool {
	return compare.FirstLetter(a, b)
}

// Initials returns the lower-cased first letter of every word of text.
func Initials(text string) string {
	return compare.Initials(text)
}

// NewTokenizer creates a particle tokenizer over name.
func NewTokenizer(name string) *Tokenizer {
	return particles.NewTokenizer(name)
}

// Segments attaches particles to the name part that follows them.
func Segments(tokens []Token) []Segment {
	return particles.Segments(tokens)
}

// NewPipeline creates a normalization pipeline.
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	return processor.NewPipeline(opts)
}

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" || sourceEncoding == "" {
		return stripUTF8BOM(data), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return stripUTF8BOM(utf8Data), nil
}
