// Package particles classifies the words of a name into connector
// particles (de, la, del, y) and ordinary name parts.
package particles

import (
	"iter"
	"strings"

	"github.com/badele/namenorm/internal/types"
)

var (
	_ types.TokenizerWithStats = (*Tokenizer)(nil)
	_ types.StreamTokenizer    = (*Tokenizer)(nil)
)

type Tokenizer struct {
	input     string
	Tokens    []types.Token `json:"tokens"`
	InputSize int64         `json:"input_size"`
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{
		input:     input,
		Tokens:    make([]types.Token, 0),
		InputSize: int64(len(input)),
	}
}

// Tokenize scans the whole input and keeps the resulting tokens.
func (t *Tokenizer) Tokenize() []types.Token {
	t.Tokens = t.Tokens[:0]
	for tok := range t.All() {
		t.Tokens = append(t.Tokens, tok)
	}
	return t.Tokens
}

func (t *Tokenizer) GetStats() types.TokenStats {
	return types.NewTokenStats(t.Tokens, t.InputSize)
}

// All scans the input lazily from the start on every call.
func (t *Tokenizer) All() iter.Seq[types.Token] {
	return func(yield func(types.Token) bool) {
		pos := 0
		for {
			tok, next, ok := nextToken(t.input, pos)
			if !ok {
				return
			}
			if !yield(tok) {
				return
			}
			pos = next
		}
	}
}

// nextToken skips leading whitespace at pos and classifies the maximal run
// that follows. It returns the token and the position right after it.
func nextToken(input string, pos int) (types.Token, int, bool) {
	for pos < len(input) && isSkipped(input[pos]) {
		pos++
	}
	if pos >= len(input) {
		return types.Token{}, pos, false
	}

	end := pos
	for end < len(input) && !isBoundary(input[end]) {
		end++
	}

	text := input[pos:end]
	return types.Token{Kind: classify(text), Pos: pos, Text: text}, end, true
}

// classify tries the particle keywords first. A keyword only wins when it
// spans the whole run, so "Delgado" is a part and not "Del" + "gado".
func classify(text string) types.TokenKind {
	if len(text) > 3 {
		return types.TokenPart
	}
	for keyword, kind := range types.Particles {
		if strings.EqualFold(text, keyword) {
			return kind
		}
	}
	return types.TokenPart
}

// Whitespace between tokens.
func isSkipped(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f'
}

// Characters ending a run. A form feed inside a run belongs to it.
func isBoundary(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}
