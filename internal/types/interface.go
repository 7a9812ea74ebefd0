package types

import "iter"

type Tokenizer interface {
	Tokenize() []Token
}

// Tokenize lazily
type StreamTokenizer interface {
	All() iter.Seq[Token]
}

// Tokenize with statistics
type TokenizerWithStats interface {
	Tokenizer
	GetStats() TokenStats
}
