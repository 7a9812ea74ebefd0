package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// TOKEN KIND
/////////////////////////////////////////////////////////////////////////////

type TokenKind int

const (
	TokenPart TokenKind = iota
	TokenDe
	TokenLa
	TokenDel
	TokenY
)

// Particles lists the connector words recognized by the tokenizer, keyed by
// their lower-case spelling.
var Particles = map[string]TokenKind{
	"de":  TokenDe,
	"la":  TokenLa,
	"del": TokenDel,
	"y":   TokenY,
}

func (k TokenKind) String() string {
	switch k {
	case TokenPart:
		return "Part"
	case TokenDe:
		return "De"
	case TokenLa:
		return "La"
	case TokenDel:
		return "Del"
	case TokenY:
		return "Y"
	default:
		return fmt.Sprintf("TokenKind(%d)", k)
	}
}

// IsParticle reports whether k is one of the connector keywords.
func (k TokenKind) IsParticle() bool {
	return k == TokenDe || k == TokenLa || k == TokenDel || k == TokenY
}

func (k TokenKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *TokenKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}

// MarshalText lets TokenKind be used as a JSON object key.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *TokenKind) UnmarshalText(data []byte) error {
	switch string(data) {
	case "Part":
		*k = TokenPart
	case "De":
		*k = TokenDe
	case "La":
		*k = TokenLa
	case "Del":
		*k = TokenDel
	case "Y":
		*k = TokenY
	default:
		return fmt.Errorf("unknown TokenKind: %s", data)
	}

	return nil
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN
/////////////////////////////////////////////////////////////////////////////

// Token is one classified word of a name. Text is a substring of the
// scanned input and Pos its byte offset.
type Token struct {
	Kind TokenKind `json:"kind"`
	Pos  int       `json:"pos"`
	Text string    `json:"text"`
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")"
}

// JoinTokens rebuilds the text of tokens separated by single spaces.
func JoinTokens(tokens []Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN STATS
/////////////////////////////////////////////////////////////////////////////

type TokenStats struct {
	TotalTokens  int               `json:"total_tokens"`
	TokensByKind map[TokenKind]int `json:"tokens_by_kind"`
	Particles    int               `json:"particles"`
	Parts        int               `json:"parts"`
	InputSize    int64             `json:"input_size"`
}

// NewTokenStats computes statistics for tokens scanned from an input of
// inputSize bytes.
func NewTokenStats(tokens []Token, inputSize int64) TokenStats {
	stats := TokenStats{
		TokensByKind: make(map[TokenKind]int),
		InputSize:    inputSize,
	}
	for _, t := range tokens {
		stats.TotalTokens++
		stats.TokensByKind[t.Kind]++
		if t.Kind.IsParticle() {
			stats.Particles++
		} else {
			stats.Parts++
		}
	}
	return stats
}
