package processor

import (
	"fmt"
	"iter"
	"slices"

	"github.com/badele/namenorm/internal/chars"
	"github.com/badele/namenorm/internal/words"
)

/////////////////////////////////////////////////////////////////////////////
// CASE MODE
/////////////////////////////////////////////////////////////////////////////

type CaseMode string

const (
	CaseKeep  CaseMode = "keep"
	CaseLower CaseMode = "lower"
	CaseUpper CaseMode = "upper"
	CaseName  CaseMode = "name"
)

func ParseCaseMode(s string) (CaseMode, error) {
	switch m := CaseMode(s); m {
	case CaseKeep, CaseLower, CaseUpper, CaseName:
		return m, nil
	case "":
		return CaseKeep, nil
	default:
		return "", fmt.Errorf("unknown case mode: %q", s)
	}
}

/////////////////////////////////////////////////////////////////////////////
// PIPELINE
/////////////////////////////////////////////////////////////////////////////

type Options struct {
	ExtraSeparators []rune
	Replace         []rune
	ReplaceWith     rune
	StripDiacritics bool
	Case            CaseMode
}

// Pipeline normalizes names in a fixed order: split and space-join, replace
// characters, strip diacritics, then apply the case mode.
type Pipeline struct {
	opts Options
}

func NewPipeline(opts Options) (*Pipeline, error) {
	mode, err := ParseCaseMode(string(opts.Case))
	if err != nil {
		return nil, err
	}
	opts.Case = mode

	if len(opts.Replace) > 0 && opts.ReplaceWith == 0 {
		return nil, fmt.Errorf("replacement character required for %q", string(opts.Replace))
	}

	// Replacing with a separator is the same as splitting on the matches.
	if len(opts.Replace) > 0 && words.IsSeparator(opts.ReplaceWith, opts.ExtraSeparators...) {
		opts.ExtraSeparators = append(slices.Clone(opts.ExtraSeparators), opts.Replace...)
		opts.Replace = nil
	}

	return &Pipeline{opts: opts}, nil
}

func (p *Pipeline) Options() Options {
	return p.opts
}

// Run lazily normalizes text.
func (p *Pipeline) Run(text string) iter.Seq[rune] {
	joined := words.SpaceJoin(words.SplitExt(text, p.opts.ExtraSeparators...))

	if p.opts.Case == CaseName {
		return func(yield func(rune) bool) {
			for w := range joined {
				for r := range chars.CapitalizeFirst(p.wordRunes(w)) {
					if !yield(r) {
						return
					}
				}
			}
		}
	}

	seq := p.charStage(chars.Runes(joined))
	switch p.opts.Case {
	case CaseLower:
		seq = chars.ToLower(seq)
	case CaseUpper:
		seq = chars.ToUpper(seq)
	}
	return seq
}

func (p *Pipeline) String(text string) string {
	return chars.Collect(p.Run(text))
}

func (p *Pipeline) wordRunes(w string) iter.Seq[rune] {
	return p.charStage(chars.Word(w))
}

func (p *Pipeline) charStage(seq iter.Seq[rune]) iter.Seq[rune] {
	if len(p.opts.Replace) > 0 {
		seq = chars.Replace(seq, p.opts.Replace, p.opts.ReplaceWith)
	}
	if p.opts.StripDiacritics {
		seq = chars.StripDiacriticsRunes(seq)
	}
	return seq
}
