package particles

import "github.com/badele/namenorm/internal/types"

// Segment is a name part together with the particles leading into it,
// e.g. "de la Cruz".
type Segment []types.Token

func (s Segment) String() string {
	return types.JoinTokens(s)
}

// Part returns the name part closing the segment, if any.
func (s Segment) Part() (types.Token, bool) {
	if len(s) == 0 || s[len(s)-1].Kind.IsParticle() {
		return types.Token{}, false
	}
	return s[len(s)-1], true
}

// Segments attaches every run of particles to the part that follows it.
// Particles at the end of the input form a segment of their own.
//
//	"Sarah Martinez de la Cruz" -> [Sarah] [Martinez] [de la Cruz]
func Segments(tokens []types.Token) []Segment {
	var (
		segments []Segment
		current  Segment
	)

	for _, tok := range tokens {
		current = append(current, tok)
		if !tok.Kind.IsParticle() {
			segments = append(segments, current)
			current = nil
		}
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}

	return segments
}
