package words

import "iter"

// Joiner is the pull form of SpaceJoin: each call to Next returns either the
// next word or a space, holding a single word of lookahead.
type Joiner struct {
	next      func() (string, bool)
	stop      func()
	pending   string
	hasNext   bool
	nextSpace bool
}

// NewJoiner starts pulling words from seq. Call Stop when done if the
// sequence is not consumed to the end.
func NewJoiner(seq iter.Seq[string]) *Joiner {
	next, stop := iter.Pull(seq)
	j := &Joiner{next: next, stop: stop}
	j.pending, j.hasNext = next()
	return j
}

// Next returns the next element and false once the words are exhausted.
func (j *Joiner) Next() (string, bool) {
	if !j.hasNext {
		return "", false
	}

	if j.nextSpace {
		j.nextSpace = false
		return Space, true
	}

	word := j.pending
	j.pending, j.hasNext = j.next()
	j.nextSpace = j.hasNext
	return word, true
}

// Stop releases the underlying sequence.
func (j *Joiner) Stop() {
	j.hasNext = false
	j.stop()
}
