package source

// Sequence replays a fixed list of raw words, wrapping around at the end.
// Uint32 consumes one word and returns its low 32 bits.
type Sequence struct {
	words []uint64
	pos   int
}

func NewSequence(words ...uint64) *Sequence {
	if len(words) == 0 {
		panic("source: empty sequence")
	}
	return &Sequence{words: append([]uint64(nil), words...)}
}

func (s *Sequence) next() uint64 {
	word := s.words[s.pos]
	s.pos += 1
	if s.pos >= len(s.words) {
		s.pos = 0
	}
	return word
}

func (s *Sequence) Uint32() uint32 {
	return uint32(s.next())
}

func (s *Sequence) Uint64() uint64 {
	return s.next()
}

// Pos is the index of the next word to be replayed.
func (s *Sequence) Pos() int {
	return s.pos
}

func (s *Sequence) Rewind() {
	s.pos = 0
}
