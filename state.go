package keccak

// state is the double-buffered Keccak state. Step mappings read cur() and
// write next(), then flip() so the written buffer becomes current.
//
// Lane (x, y) occupies bytes [w*(x+5y), w*(x+5y)+w) of a buffer, least
// significant byte first.
type state struct {
	buf    [2][]byte
	active int
	w      int // lane width in bytes
}

func newState(widthBytes int) state {
	return state{
		buf: [2][]byte{make([]byte, widthBytes), make([]byte, widthBytes)},
		w:   widthBytes / 25,
	}
}

func (s *state) cur() []byte  { return s.buf[s.active] }
func (s *state) next() []byte { return s.buf[s.active^1] }
func (s *state) flip()        { s.active ^= 1 }

// lane returns the offset of lane (x, y). Coordinates are taken mod 5.
func (s *state) lane(x, y int) int {
	return s.w * (mod5(x) + 5*mod5(y))
}

func (s *state) clear() {
	clear(s.buf[0])
	clear(s.buf[1])
	s.active = 0
}

func mod5(v int) int {
	v %= 5
	if v < 0 {
		v += 5
	}
	return v
}
