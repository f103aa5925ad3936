package keccak

import "sync"

// rhoOffsets[x+5y] is the rho rotation of lane (x, y) before reduction to the
// lane width: the triangular numbers walked along (x, y) -> (y, 2x+3y).
var rhoOffsets = func() (r [25]int) {
	x, y := 1, 0
	for t := 0; t < 24; t++ {
		r[x+5*y] = (t + 1) * (t + 2) / 2
		x, y = y, (2*x+3*y)%5
	}
	return r
}()

// rcBits[t] is bit 0 of the round-constant LFSR (x^8+x^6+x^5+x^4+1, seeded
// with 0x01) after t steps. The sequence has period 255.
var rcBits = func() (r [255]byte) {
	lfsr := byte(0x01)
	for t := range r {
		r[t] = lfsr & 1
		if lfsr&0x80 != 0 {
			lfsr = lfsr<<1 ^ 0x71
		} else {
			lfsr <<= 1
		}
	}
	return r
}()

func rc(t int) byte {
	return rcBits[((t%255)+255)%255]
}

// Permutation is the Keccak-p permutation of a given width and round count.
// It owns its state; the state persists between calls to Permute and is only
// zeroed by Reset.
//
// Permute, Reset and State are not safe for concurrent use. A Sponge holds mu
// for the whole of a Sum, so any number of sponges may share one Permutation.
type Permutation struct {
	mu     sync.Mutex
	width  int // bits
	rounds int
	l      int // log2 of the lane width in bits
	s      state
	c, d   []byte
	rho    [25]int
}

// NewPermutation returns Keccak-p[width, rounds]. Width must be 200, 400, 800
// or 1600 bits. Rounds must lie in [0, 12+2ℓ], where ℓ is log2 of the lane
// width in bits; the last rounds of the full schedule are the ones applied.
func NewPermutation(width, rounds int) (*Permutation, error) {
	l, ok := laneLog(width)
	if !ok {
		return nil, invalidf("width %d: must be one of 200, 400, 800, 1600", width)
	}
	if nr := 12 + 2*l; rounds < 0 || rounds > nr {
		return nil, invalidf("rounds %d: must be in [0, %d] for width %d", rounds, nr, width)
	}
	p := &Permutation{
		width:  width,
		rounds: rounds,
		l:      l,
		s:      newState(width / 8),
	}
	p.c = make([]byte, 5*p.s.w)
	p.d = make([]byte, 5*p.s.w)
	laneBits := 8 * p.s.w
	for i, off := range rhoOffsets {
		p.rho[i] = off % laneBits
	}
	return p, nil
}

// NewKeccakF returns Keccak-f[width], the permutation with the full 12+2ℓ
// round schedule.
func NewKeccakF(width int) (*Permutation, error) {
	l, ok := laneLog(width)
	if !ok {
		return nil, invalidf("width %d: must be one of 200, 400, 800, 1600", width)
	}
	return NewPermutation(width, 12+2*l)
}

func laneLog(width int) (int, bool) {
	switch width {
	case 200:
		return 3, true
	case 400:
		return 4, true
	case 800:
		return 5, true
	case 1600:
		return 6, true
	}
	return 0, false
}

// Width returns the permutation width in bits.
func (p *Permutation) Width() int { return p.width }

// WidthBytes returns the permutation width in bytes.
func (p *Permutation) WidthBytes() int { return p.width / 8 }

// Rounds returns the number of rounds applied by Permute.
func (p *Permutation) Rounds() int { return p.rounds }

// State returns a copy of the current state.
func (p *Permutation) State() []byte {
	return append([]byte(nil), p.s.cur()...)
}

// Reset zeroes the state.
func (p *Permutation) Reset() { p.s.clear() }

// Permute applies the last p.Rounds() rounds of the Keccak-p schedule.
func (p *Permutation) Permute() {
	nr := 12 + 2*p.l
	for i := nr - p.rounds; i < nr; i++ {
		p.round(i)
	}
}

func (p *Permutation) round(i int) {
	p.theta()
	p.rhoStep()
	p.pi()
	p.chi()
	p.iota(i)
}

func (p *Permutation) theta() {
	src, dst, w := p.s.cur(), p.s.next(), p.s.w
	for x := 0; x < 5; x++ {
		for z := 0; z < w; z++ {
			var v byte
			for y := 0; y < 5; y++ {
				v ^= src[p.s.lane(x, y)+z]
			}
			p.c[x*w+z] = v
		}
	}
	for x := 0; x < 5; x++ {
		prev, next := mod5(x-1)*w, mod5(x+1)*w
		for z := 0; z < w; z++ {
			// C[x+1] rotated left by one bit, carrying across bytes.
			p.d[x*w+z] = p.c[prev+z] ^ p.c[next+z]<<1 ^ p.c[next+(z+w-1)%w]>>7
		}
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			o := p.s.lane(x, y)
			for z := 0; z < w; z++ {
				dst[o+z] = src[o+z] ^ p.d[x*w+z]
			}
		}
	}
	p.s.flip()
}

func (p *Permutation) rhoStep() {
	src, dst, w := p.s.cur(), p.s.next(), p.s.w
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			o := p.s.lane(x, y)
			rotl(dst[o:o+w], src[o:o+w], p.rho[x+5*y])
		}
	}
	p.s.flip()
}

// rotl sets dst to the little-endian lane src rotated left by n bits,
// 0 <= n < 8*len(src).
func rotl(dst, src []byte, n int) {
	w := len(src)
	byteOff, bitOff := n>>3, uint(n&7)
	for z := range dst {
		hi := src[(z-byteOff+w)%w]
		lo := src[(z-byteOff-1+2*w)%w]
		dst[z] = hi<<bitOff | lo>>(8-bitOff)
	}
}

func (p *Permutation) pi() {
	src, dst, w := p.s.cur(), p.s.next(), p.s.w
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			from, to := p.s.lane(x, y), p.s.lane(y, 2*x+3*y)
			copy(dst[to:to+w], src[from:from+w])
		}
	}
	p.s.flip()
}

func (p *Permutation) chi() {
	src, dst, w := p.s.cur(), p.s.next(), p.s.w
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a, b, c := p.s.lane(x, y), p.s.lane(x+1, y), p.s.lane(x+2, y)
			for z := 0; z < w; z++ {
				dst[a+z] = src[a+z] ^ ^src[b+z]&src[c+z]
			}
		}
	}
	p.s.flip()
}

// iota XORs the round constant for round i into lane (0, 0), which starts
// at offset 0.
func (p *Permutation) iota(i int) {
	src, dst := p.s.cur(), p.s.next()
	copy(dst, src)
	for j := 0; j <= p.l; j++ {
		pos := 1<<j - 1
		dst[pos>>3] ^= rc(j+7*i) << (pos & 7)
	}
	p.s.flip()
}
