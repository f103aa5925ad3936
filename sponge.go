package keccak

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// Sponge is the sponge construction over a Permutation. Each Sum resets the
// permutation first, so successive calls are independent. Sum locks the
// permutation for its whole duration: a Sponge is safe for concurrent use, and
// calls through any sponges sharing one Permutation serialize.
type Sponge struct {
	perm *Permutation
	pad  PaddingRule
	rate int // bits
}

// NewSponge returns a sponge with the given rate in bits. The rate must be a
// whole number of bytes and lie strictly between 0 and perm.Width().
func NewSponge(perm *Permutation, pad PaddingRule, rate int) (*Sponge, error) {
	if perm == nil {
		return nil, invalidf("nil permutation")
	}
	if pad == nil {
		return nil, invalidf("nil padding rule")
	}
	if rate <= 0 || rate >= perm.Width() {
		return nil, invalidf("rate %d: must be in (0, %d)", rate, perm.Width())
	}
	if rate%8 != 0 {
		return nil, invalidf("rate %d: must be a multiple of 8", rate)
	}
	return &Sponge{perm: perm, pad: pad, rate: rate}, nil
}

// Rate returns the sponge rate in bits.
func (s *Sponge) Rate() int { return s.rate }

// Capacity returns the sponge capacity in bits.
func (s *Sponge) Capacity() int { return s.perm.Width() - s.rate }

// Sum absorbs msg and squeezes outBits/8 bytes. If suffixBits is non-zero,
// the last byte of msg carries a suffixBits-long domain-separation suffix and
// padding starts inside that byte.
func (s *Sponge) Sum(msg []byte, outBits, suffixBits int) ([]byte, error) {
	if outBits < 0 {
		return nil, invalidf("output length %d bits: must not be negative", outBits)
	}
	if suffixBits < 0 || suffixBits > 7 {
		return nil, invalidf("suffix length %d bits: must be in [0, 7]", suffixBits)
	}
	if suffixBits != 0 {
		if len(msg) == 0 {
			return nil, invalidf("suffix length %d bits with empty message", suffixBits)
		}
		if last := msg[len(msg)-1]; int(last) >= 1<<suffixBits {
			return nil, invalidf("final byte %#x does not fit a %d-bit suffix", last, suffixBits)
		}
	}
	return s.sum(msg, outBits, suffixBits), nil
}

func (s *Sponge) sum(msg []byte, outBits, suffixBits int) []byte {
	s.perm.mu.Lock()
	defer s.perm.mu.Unlock()

	r := s.rate / 8
	s.perm.Reset()

	m := len(msg)
	if suffixBits != 0 {
		m--
	}
	pad := s.pad(r, m, suffixBits)
	padded := make([]byte, m+len(pad))
	if len(padded) < len(msg) || len(padded)%r != 0 {
		panic(fmt.Sprintf("keccak: padding rule returned %d bytes for %d bytes of data at rate %d bytes",
			len(pad), m, r))
	}
	copy(padded, msg)
	for i, v := range pad {
		padded[m+i] |= v
	}

	// Absorb.
	for block := range slices.Chunk(padded, r) {
		xorIn(s.perm.s.cur(), block)
		s.perm.Permute()
	}

	// Squeeze.
	n := (outBits + 7) / 8
	out := make([]byte, 0, (n+r-1)/r*r+r)
	for {
		out = append(out, s.perm.s.cur()[:r]...)
		if len(out) >= n {
			break
		}
		s.perm.Permute()
	}
	return out[: outBits/8 : outBits/8]
}

// xorIn XORs data into the beginning of state, eight bytes at a time where it
// can.
func xorIn(state, data []byte) {
	n := len(data) >> 3
	for i := 0; i < n; i++ {
		v := binary.LittleEndian.Uint64(state[8*i:]) ^ binary.LittleEndian.Uint64(data[8*i:])
		binary.LittleEndian.PutUint64(state[8*i:], v)
	}
	for i := n << 3; i < len(data); i++ {
		state[i] ^= data[i]
	}
}
