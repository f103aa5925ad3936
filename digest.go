package keccak

import "sync"

// Hash is a fixed-output member of the Keccak family.
type Hash func(msg []byte) []byte

// XOF is an extendable-output member of the Keccak family. It returns outLen
// bytes of output; a negative outLen is an error.
type XOF func(msg []byte, outLen int) ([]byte, error)

// SpongeConstructor builds a sponge of the given capacity in bits.
type SpongeConstructor func(capacity int) (*Sponge, error)

// KeccakC returns Keccak[c]: the sponge over Keccak-f[1600] with pad10*1 and
// rate 1600-c.
func KeccakC(capacity int) (*Sponge, error) {
	perm, err := NewKeccakF(1600)
	if err != nil {
		return nil, err
	}
	return NewSponge(perm, PadOneZeroStarOne, 1600-capacity)
}

// MustKeccakC is like KeccakC but panics on error.
func MustKeccakC(capacity int) *Sponge {
	s, err := KeccakC(capacity)
	if err != nil {
		panic(err)
	}
	return s
}

// NewFixedDigest returns the hash with c/16 bytes of output built on ctor(c),
// appending the suffixBits-long domain-separation suffix to every message.
// suffixBits == 0 means no suffix (original Keccak); (0b10, 2) gives SHA-3.
func NewFixedDigest(ctor SpongeConstructor, capacity int, suffix byte, suffixBits int) (Hash, error) {
	if capacity <= 0 || capacity%16 != 0 {
		return nil, invalidf("capacity %d: must be a positive multiple of 16", capacity)
	}
	s, err := newSuffixed(ctor, capacity, suffix, suffixBits)
	if err != nil {
		return nil, err
	}
	outBits := capacity / 2
	return func(msg []byte) []byte {
		return s.sum(msg, outBits)
	}, nil
}

// MustFixedDigest is like NewFixedDigest but panics on error.
func MustFixedDigest(ctor SpongeConstructor, capacity int, suffix byte, suffixBits int) Hash {
	h, err := NewFixedDigest(ctor, capacity, suffix, suffixBits)
	if err != nil {
		panic(err)
	}
	return h
}

// NewXOF returns the extendable-output function built on ctor(c) with the
// given domain-separation suffix; (0b1111, 4) gives SHAKE.
func NewXOF(ctor SpongeConstructor, capacity int, suffix byte, suffixBits int) (XOF, error) {
	s, err := newSuffixed(ctor, capacity, suffix, suffixBits)
	if err != nil {
		return nil, err
	}
	return func(msg []byte, outLen int) ([]byte, error) {
		if outLen < 0 {
			return nil, invalidf("output length %d bytes: must not be negative", outLen)
		}
		return s.sum(msg, outLen*8), nil
	}, nil
}

// MustXOF is like NewXOF but panics on error.
func MustXOF(ctor SpongeConstructor, capacity int, suffix byte, suffixBits int) XOF {
	x, err := NewXOF(ctor, capacity, suffix, suffixBits)
	if err != nil {
		panic(err)
	}
	return x
}

// suffixed keeps a pool of sponges from one constructor so that concurrent
// calls each get their own permutation instead of queueing on one.
type suffixed struct {
	pool   sync.Pool
	suffix byte
	bits   int
}

func newSuffixed(ctor SpongeConstructor, capacity int, suffix byte, suffixBits int) (*suffixed, error) {
	if ctor == nil {
		return nil, invalidf("nil sponge constructor")
	}
	if suffixBits < 0 || suffixBits > 7 {
		return nil, invalidf("suffix length %d bits: must be in [0, 7]", suffixBits)
	}
	if int(suffix) >= 1<<suffixBits {
		return nil, invalidf("suffix %#b does not fit in %d bits", suffix, suffixBits)
	}
	first, err := ctor(capacity)
	if err != nil {
		return nil, err
	}
	s := &suffixed{suffix: suffix, bits: suffixBits}
	s.pool.New = func() any {
		sp, err := ctor(capacity)
		if err != nil {
			// ctor already succeeded once with the same capacity.
			panic(err)
		}
		return sp
	}
	s.pool.Put(first)
	return s, nil
}

func (s *suffixed) sum(msg []byte, outBits int) []byte {
	sp := s.pool.Get().(*Sponge)
	defer s.pool.Put(sp)
	return sp.sum(s.appendSuffix(msg), outBits, s.bits)
}

// appendSuffix returns msg with the suffix as an extra final byte, or msg
// itself when there is no suffix. msg is never modified.
func (s *suffixed) appendSuffix(msg []byte) []byte {
	if s.bits == 0 {
		return msg
	}
	out := make([]byte, len(msg)+1)
	copy(out, msg)
	out[len(msg)] = s.suffix
	return out
}
