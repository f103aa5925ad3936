package keccak

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestKeccakC(t *testing.T) {
	s, err := KeccakC(512)
	require.NoError(t, err)
	assert.Equal(t, 1088, s.Rate())
	assert.Equal(t, 512, s.Capacity())

	for _, c := range []int{0, 1600, 1700, -8, 4} {
		_, err := KeccakC(c)
		require.ErrorIs(t, err, ErrInvalidParameter, "capacity=%d", c)
	}
	assert.Panics(t, func() { MustKeccakC(1600) })
}

func TestNewFixedDigestValidation(t *testing.T) {
	tests := []struct {
		name       string
		ctor       SpongeConstructor
		capacity   int
		suffix     byte
		suffixBits int
	}{
		{"nil constructor", nil, 512, 0, 0},
		{"zero capacity", KeccakC, 0, 0, 0},
		{"odd capacity", KeccakC, 520, 0, 0},
		{"capacity is width", KeccakC, 1600, 0, 0},
		{"suffix too long", KeccakC, 512, 0, 8},
		{"negative suffix length", KeccakC, 512, 0, -1},
		{"suffix does not fit", KeccakC, 512, 0b110, 2},
		{"suffix without bits", KeccakC, 512, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFixedDigest(tt.ctor, tt.capacity, tt.suffix, tt.suffixBits)
			require.ErrorIs(t, err, ErrInvalidParameter)
			_, err = NewXOF(tt.ctor, tt.capacity, tt.suffix, tt.suffixBits)
			if tt.name == "odd capacity" {
				// XOF output length does not depend on capacity.
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() { MustFixedDigest(KeccakC, 512, 4, 2) })
	assert.Panics(t, func() { MustXOF(nil, 256, 0, 0) })
}

func TestNewFixedDigestSHA3(t *testing.T) {
	h, err := NewFixedDigest(KeccakC, 512, 0b10, 2)
	require.NoError(t, err)
	for _, n := range []int{0, 1, 135, 136, 137} {
		data := patterned(n)
		want := sha3.Sum256(data)
		assert.Equal(t, want[:], h(data))
	}
}

func TestXOF(t *testing.T) {
	x, err := NewXOF(KeccakC, 256, 0b1111, 4)
	require.NoError(t, err)

	out, err := x([]byte("abc"), 0)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	_, err = x([]byte("abc"), -1)
	require.ErrorIs(t, err, ErrInvalidParameter)

	long, err := x([]byte("abc"), 400)
	require.NoError(t, err)
	for _, n := range []int{1, 167, 168, 169, 336, 337} {
		got, err := x([]byte("abc"), n)
		require.NoError(t, err)
		assert.Len(t, got, n)
		assert.Equal(t, long[:n], got)
	}
}

func TestXOFWithoutSuffix(t *testing.T) {
	// Keccak[512] with caller-chosen length agrees with Keccak-256 on the
	// first 32 bytes.
	x, err := NewXOF(KeccakC, 512, 0, 0)
	require.NoError(t, err)
	out, err := x([]byte("hello world"), 64)
	require.NoError(t, err)
	assert.Equal(t, Keccak256([]byte("hello world")), out[:32])
}

func TestCustomConstructor(t *testing.T) {
	// Keccak[c] over Keccak-f[800].
	ctor := func(capacity int) (*Sponge, error) {
		p, err := NewKeccakF(800)
		if err != nil {
			return nil, err
		}
		return NewSponge(p, PadOneZeroStarOne, 800-capacity)
	}
	h, err := NewFixedDigest(ctor, 256, 0b10, 2)
	require.NoError(t, err)
	a := h([]byte("abc"))
	assert.Len(t, a, 16)
	assert.Equal(t, a, h([]byte("abc")))
	assert.NotEqual(t, a, h([]byte("abd")))

	_, err = NewFixedDigest(ctor, 800, 0, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDigestConcurrentCalls(t *testing.T) {
	var built int
	var mu sync.Mutex
	ctor := func(capacity int) (*Sponge, error) {
		mu.Lock()
		built++
		mu.Unlock()
		return KeccakC(capacity)
	}
	x, err := NewXOF(ctor, 512, 0b1111, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, built)

	const calls = 64
	got := make([][]byte, calls)
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], _ = x(patterned(i*13), 100)
		}()
	}
	wg.Wait()
	for i := range got {
		want := make([]byte, 100)
		sha3.ShakeSum256(want, patterned(i*13))
		assert.Equal(t, want, got[i], "call %d", i)
	}
}
