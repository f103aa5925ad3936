package keccak

import "fmt"

// PaddingRule returns the padding to append to msgLen bytes of data so that
// the total is a multiple of blockSize. suffixBits is the number of message
// bits already used in the final data byte by a domain-separation suffix; the
// first padding byte is OR-ed onto that byte when suffixBits is non-zero.
type PaddingRule func(blockSize, msgLen, suffixBits int) []byte

// PadOneZeroStarOne is the pad10*1 rule: a 1 bit directly after the suffix,
// zero or more 0 bits, and a final 1 bit in the top bit of the last byte.
func PadOneZeroStarOne(blockSize, msgLen, suffixBits int) []byte {
	if blockSize <= 0 || msgLen < 0 || suffixBits < 0 || suffixBits > 7 {
		panic(fmt.Sprintf("keccak: bad pad10*1 arguments (blockSize=%d, msgLen=%d, suffixBits=%d)",
			blockSize, msgLen, suffixBits))
	}
	need := msgLen + 1
	if suffixBits == 7 {
		// The leading 1 bit takes the last bit of the suffix byte.
		need++
	}
	total := (need + blockSize - 1) / blockSize * blockSize
	pad := make([]byte, total-msgLen)
	pad[0] |= 1 << suffixBits
	pad[len(pad)-1] |= 0x80
	return pad
}
