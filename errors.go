package keccak

import "github.com/pkg/errors"

// ErrInvalidParameter is returned when a permutation, sponge or digest is
// constructed or invoked with parameters outside the Keccak family. Returned
// errors wrap it, so test with errors.Is.
var ErrInvalidParameter = errors.New("keccak: invalid parameter")

func invalidf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
