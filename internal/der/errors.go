// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package der

import "fmt"

// Simple errors with no further information
type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	ErrMalformedAsset       = constError("malformed asset")
	ErrUnsupportedAlgorithm = constError("unsupported key algorithm")
)

// DecodeError tells which kind of asset failed and why. It unwraps to
// one of the sentinels above.
type DecodeError struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("%v: %v: %v", e.Kind, e.Err, e.Reason)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}
