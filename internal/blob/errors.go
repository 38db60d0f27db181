// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package blob

import "fmt"

// Simple errors with no further information
type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	ErrNoBlob       = constError("no credential blob")
	ErrErased       = constError("flash erased, no credential blob")
	ErrUnsigned     = constError("credential blob not signed")
	ErrBadSignature = constError("credential blob signature not made by a trusted key")
	ErrTooLarge     = constError("credential blob too large")
)

// FormatError is a blob that starts out right but is broken further
// on.
type FormatError struct {
	Offset int64
	Msg    string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("bad credential blob at offset %d: %s", e.Offset, e.Msg)
}
