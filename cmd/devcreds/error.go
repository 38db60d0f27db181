// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package main

import "fmt"

type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	ErrManySources = constError("more than one credential source given")
	ErrNoSigner    = constError("no signer given")
	ErrManySigners = constError("more than one signer given")
)

type IOError struct {
	path string
	err  error
}

func (e IOError) Error() string {
	return fmt.Sprintf("I/O error on %v: %v", e.path, e.err)
}

func (e IOError) Unwrap() error {
	return e.err
}

type ParseError struct {
	what string
	err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("couldn't parse %v: %v", e.what, e.err)
}

func (e ParseError) Unwrap() error {
	return e.err
}
