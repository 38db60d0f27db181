// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package source

import "fmt"

type IOError struct {
	Path string
	Err  error
}

func (e IOError) Error() string {
	return fmt.Sprintf("I/O error on %v: %v", e.Path, e.Err)
}

func (e IOError) Unwrap() error {
	return e.Err
}

type ParseError struct {
	What string
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("couldn't parse %v: %v", e.What, e.Err)
}

func (e ParseError) Unwrap() error {
	return e.Err
}
