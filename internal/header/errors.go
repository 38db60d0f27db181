// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package header

import "fmt"

type ParseError struct {
	Line int
	Msg  string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// MissingError is returned when a wanted definition isn't in the
// header.
type MissingError struct {
	Name string
}

func (e MissingError) Error() string {
	return fmt.Sprintf("%s not defined", e.Name)
}
