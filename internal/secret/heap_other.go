// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package secret

// A heap slice can't be locked or kept out of swap. Close still
// zeroes it.
func alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func free(_ []byte) error {
	return nil
}

func lock(_ []byte) error {
	return errNoLock
}

func unlock(_ []byte) error {
	return nil
}

func dontDump(_ []byte) error {
	return nil
}
