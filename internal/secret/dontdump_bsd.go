// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin || freebsd || netbsd || openbsd

package secret

// No MADV_DONTDUMP here. Disable core dumps for the process instead.
func dontDump(_ []byte) error {
	return nil
}
