// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package secret

import "golang.org/x/sys/unix"

func dontDump(data []byte) error {
	return unix.Madvise(data, unix.MADV_DONTDUMP)
}
