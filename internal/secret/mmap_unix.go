// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux || darwin || freebsd || netbsd || openbsd

package secret

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func alloc(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap failed: %w", err)
	}

	return data, nil
}

func free(data []byte) error {
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("secret: munmap failed: %w", err)
	}

	return nil
}

func lock(data []byte) error {
	return unix.Mlock(data)
}

func unlock(data []byte) error {
	if err := unix.Munlock(data); err != nil {
		return fmt.Errorf("secret: munlock failed: %w", err)
	}

	return nil
}
