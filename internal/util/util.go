// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package util

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func DecodeHex(out []byte, s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != len(out) {
		return fmt.Errorf("unexpected length of hex data, expected %d, got %d", len(out), len(b))
	}
	copy(out, b)

	return nil
}

// ParseByteList parses a C style initializer list of bytes, like
// "{ 0x30, 0x82, 0x02 }". Braces are optional, a trailing comma is
// allowed. Every element must be a hex (0x..) or decimal number that
// fits in a byte.
func ParseByteList(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")

	fields := strings.Split(s, ",")
	out := make([]byte, 0, len(fields))

	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			if i == len(fields)-1 {
				// trailing comma
				continue
			}
			return nil, errors.New("empty element in byte list")
		}

		v, err := strconv.ParseUint(f, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, byte(v))
	}

	return out, nil
}
