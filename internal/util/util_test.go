// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package util

import (
	"bytes"
	"testing"
)

func TestParseByteList(t *testing.T) {
	got, err := ParseByteList("{ 0x30, 0x82,\n 0x02, 0x85 }")
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x30, 0x82, 0x02, 0x85}
	if !bytes.Equal(got, want) {
		t.Fatalf("Got %x, want %x", got, want)
	}
}

func TestParseByteListTrailingComma(t *testing.T) {
	got, err := ParseByteList("{ 0x01, 2, 0x03, }")
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("Got %x", got)
	}
}

func TestParseByteListErrors(t *testing.T) {
	for _, s := range []string{
		"{ 0x30, , 0x82 }",
		"{ 0x100 }",
		"{ 0xzz }",
	} {
		if _, err := ParseByteList(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
}

func TestDecodeHex(t *testing.T) {
	var out [4]byte

	if err := DecodeHex(out[:], "00010203"); err != nil {
		t.Fatal(err)
	}

	if err := DecodeHex(out[:], "0001"); err == nil {
		t.Fatal("Expected length error")
	}
}
