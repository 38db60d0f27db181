// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package secret

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewFromBytesZeroesSource(t *testing.T) {
	source := []byte("device private key")
	want := append([]byte(nil), source...)

	b, err := NewFromBytes(source)
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	defer b.Close()

	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("Got %q, want %q", b.Bytes(), want)
	}

	for i, v := range source {
		if v != 0 {
			t.Fatalf("source byte %d not zeroed: %d", i, v)
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("Expected error for zero size")
	}
	if _, err := NewFromBytes(nil); err == nil {
		t.Fatal("Expected error for empty source")
	}
}

func TestCloseIdempotent(t *testing.T) {
	b, err := NewFromBytes([]byte{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if !b.Closed() {
		t.Fatal("Expected buffer to report closed")
	}
	if b.data != nil {
		t.Fatal("Expected data to be released after Close")
	}
	if _, err := b.Copy(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Copy after Close: got %v, want ErrClosed", err)
	}
}

func TestBytesAfterClosePanics(t *testing.T) {
	b, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	b.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic")
		}
	}()
	_ = b.Bytes()
}

func TestPlatformAlloc(t *testing.T) {
	data, err := alloc(64)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 64 || !bytes.Equal(data, make([]byte, 64)) {
		t.Fatalf("alloc returned %d bytes, not all zero", len(data))
	}

	data[0] = 1
	if err := free(data); err != nil {
		t.Fatal(err)
	}
}
