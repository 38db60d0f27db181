// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package secret holds sensitive bytes, such as a device private key,
// outside the Go heap.
//
// On Linux a Buffer is an anonymous mmap region, locked into RAM with
// mlock and excluded from core dumps with MADV_DONTDUMP. macOS and the
// BSDs get mmap and mlock only. The garbage collector never sees the
// region, so the bytes are not copied around behind our back. Other
// platforms fall back to a heap slice. Close always zeroes the memory.
package secret

import (
	"errors"
	"fmt"
	"sync"

	"k8s.io/klog/v2"
)

var ErrClosed = errors.New("secret: buffer closed")

var errNoLock = errors.New("memory locking not supported on this platform")

// Buffer must not be copied after creation.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	locked bool
	closed bool
}

// New allocates a zero filled buffer of size bytes. If the memory can't
// be locked (RLIMIT_MEMLOCK too low, no privileges) the buffer is still
// returned, but the failure is logged.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret: buffer size must be positive, got %d", size)
	}

	data, err := alloc(size)
	if err != nil {
		return nil, err
	}

	b := &Buffer{data: data}

	if err := lock(data); errors.Is(err, errNoLock) {
		klog.V(1).Infof("secret: %v", err)
	} else if err != nil {
		klog.Warningf("secret: locking %d bytes failed, key material may be swapped: %v", size, err)
	} else {
		b.locked = true
	}

	if err := dontDump(data); err != nil {
		klog.V(1).Infof("secret: excluding buffer from core dumps failed: %v", err)
	}

	return b, nil
}

// NewFromBytes copies source into a new buffer and zeroes source.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, errors.New("secret: cannot create buffer from empty source")
	}

	b, err := New(len(source))
	if err != nil {
		return nil, err
	}

	copy(b.data, source)
	Wipe(source)

	return b, nil
}

// Bytes returns the contents. The slice points into the mmap region and
// must not be used after Close. Panics if the buffer is closed.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic(ErrClosed)
	}

	return b.data
}

// Copy returns a heap copy of the contents, for APIs that insist on
// owning the slice.
func (b *Buffer) Copy() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	out := make([]byte, len(b.data))
	copy(out, b.data)

	return out, nil
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.data)
}

func (b *Buffer) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.closed
}

// Close zeroes, unlocks and unmaps the memory. Idempotent.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	Wipe(b.data)

	var firstErr error
	if b.locked {
		if err := unlock(b.data); err != nil {
			firstErr = err
		}
	}
	if err := free(b.data); err != nil && firstErr == nil {
		firstErr = err
	}

	b.data = nil

	return firstErr
}

// Wipe zeroes b in place.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
