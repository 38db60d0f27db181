// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package store holds the one active credential bundle of a process.
//
// The store starts out empty. Load installs a bundle, replacing any
// previous one, and Clear removes it. Both swap a pointer under a
// write lock and never do I/O while holding it, so readers either see
// the old bundle or the new one.
//
// The store owns one reference to the bundle it holds. Current and
// Acquire take another reference for the caller under the read lock,
// and the caller Releases it when done.
package store

import (
	"errors"
	"sync"

	"github.com/tillitis/devcreds/internal/credential"
	"k8s.io/klog/v2"
)

// Simple errors with no further information
type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	ErrNotLoaded = constError("no credentials loaded")
)

type Store struct {
	mu         sync.RWMutex
	bundle     *credential.Bundle
	generation uint64
}

func New() *Store {
	return &Store{}
}

// Load installs b as the active bundle. The store takes its own
// reference to b, the caller keeps the one it has. Each Load starts a
// new generation.
func (s *Store) Load(b *credential.Bundle) error {
	if b == nil {
		return errors.New("nil bundle")
	}

	b.Retain()

	s.mu.Lock()
	old := s.bundle
	s.bundle = b
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	if old != nil {
		old.Release()
	}

	klog.V(1).Infof("Loaded credentials for endpoint %s, generation %d, device certificate %0.16s…",
		b.EndpointName(), gen, b.DeviceCertificate().Fingerprint())

	return nil
}

// Current returns the active bundle with a reference owned by the
// caller, who must Release it. A Load or Clear while the caller holds
// it doesn't zero the key.
func (s *Store) Current() (*credential.Bundle, error) {
	b, _, err := s.Acquire()
	return b, err
}

// Acquire returns the active bundle with an extra reference owned by
// the caller, and the generation it was loaded in. The caller must
// Release the bundle.
func (s *Store) Acquire() (*credential.Bundle, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.bundle == nil {
		return nil, 0, ErrNotLoaded
	}

	s.bundle.Retain()

	return s.bundle, s.generation, nil
}

// Clear removes the active bundle. Its private key is zeroed as soon
// as nobody else holds a reference.
func (s *Store) Clear() {
	s.mu.Lock()
	old := s.bundle
	s.bundle = nil
	gen := s.generation
	s.mu.Unlock()

	if old != nil {
		old.Release()
		klog.V(1).Infof("Cleared credentials of generation %d", gen)
	}
}

// Generation counts successful loads. It doesn't change on Clear.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.generation
}

// Loaded reports whether a bundle is installed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bundle != nil
}
