// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package provision is what a bootstrap client reads its credentials
// through.
//
// Start every bootstrap attempt with Begin and read all fields from
// the returned Snapshot. The snapshot holds on to the bundle that was
// active when the attempt began, so a credential rotation in the
// middle of a handshake can't mix fields from two bundles.
//
//	snap, err := provision.Begin(st)
//	if err != nil {
//		...
//	}
//	defer snap.Close()
//
//	cert, err := snap.TLSCertificate()
package provision

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"sync"

	"github.com/tillitis/devcreds/internal/credential"
	"github.com/tillitis/devcreds/internal/der"
)

// Acquirer hands out the active bundle with a reference for the
// caller. *store.Store is one.
type Acquirer interface {
	Acquire() (*credential.Bundle, uint64, error)
}

type Snapshot struct {
	mu         sync.Mutex
	b          *credential.Bundle
	generation uint64
}

// Begin snapshots the active bundle. Returns store.ErrNotLoaded if
// there is none.
func Begin(a Acquirer) (*Snapshot, error) {
	b, gen, err := a.Acquire()
	if err != nil {
		return nil, err
	}

	return &Snapshot{b: b, generation: gen}, nil
}

// bundle panics after Close, the key might already be zeroed.
func (s *Snapshot) bundle() *credential.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.b == nil {
		panic("provision: snapshot used after Close")
	}

	return s.b
}

// Close releases the snapshot. Safe to call more than once.
func (s *Snapshot) Close() {
	s.mu.Lock()
	b := s.b
	s.b = nil
	s.mu.Unlock()

	if b != nil {
		b.Release()
	}
}

// Generation is the store generation the bundle was loaded in.
func (s *Snapshot) Generation() uint64 {
	return s.generation
}

func (s *Snapshot) Identity() credential.Identity {
	return s.bundle().Identity()
}

func (s *Snapshot) EndpointName() string {
	return s.bundle().EndpointName()
}

func (s *Snapshot) AccountID() string {
	return s.bundle().AccountID()
}

func (s *Snapshot) BootstrapURI() credential.BootstrapURI {
	return s.bundle().BootstrapURI()
}

func (s *Snapshot) DeviceCertificate() der.Asset {
	return s.bundle().DeviceCertificate()
}

func (s *Snapshot) RootCACertificate() der.Asset {
	return s.bundle().RootCACertificate()
}

// PrivateKey is only usable until Close.
func (s *Snapshot) PrivateKey() credential.PrivateKey {
	return s.bundle().PrivateKey()
}

func (s *Snapshot) MemoryBudgetKB() uint32 {
	return s.bundle().MemoryBudgetKB()
}

// TLSCertificate returns the device certificate and key in the form
// crypto/tls wants for client authentication. The parsed key lives on
// the Go heap and is not zeroed by Close.
func (s *Snapshot) TLSCertificate() (tls.Certificate, error) {
	b := s.bundle()
	cert := b.DeviceCertificate()

	leaf, err := cert.Certificate()
	if err != nil {
		return tls.Certificate{}, err
	}

	key, err := parseKey(b.PrivateKey().Bytes())
	if err != nil {
		return tls.Certificate{}, err
	}

	if err := matchKey(leaf, key); err != nil {
		return tls.Certificate{}, err
	}

	return tls.Certificate{
		Certificate: [][]byte{cert.Bytes()},
		PrivateKey:  key,
		Leaf:        leaf,
	}, nil
}

// RootCAs returns a pool holding only the bootstrap server's root CA.
func (s *Snapshot) RootCAs() (*x509.CertPool, error) {
	ca, err := s.bundle().RootCACertificate().Certificate()
	if err != nil {
		return nil, err
	}

	pool := x509.NewCertPool()
	pool.AddCert(ca)

	return pool, nil
}

func parseKey(b []byte) (crypto.Signer, error) {
	if k, err := x509.ParsePKCS8PrivateKey(b); err == nil {
		signer, ok := k.(crypto.Signer)
		if !ok {
			return nil, fmt.Errorf("unsupported private key type %T", k)
		}
		return signer, nil
	}

	if k, err := x509.ParseECPrivateKey(b); err == nil {
		return k, nil
	}

	return nil, fmt.Errorf("couldn't parse private key as PKCS#8 or SEC1")
}

func matchKey(leaf *x509.Certificate, key crypto.Signer) error {
	type equaler interface {
		Equal(crypto.PublicKey) bool
	}

	switch pub := leaf.PublicKey.(type) {
	case *ecdsa.PublicKey, *rsa.PublicKey:
		if !pub.(equaler).Equal(key.Public()) {
			return fmt.Errorf("private key doesn't match device certificate")
		}
	default:
		return fmt.Errorf("unsupported certificate key type %T", pub)
	}

	return nil
}
