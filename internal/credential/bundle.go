// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package credential assembles validated device bootstrap credentials
// into an immutable Bundle.
//
// Build checks fields in a fixed order, identity, bootstrap URI, device
// certificate, root CA certificate, private key, and stops at the first
// failure. A Bundle is either complete or not returned at all.
//
// The private key is moved into protected memory (see package secret).
// Bundles are reference counted: whoever holds a Bundle holds one
// reference and calls Release when done. The key is zeroed when the
// last reference goes away.
package credential

import (
	"fmt"
	"sync/atomic"

	"github.com/tillitis/devcreds/internal/der"
	"github.com/tillitis/devcreds/internal/secret"
)

// PrivateKey is a read only view of the bundle's key. It must not be
// used after the bundle it came from has been released.
type PrivateKey struct {
	buf *secret.Buffer
	alg der.Algorithm
}

// Bytes returns the DER encoded key. The slice points into protected
// memory, don't keep it around.
func (k PrivateKey) Bytes() []byte {
	return k.buf.Bytes()
}

func (k PrivateKey) Size() int {
	return k.buf.Len()
}

func (k PrivateKey) Algorithm() der.Algorithm {
	return k.alg
}

func (k PrivateKey) String() string {
	return fmt.Sprintf("[%v private key, %d bytes, redacted]", k.alg, k.Size())
}

func (k PrivateKey) GoString() string {
	return k.String()
}

type Bundle struct {
	identity   Identity
	uri        BootstrapURI
	deviceCert der.Asset
	rootCA     der.Asset
	key        PrivateKey
	memoryKB   uint32

	refs atomic.Int32
}

// Build validates all fields and returns a new Bundle holding one
// reference, owned by the caller. On success the key asset is wiped,
// its bytes now live only in the bundle. On failure nothing is
// consumed and the error is a *ValidationError.
func Build(id Identity, uri string, cert, rootCA, key der.Asset, memoryKB uint32) (*Bundle, error) {
	bu, err := checkIdentity(id, uri)
	if err != nil {
		return nil, err
	}

	if err := checkAsset(FieldDeviceCertificate, der.DeviceCertificate, cert); err != nil {
		return nil, err
	}
	if err := checkAsset(FieldRootCACertificate, der.RootCACertificate, rootCA); err != nil {
		return nil, err
	}
	if err := checkAsset(FieldPrivateKey, der.PrivateKey, key); err != nil {
		return nil, err
	}
	if key.Algorithm() == der.AlgorithmNone {
		return nil, invalid(FieldPrivateKey, "unknown key algorithm")
	}

	buf, err := secret.NewFromBytes(key.Bytes())
	if err != nil {
		return nil, invalid(FieldPrivateKey, "%v", err)
	}
	key.Wipe()

	b := &Bundle{
		identity:   id,
		uri:        bu,
		deviceCert: cert.Clone(),
		rootCA:     rootCA.Clone(),
		key:        PrivateKey{buf: buf, alg: key.Algorithm()},
		memoryKB:   memoryKB,
	}
	b.refs.Store(1)

	return b, nil
}

// checkIdentity validates the identity, then the URI, then that both
// agree on the account ID.
func checkIdentity(id Identity, uri string) (BootstrapURI, error) {
	if err := id.Validate(); err != nil {
		return BootstrapURI{}, err
	}

	bu, err := ParseBootstrapURI(uri)
	if err != nil {
		return BootstrapURI{}, err
	}
	if aid := bu.AccountID(); aid != id.AccountID {
		return BootstrapURI{}, invalid(FieldURIAccountID, "%q doesn't match account ID %q", aid, id.AccountID)
	}

	return bu, nil
}

func checkAsset(field string, want der.Kind, a der.Asset) error {
	if a.Size() == 0 {
		return invalid(field, "empty")
	}
	if a.Kind() != want {
		return invalid(field, "got a %v", a.Kind())
	}
	if d := a.Declared(); d != 0 && d != a.Size() {
		return invalid(field, "declared size %d but is %d bytes", d, a.Size())
	}

	return nil
}

func (b *Bundle) Identity() Identity {
	return b.identity
}

func (b *Bundle) EndpointName() string {
	return b.identity.EndpointName
}

func (b *Bundle) AccountID() string {
	return b.identity.AccountID
}

func (b *Bundle) BootstrapURI() BootstrapURI {
	return b.uri
}

// DeviceCertificate returns a copy of the device certificate.
func (b *Bundle) DeviceCertificate() der.Asset {
	return b.deviceCert.Clone()
}

// RootCACertificate returns a copy of the bootstrap server root CA.
func (b *Bundle) RootCACertificate() der.Asset {
	return b.rootCA.Clone()
}

func (b *Bundle) PrivateKey() PrivateKey {
	return b.key
}

// MemoryBudgetKB is informational, 0 means unset.
func (b *Bundle) MemoryBudgetKB() uint32 {
	return b.memoryKB
}

// Retain adds a reference. It panics, leaving the count alone, if the
// bundle was already released.
func (b *Bundle) Retain() {
	for {
		n := b.refs.Load()
		if n <= 0 {
			panic("credential: retain of released bundle")
		}
		if b.refs.CompareAndSwap(n, n+1) {
			return
		}
	}
}

// Release drops a reference. The last Release zeroes the private key.
func (b *Bundle) Release() {
	n := b.refs.Add(-1)
	switch {
	case n == 0:
		_ = b.key.buf.Close()
	case n < 0:
		panic("credential: bundle released too many times")
	}
}

// Released reports whether the key material has been destroyed.
func (b *Bundle) Released() bool {
	return b.key.buf.Closed()
}

func (b *Bundle) String() string {
	return fmt.Sprintf("endpoint:%s account:%s uri:%s cert:%0.16s… rootca:%0.16s… key:%v",
		b.identity.EndpointName, b.identity.AccountID, b.uri,
		b.deviceCert.Fingerprint(), b.rootCA.Fingerprint(), b.key.Algorithm())
}
