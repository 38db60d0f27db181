// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package credential

import (
	"github.com/tillitis/devcreds/internal/der"
	"github.com/tillitis/devcreds/internal/secret"
)

// Raw is the shape every credential source produces: strings and
// undecoded DER bytes, plus whatever sizes the source claimed for
// them. A zero declared size means the source didn't claim one.
type Raw struct {
	Identity     Identity
	BootstrapURI string

	DeviceCertificate []byte
	RootCACertificate []byte
	PrivateKey        []byte

	DeviceCertificateSize int
	RootCACertificateSize int
	PrivateKeySize        int

	MemoryTotalKB uint32
}

// Bundle decodes the assets and builds a Bundle from r. Fields are
// checked in the same order as Build, so a bad URI is reported before
// a malformed certificate. On success r.PrivateKey is wiped.
//
// Decode failures are returned as a *DecodeFailure naming the field.
func (r *Raw) Bundle() (*Bundle, error) {
	if _, err := checkIdentity(r.Identity, r.BootstrapURI); err != nil {
		return nil, err
	}

	cert, err := decode(FieldDeviceCertificate, der.DeviceCertificate, r.DeviceCertificate, r.DeviceCertificateSize)
	if err != nil {
		return nil, err
	}

	rootCA, err := decode(FieldRootCACertificate, der.RootCACertificate, r.RootCACertificate, r.RootCACertificateSize)
	if err != nil {
		return nil, err
	}

	key, err := decode(FieldPrivateKey, der.PrivateKey, r.PrivateKey, r.PrivateKeySize)
	if err != nil {
		return nil, err
	}

	b, err := Build(r.Identity, r.BootstrapURI, cert, rootCA, key, r.MemoryTotalKB)
	if err != nil {
		key.Wipe()
		return nil, err
	}

	secret.Wipe(r.PrivateKey)

	return b, nil
}

// Wipe zeroes the private key bytes of r.
func (r *Raw) Wipe() {
	secret.Wipe(r.PrivateKey)
}

func decode(field string, kind der.Kind, b []byte, declared int) (der.Asset, error) {
	if len(b) == 0 {
		return der.Asset{}, invalid(field, "empty")
	}

	a, err := der.Decode(kind, b)
	if err != nil {
		return der.Asset{}, &DecodeFailure{Field: field, Err: err}
	}

	return a.WithDeclaredSize(declared), nil
}
