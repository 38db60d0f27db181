// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package der decodes the binary trust material a device bootstraps
// with: a DER X.509 device certificate, the bootstrap server's root CA
// certificate, and the device private key (SEC1 or PKCS#8, EC or RSA).
//
// Decoding is structural only. We check the outer SEQUENCE header and,
// for keys, look for a known algorithm OID. Full ASN.1 parsing is left
// to the crypto/TLS layer that eventually consumes the bytes.
//
//	cert, err := der.Decode(der.DeviceCertificate, raw)
//	if errors.Is(err, der.ErrMalformedAsset) {
//		...
//	}
package der

import (
	"bytes"
	"crypto/x509"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
	sumcrypto "sigsum.org/sigsum-go/pkg/crypto"
)

type Kind int

const (
	DeviceCertificate Kind = iota
	RootCACertificate
	PrivateKey
)

func (k Kind) String() string {
	switch k {
	case DeviceCertificate:
		return "device certificate"
	case RootCACertificate:
		return "root CA certificate"
	case PrivateKey:
		return "private key"
	default:
		return fmt.Sprintf("asset kind %d", int(k))
	}
}

type Algorithm int

const (
	AlgorithmNone Algorithm = iota
	AlgorithmEC
	AlgorithmRSA
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmEC:
		return "EC"
	case AlgorithmRSA:
		return "RSA"
	default:
		return "none"
	}
}

// Encoded OBJECT IDENTIFIERs (tag, length, value) we recognize inside
// a private key.
var keyOIDs = []struct {
	alg Algorithm
	oid []byte
}{
	// id-ecPublicKey 1.2.840.10045.2.1 (PKCS#8 EC)
	{AlgorithmEC, []byte{0x06, 0x07, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01}},
	// prime256v1 1.2.840.10045.3.1.7 (SEC1 parameters)
	{AlgorithmEC, []byte{0x06, 0x08, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x03, 0x01, 0x07}},
	// secp384r1 1.3.132.0.34
	{AlgorithmEC, []byte{0x06, 0x05, 0x2b, 0x81, 0x04, 0x00, 0x22}},
	// secp521r1 1.3.132.0.35
	{AlgorithmEC, []byte{0x06, 0x05, 0x2b, 0x81, 0x04, 0x00, 0x23}},
	// secp256k1 1.3.132.0.10
	{AlgorithmEC, []byte{0x06, 0x05, 0x2b, 0x81, 0x04, 0x00, 0x0a}},
	// rsaEncryption 1.2.840.113549.1.1.1 (PKCS#8 RSA)
	{AlgorithmRSA, []byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}},
}

// Asset is a DER encoded byte sequence that carries its own length.
// The zero value is an empty asset which fails every validation.
type Asset struct {
	kind     Kind
	data     []byte
	declared int
	alg      Algorithm
}

// Decode checks that b looks like a DER encoded asset of the given
// kind and returns an Asset holding a private copy of b.
func Decode(kind Kind, b []byte) (Asset, error) {
	if err := checkHeader(b); err != nil {
		return Asset{}, DecodeError{Kind: kind, Reason: err.Error(), Err: ErrMalformedAsset}
	}

	var alg Algorithm
	if kind == PrivateKey {
		alg = sniffAlgorithm(b)
		if alg == AlgorithmNone {
			return Asset{}, DecodeError{Kind: kind, Reason: "no recognized algorithm OID", Err: ErrUnsupportedAlgorithm}
		}
	}

	data := make([]byte, len(b))
	copy(data, b)

	return Asset{
		kind: kind,
		data: data,
		alg:  alg,
	}, nil
}

// checkHeader verifies the outer SEQUENCE tag and that the length in
// the header is minimally encoded and fits in b. Bytes after the
// SEQUENCE are allowed.
func checkHeader(b []byte) error {
	if len(b) <= 2 {
		return fmt.Errorf("too short, %d bytes", len(b))
	}

	if b[0] != byte(asn1.SEQUENCE) {
		return fmt.Errorf("expected SEQUENCE tag 0x30, got 0x%02x", b[0])
	}

	in := cryptobyte.String(b)
	var elem cryptobyte.String
	if !in.ReadASN1Element(&elem, asn1.SEQUENCE) {
		return fmt.Errorf("bad length or length exceeds buffer of %d bytes", len(b))
	}

	return nil
}

func sniffAlgorithm(b []byte) Algorithm {
	for _, k := range keyOIDs {
		if bytes.Contains(b, k.oid) {
			return k.alg
		}
	}

	return AlgorithmNone
}

// WithDeclaredSize returns a copy of a that also carries a size given
// by the credential source. The size is checked against the actual
// length when a bundle is built, never trusted.
func (a Asset) WithDeclaredSize(n int) Asset {
	a.declared = n
	return a
}

func (a Asset) Kind() Kind {
	return a.kind
}

// Size is the actual length of the encoded asset.
func (a Asset) Size() int {
	return len(a.data)
}

// Declared is the size the source claimed, or 0 if it didn't claim one.
func (a Asset) Declared() int {
	return a.declared
}

// Algorithm is the sniffed key algorithm. Always AlgorithmNone for
// certificates.
func (a Asset) Algorithm() Algorithm {
	return a.alg
}

// Clone returns a copy of a that doesn't share memory with a.
func (a Asset) Clone() Asset {
	a.data = a.Bytes()
	return a
}

// Bytes returns a copy of the encoded asset.
func (a Asset) Bytes() []byte {
	out := make([]byte, len(a.data))
	copy(out, a.data)

	return out
}

// Wipe zeroes the bytes held by a and every copy of a. Used when the
// contents have been moved to protected memory.
func (a Asset) Wipe() {
	for i := range a.data {
		a.data[i] = 0
	}
}

// Fingerprint is the SHA-256 digest of the encoded asset, printed in
// hex. Meant for certificates; don't log the fingerprint of a key.
func (a Asset) Fingerprint() string {
	h := sumcrypto.HashBytes(a.data)
	return fmt.Sprintf("%x", h[:])
}

// Certificate fully parses a certificate asset.
func (a Asset) Certificate() (*x509.Certificate, error) {
	if a.kind == PrivateKey {
		return nil, fmt.Errorf("%v is not a certificate", a.kind)
	}

	cert, err := x509.ParseCertificate(a.data)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse %v: %w", a.kind, err)
	}

	return cert, nil
}
