// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package der

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"
)

// PKCS#8 wrapped P-256 key from the system test developer credentials.
const devKeyHex = "308193020100301306072a8648ce3d020106082a8648ce3d0301070479307702" +
	"01010420a6413ae291f925ad97402800aeb2bf59bff7cb947d312c375a658a98" +
	"7debe2fba00a06082a8648ce3d030107a14403420004d5bf5636596971413c73" +
	"e0ad0f3b8cd8a224b127fdf19db9787b380925423faa3fc32c4cbe2727fbd83d" +
	"942e327c9dd7510b4aaf8e25c45e5c1b73871e8811a3"

func TestDecodeDevKey(t *testing.T) {
	raw := mustDecodeHexString(devKeyHex)

	key, err := Decode(PrivateKey, raw)
	if err != nil {
		t.Fatal(err)
	}

	if key.Size() != len(raw) {
		t.Fatalf("Size() = %d, want %d", key.Size(), len(raw))
	}
	if key.Size() != 150 {
		t.Fatalf("Size() = %d, want 150", key.Size())
	}
	if key.Algorithm() != AlgorithmEC {
		t.Fatalf("Algorithm() = %v, want EC", key.Algorithm())
	}
}

func TestDecodeGeneratedKeys(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	sec1, err := x509.MarshalECPrivateKey(ecKey)
	if err != nil {
		t.Fatal(err)
	}
	pkcs8EC, err := x509.MarshalPKCS8PrivateKey(ecKey)
	if err != nil {
		t.Fatal(err)
	}

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	pkcs8RSA, err := x509.MarshalPKCS8PrivateKey(rsaKey)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		raw  []byte
		alg  Algorithm
	}{
		{"SEC1 P-384", sec1, AlgorithmEC},
		{"PKCS#8 P-384", pkcs8EC, AlgorithmEC},
		{"PKCS#8 RSA", pkcs8RSA, AlgorithmRSA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := Decode(PrivateKey, tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			if key.Size() != len(tt.raw) {
				t.Fatalf("Size() = %d, want %d", key.Size(), len(tt.raw))
			}
			if key.Algorithm() != tt.alg {
				t.Fatalf("Algorithm() = %v, want %v", key.Algorithm(), tt.alg)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	raw := mustDecodeHexString(devKeyHex)

	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty", nil},
		{"one byte", raw[:1]},
		{"two bytes", raw[:2]},
		{"wrong tag", append([]byte{0x31}, raw[1:]...)},
		{"truncated", raw[:len(raw)-1]},
		{"indefinite length", []byte{0x30, 0x80, 0x00, 0x00}},
		{"too many length octets", []byte{0x30, 0x85, 0x01, 0x01, 0x01, 0x01, 0x01}},
		{"truncated length octets", []byte{0x30, 0x82, 0x01}},
		{"long form for short length", []byte{0x30, 0x81, 0x03, 0x02, 0x01, 0x00}},
		{"leading zero length octet", []byte{0x30, 0x82, 0x00, 0x03, 0x02, 0x01, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(DeviceCertificate, tt.raw)
			if !errors.Is(err, ErrMalformedAsset) {
				t.Fatalf("Got %v, want ErrMalformedAsset", err)
			}

			var de DecodeError
			if !errors.As(err, &de) || de.Kind != DeviceCertificate {
				t.Fatalf("Expected DecodeError for device certificate, got %#v", err)
			}
		})
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	raw := []byte{0x30, 0x03, 0x02, 0x01, 0x00, 0xff, 0xff}

	a, err := Decode(RootCACertificate, raw)
	if err != nil {
		t.Fatal(err)
	}
	if a.Size() != len(raw) {
		t.Fatalf("Size() = %d, want %d", a.Size(), len(raw))
	}
}

func TestDecodeUnsupportedAlgorithm(t *testing.T) {
	// A well formed SEQUENCE with no key OID in it.
	raw := []byte{0x30, 0x06, 0x02, 0x01, 0x00, 0x04, 0x01, 0xff}

	_, err := Decode(PrivateKey, raw)
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf("Got %v, want ErrUnsupportedAlgorithm", err)
	}

	// Certificates aren't sniffed for key OIDs.
	if _, err := Decode(RootCACertificate, raw); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestDecodeCopiesInput(t *testing.T) {
	raw := mustDecodeHexString(devKeyHex)

	key, err := Decode(PrivateKey, raw)
	if err != nil {
		t.Fatal(err)
	}

	raw[10] ^= 0xff
	if key.Bytes()[10] == raw[10] {
		t.Fatal("Asset shares memory with input")
	}
}

func TestWipe(t *testing.T) {
	key, err := Decode(PrivateKey, mustDecodeHexString(devKeyHex))
	if err != nil {
		t.Fatal(err)
	}

	cp := key
	key.Wipe()

	for _, b := range cp.Bytes() {
		if b != 0 {
			t.Fatal("Copy of asset not wiped")
		}
	}
}

func TestDeclaredSize(t *testing.T) {
	key, err := Decode(PrivateKey, mustDecodeHexString(devKeyHex))
	if err != nil {
		t.Fatal(err)
	}

	if key.Declared() != 0 {
		t.Fatalf("Declared() = %d, want 0", key.Declared())
	}

	d := key.WithDeclaredSize(4711)
	if d.Declared() != 4711 || key.Declared() != 0 {
		t.Fatal("WithDeclaredSize should only change the copy")
	}
}

func TestCertificate(t *testing.T) {
	raw := selfSigned(t)

	asset, err := Decode(RootCACertificate, raw)
	if err != nil {
		t.Fatal(err)
	}

	cert, err := asset.Certificate()
	if err != nil {
		t.Fatal(err)
	}
	if cert.Subject.CommonName != "test root" {
		t.Fatalf("Unexpected subject %v", cert.Subject)
	}

	if l := len(asset.Fingerprint()); l != 64 {
		t.Fatalf("Fingerprint has length %d, want 64", l)
	}

	key, err := Decode(PrivateKey, mustDecodeHexString(devKeyHex))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := key.Certificate(); err == nil {
		t.Fatal("Expected error parsing a key as certificate")
	}
}

func TestKindString(t *testing.T) {
	if !strings.HasPrefix(Kind(42).String(), "asset kind") {
		t.Fatalf("Unexpected %q", Kind(42).String())
	}
}

func selfSigned(t *testing.T) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	tmpl := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "test root"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
	}

	raw, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatal(err)
	}

	return raw
}

func mustDecodeHexString(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return b
}
