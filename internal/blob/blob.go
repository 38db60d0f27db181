// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package blob reads and writes credentials stored in a flash
// partition.
//
// A blob is a small header followed by a CBOR payload and an optional
// signature:
//
//	offset  size  field
//	0       4     magic "DCRD"
//	4       1     version, 1
//	5       1     flags, bit 0 set if signed
//	6       4     payload length, big endian
//	10      n     payload, deterministic CBOR
//	10+n    64    Ed25519 signature, if signed
//
// The signature is made over the SHA-256 digest of header and payload.
package blob

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/tillitis/devcreds/internal/credential"
	"github.com/tillitis/devcreds/internal/secret"
	"github.com/tillitis/devcreds/internal/signkey"
	sumcrypto "sigsum.org/sigsum-go/pkg/crypto"
)

const (
	Magic      = "DCRD"
	Version    = 1
	HeaderSize = 10

	flagSigned = 1 << 0

	// Far more than a certificate chain and key need. Anything
	// larger is garbage in flash.
	MaxPayloadSize = 64 * 1024
)

// payload is the CBOR encoded part of a blob. Integer keys keep it
// small.
type payload struct {
	EndpointName      string `cbor:"1,keyasint"`
	AccountID         string `cbor:"2,keyasint"`
	Manufacturer      string `cbor:"3,keyasint"`
	ModelNumber       string `cbor:"4,keyasint"`
	SerialNumber      string `cbor:"5,keyasint,omitempty"`
	DeviceType        string `cbor:"6,keyasint"`
	HardwareVersion   string `cbor:"7,keyasint"`
	BootstrapURI      string `cbor:"8,keyasint"`
	DeviceCertificate []byte `cbor:"9,keyasint"`
	RootCACertificate []byte `cbor:"10,keyasint"`
	PrivateKey        []byte `cbor:"11,keyasint"`
	MemoryTotalKB     uint32 `cbor:"12,keyasint,omitempty"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("blob: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: 16,
		MaxMapPairs:      32,
		IndefLength:      cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic("blob: CBOR decoder initialization failed: " + err.Error())
	}
}

// Signer makes an Ed25519 signature over a message. Both
// signkey.SeedSigner and a TKey do.
type Signer interface {
	Public() sumcrypto.PublicKey
	Sign(msg []byte) ([]byte, error)
}

// Blob is a decoded credential blob.
type Blob struct {
	Raw credential.Raw

	// Signed is set if the blob carried a signature that one of the
	// trusted keys verified.
	Signed   bool
	SignedBy signkey.PubKey
}

// Encode packs r into a blob, signed by s unless s is nil.
func Encode(r *credential.Raw, s Signer) ([]byte, error) {
	p := payload{
		EndpointName:      r.Identity.EndpointName,
		AccountID:         r.Identity.AccountID,
		Manufacturer:      r.Identity.Manufacturer,
		ModelNumber:       r.Identity.ModelNumber,
		SerialNumber:      r.Identity.SerialNumber,
		DeviceType:        r.Identity.DeviceType,
		HardwareVersion:   r.Identity.HardwareVersion,
		BootstrapURI:      r.BootstrapURI,
		DeviceCertificate: r.DeviceCertificate,
		RootCACertificate: r.RootCACertificate,
		PrivateKey:        r.PrivateKey,
		MemoryTotalKB:     r.MemoryTotalKB,
	}

	enc, err := encMode.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("couldn't encode payload: %w", err)
	}
	defer secret.Wipe(enc)

	if len(enc) > MaxPayloadSize {
		return nil, ErrTooLarge
	}

	var flags byte
	if s != nil {
		flags |= flagSigned
	}

	var out bytes.Buffer
	out.WriteString(Magic)
	out.WriteByte(Version)
	out.WriteByte(flags)
	_ = binary.Write(&out, binary.BigEndian, uint32(len(enc)))
	out.Write(enc)

	if s != nil {
		digest := sumcrypto.HashBytes(out.Bytes())

		sig, err := s.Sign(digest[:])
		if err != nil {
			secret.Wipe(out.Bytes())
			return nil, fmt.Errorf("couldn't sign blob: %w", err)
		}
		if len(sig) != sumcrypto.SignatureSize {
			secret.Wipe(out.Bytes())
			return nil, fmt.Errorf("signature has length %d, expected %d", len(sig), sumcrypto.SignatureSize)
		}

		out.Write(sig)
	}

	return out.Bytes(), nil
}

// Decode reads the blob at off in r. If keys is nil the signature, if
// any, isn't checked and the blob is returned with Signed false.
// Otherwise the blob must be signed by one of keys.
func Decode(r io.ReaderAt, off int64, keys *signkey.Keys) (*Blob, error) {
	var hdr [HeaderSize]byte

	if _, err := readFull(r, hdr[:], off); err != nil {
		return nil, FormatError{Offset: off, Msg: fmt.Sprintf("couldn't read header: %v", err)}
	}

	if string(hdr[0:4]) != Magic {
		if bytes.Equal(hdr[:], bytes.Repeat([]byte{0xff}, HeaderSize)) {
			return nil, ErrErased
		}
		return nil, ErrNoBlob
	}

	if hdr[4] != Version {
		return nil, FormatError{Offset: off + 4, Msg: fmt.Sprintf("unknown version %d", hdr[4])}
	}

	flags := hdr[5]
	if flags&^flagSigned != 0 {
		return nil, FormatError{Offset: off + 5, Msg: fmt.Sprintf("unknown flags 0x%02x", flags)}
	}

	n := binary.BigEndian.Uint32(hdr[6:10])
	if n == 0 || n > MaxPayloadSize {
		return nil, FormatError{Offset: off + 6, Msg: fmt.Sprintf("bad payload length %d", n)}
	}

	size := HeaderSize + int(n)
	if flags&flagSigned != 0 {
		size += sumcrypto.SignatureSize
	}

	frame := make([]byte, size)
	defer secret.Wipe(frame)

	if _, err := readFull(r, frame, off); err != nil {
		return nil, FormatError{Offset: off, Msg: fmt.Sprintf("couldn't read %d bytes: %v", size, err)}
	}

	signedPart := frame[:HeaderSize+int(n)]
	var b Blob

	switch {
	case keys == nil:
	case flags&flagSigned == 0:
		return nil, ErrUnsigned
	default:
		var sig sumcrypto.Signature
		copy(sig[:], frame[HeaderSize+int(n):])
		digest := sumcrypto.HashBytes(signedPart)

		pub, ok := keys.Verify(digest[:], &sig)
		if !ok {
			return nil, ErrBadSignature
		}
		b.Signed = true
		b.SignedBy = pub
	}

	var p payload
	if err := decMode.Unmarshal(signedPart[HeaderSize:], &p); err != nil {
		return nil, FormatError{Offset: off + HeaderSize, Msg: fmt.Sprintf("bad payload: %v", err)}
	}

	b.Raw = credential.Raw{
		Identity: credential.Identity{
			EndpointName:    p.EndpointName,
			AccountID:       p.AccountID,
			Manufacturer:    p.Manufacturer,
			ModelNumber:     p.ModelNumber,
			SerialNumber:    p.SerialNumber,
			DeviceType:      p.DeviceType,
			HardwareVersion: p.HardwareVersion,
		},
		BootstrapURI:      p.BootstrapURI,
		DeviceCertificate: p.DeviceCertificate,
		RootCACertificate: p.RootCACertificate,
		PrivateKey:        p.PrivateKey,
		MemoryTotalKB:     p.MemoryTotalKB,
	}

	return &b, nil
}

// readFull is ReadAt that ignores io.EOF when all of b was read.
func readFull(r io.ReaderAt, b []byte, off int64) (int, error) {
	n, err := r.ReadAt(b, off)
	if n == len(b) {
		return n, nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}

	return n, err
}
