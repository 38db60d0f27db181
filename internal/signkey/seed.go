// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package signkey

import (
	"crypto/ed25519"
	"fmt"
	"os"
	"strings"

	"github.com/tillitis/devcreds/internal/secret"
	"github.com/tillitis/devcreds/internal/util"
	sumcrypto "sigsum.org/sigsum-go/pkg/crypto"
)

// SeedSigner signs with an Ed25519 key kept in protected memory.
type SeedSigner struct {
	priv *secret.Buffer
	pub  sumcrypto.PublicKey
}

// NewSeedSigner derives a key from a 32 byte seed. The seed is zeroed.
func NewSeedSigner(seed []byte) (*SeedSigner, error) {
	if l := len(seed); l != ed25519.SeedSize {
		return nil, fmt.Errorf("wrong seed length %d, expected %d", l, ed25519.SeedSize)
	}

	priv := ed25519.NewKeyFromSeed(seed)
	secret.Wipe(seed)

	var s SeedSigner
	copy(s.pub[:], priv.Public().(ed25519.PublicKey))

	buf, err := secret.NewFromBytes(priv)
	if err != nil {
		return nil, err
	}
	s.priv = buf

	return &s, nil
}

// ReadSeedFile reads a seed stored as hex on the first line of fn,
// like the ones written by "devcreds keygen".
func ReadSeedFile(fn string) (*SeedSigner, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer secret.Wipe(data)

	line, _, _ := strings.Cut(string(data), "\n")

	seed := make([]byte, ed25519.SeedSize)
	if err := util.DecodeHex(seed, strings.TrimSpace(line)); err != nil {
		return nil, fmt.Errorf("couldn't decode seed in %s: %w", fn, err)
	}

	return NewSeedSigner(seed)
}

func (s *SeedSigner) Public() sumcrypto.PublicKey {
	return s.pub
}

func (s *SeedSigner) Sign(msg []byte) ([]byte, error) {
	if s.priv.Closed() {
		return nil, secret.ErrClosed
	}

	return ed25519.Sign(ed25519.PrivateKey(s.priv.Bytes()), msg), nil
}

// Close zeroes the private key.
func (s *SeedSigner) Close() error {
	return s.priv.Close()
}
