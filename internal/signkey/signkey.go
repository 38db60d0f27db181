// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package signkey knows the provisioning keys trusted to sign
// credential blobs, and how to sign with a key of our own.
package signkey

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tillitis/devcreds/internal/data"
	sumcrypto "sigsum.org/sigsum-go/pkg/crypto"
	"sigsum.org/sigsum-go/pkg/key"
)

type PubKey struct {
	Name string
	Key  sumcrypto.PublicKey
}

func (p PubKey) String() string {
	return fmt.Sprintf("%v: %x", p.Name, p.Key)
}

// KeyHash identifies a key the way sigsum does, by the SHA-256 of the
// raw public key.
func (p PubKey) KeyHash() sumcrypto.Hash {
	return sumcrypto.HashBytes(p.Key[:])
}

// Keys is a set of trusted provisioning keys.
type Keys struct {
	keys map[sumcrypto.PublicKey]PubKey
}

type state int

const (
	sName state = iota
	sKey
)

// ParseKeys reads pairs of lines: a key name, then the key in OpenSSH
// format. Empty lines and lines starting with # are skipped.
func ParseKeys(r io.Reader) (Keys, error) {
	var pubkey PubKey
	st := sName
	ks := Keys{keys: make(map[sumcrypto.PublicKey]PubKey)}

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments or empty lines
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		switch st {
		case sName:
			pubkey.Name = line
			st = sKey

		case sKey:
			pkey, err := key.ParsePublicKey(line)
			if err != nil {
				return Keys{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			pubkey.Key = pkey

			if _, ok := ks.keys[pkey]; ok {
				return Keys{}, fmt.Errorf("line %d: key %q listed twice", lineNo, pubkey.Name)
			}
			ks.keys[pkey] = pubkey

			pubkey = PubKey{}
			st = sName
		}
	}

	if err := scanner.Err(); err != nil {
		return Keys{}, fmt.Errorf("failed to parse provisioning keys: %w", err)
	}

	if st != sName {
		return Keys{}, errors.New("key name without key at end of input")
	}

	return ks, nil
}

func FromString(s string) (Keys, error) {
	return ParseKeys(strings.NewReader(s))
}

func FromFile(fn string) (Keys, error) {
	f, err := os.Open(fn)
	if err != nil {
		return Keys{}, fmt.Errorf("couldn't open keys file: %w", err)
	}
	defer f.Close()

	return ParseKeys(f)
}

// FromEmbedded returns the compiled in provisioning keys.
func FromEmbedded() (Keys, error) {
	ks, err := FromString(data.ProvisioningKeys)
	if err != nil {
		return Keys{}, fmt.Errorf("parse error in embedded provisioning keys: %w", err)
	}

	return ks, nil
}

func (k Keys) Lookup(pub sumcrypto.PublicKey) (PubKey, bool) {
	p, ok := k.keys[pub]
	return p, ok
}

func (k Keys) Len() int {
	return len(k.keys)
}

// List returns the keys sorted by name.
func (k Keys) List() []PubKey {
	list := make([]PubKey, 0, len(k.keys))
	for _, p := range k.keys {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	return list
}

// Verify checks sig over msg against every trusted key and returns
// the one that made it.
func (k Keys) Verify(msg []byte, sig *sumcrypto.Signature) (PubKey, bool) {
	for pub, p := range k.keys {
		if sumcrypto.Verify(&pub, msg, sig) {
			return p, true
		}
	}

	return PubKey{}, false
}
