// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/tillitis/devcreds/internal/secret"
	"github.com/tillitis/devcreds/internal/signkey"
	"github.com/tillitis/devcreds/internal/ssh"
	sumcrypto "sigsum.org/sigsum-go/pkg/crypto"
)

// keyName names a key in the keys file by its key hash.
func keyName(prefix string, pub sumcrypto.PublicKey) string {
	h := signkey.PubKey{Key: pub}.KeyHash()
	return fmt.Sprintf("%s-%x", prefix, h[:4])
}

func pubkey(opts options) int {
	if !opts.useTKey {
		le.Printf("Only a TKey signer has a public key to show, pass --tkey.\n")
		return 2
	}

	tk, err := connectSigner(opts)
	if err != nil {
		le.Printf("%v\n", err)
		return 1
	}
	defer tk.Close()

	pub := tk.Public()

	entry, err := ssh.KeysEntry(keyName("tkey", pub), &pub)
	if err != nil {
		le.Printf("%v\n", err)
		return 1
	}

	le.Printf("TKey UDI: %s\n", tk.UDI())
	le.Printf("Entry for the provisioning keys file follows on stdout:\n")
	fmt.Print(entry)

	return 0
}

func keygen(opts options) int {
	fn := opts.conf.Signer.Seed
	if fn == "" {
		le.Printf("Please pass where to write the seed with --seed.\n")
		return 2
	}

	pub, err := generateSeed(fn)
	if err != nil {
		le.Printf("%v\n", err)
		return 1
	}

	entry, err := ssh.KeysEntry(keyName("seed", pub), &pub)
	if err != nil {
		le.Printf("%v\n", err)
		return 1
	}

	le.Printf("Wrote %s\n", fn)
	le.Printf("Entry for the provisioning keys file follows on stdout:\n")
	fmt.Print(entry)

	return 0
}

// generateSeed writes a new Ed25519 seed as hex to fn, which must not
// exist.
func generateSeed(fn string) (sumcrypto.PublicKey, error) {
	var pub sumcrypto.PublicKey

	if _, err := os.Stat(fn); err == nil || !errors.Is(err, os.ErrNotExist) {
		return pub, fmt.Errorf("%s already exists?", fn)
	}

	edPub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return pub, fmt.Errorf("GenerateKey: %w", err)
	}
	defer secret.Wipe(priv)
	copy(pub[:], edPub)

	seedHex := []byte(hex.EncodeToString(priv.Seed()) + "\n")
	defer secret.Wipe(seedHex)

	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return pub, IOError{path: fn, err: err}
	}

	if _, err := f.Write(seedHex); err != nil {
		f.Close()
		return pub, IOError{path: fn, err: err}
	}

	if err := f.Close(); err != nil {
		return pub, IOError{path: fn, err: err}
	}

	return pub, nil
}

func listKeys(opts options) int {
	if opts.noVerify {
		le.Printf("Cannot use --no-verify with this command.\n")
		return 2
	}

	keys, err := trustedKeys(opts)
	if err != nil {
		le.Printf("%v\n", err)
		return 1
	}

	for _, k := range keys.List() {
		fmt.Printf("%s\n  %s\n  key hash %x\n", k.Name, ssh.FormatPublicEd25519(&k.Key, ""), k.KeyHash())
	}

	return 0
}
