// SPDX-FileCopyrightText: 2025 Glasklar Teknik <glasklarteknik.se>
// SPDX-License-Identifier: BSD-2-Clause

package ssh

import (
	"crypto/ed25519"
	"testing"

	sumcrypto "sigsum.org/sigsum-go/pkg/crypto"
	"sigsum.org/sigsum-go/pkg/key"
)

func zeroSeedKey() sumcrypto.PublicKey {
	var pub sumcrypto.PublicKey
	priv := ed25519.NewKeyFromSeed(make([]byte, ed25519.SeedSize))
	copy(pub[:], priv.Public().(ed25519.PublicKey))

	return pub
}

func TestFormat(t *testing.T) {
	pub := zeroSeedKey()

	want := "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIDtqJ7zOtqQtYqOo0CpvDXNlMhV3HeJDpjrASKGLWdop"
	if got := FormatPublicEd25519(&pub, ""); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := FormatPublicEd25519(&pub, " test key "); got != want+" test key" {
		t.Fatalf("got %q", got)
	}

	parsed, err := key.ParsePublicKey(FormatPublicEd25519(&pub, "comment"))
	if err != nil {
		t.Fatal(err)
	}
	if parsed != pub {
		t.Fatalf("parsed %x, want %x", parsed, pub)
	}
}

func TestKeysEntry(t *testing.T) {
	pub := zeroSeedKey()

	entry, err := KeysEntry("factory-1", &pub)
	if err != nil {
		t.Fatal(err)
	}
	want := "factory-1\nssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIDtqJ7zOtqQtYqOo0CpvDXNlMhV3HeJDpjrASKGLWdop factory-1\n"
	if entry != want {
		t.Fatalf("got %q, want %q", entry, want)
	}

	for _, name := range []string{"", "  ", "#comment", "two\nlines"} {
		if _, err := KeysEntry(name, &pub); err == nil {
			t.Fatalf("Expected error for name %q", name)
		}
	}
}
