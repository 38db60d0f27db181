// SPDX-FileCopyrightText: 2025 Glasklar Teknik <glasklarteknik.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package ssh writes Ed25519 public keys in OpenSSH authorized_keys
// format, the format of the provisioning keys file.
package ssh

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"strings"

	sumcrypto "sigsum.org/sigsum-go/pkg/crypto"
)

const keyType = "ssh-ed25519"

type bytesOrString interface{ []byte | string }

func serializeString[T bytesOrString](s T) []byte {
	if len(s) > math.MaxInt32 {
		log.Panicf("string too large for ssh, length %d", len(s))
	}
	buffer := make([]byte, 4+len(s))
	binary.BigEndian.PutUint32(buffer, uint32(len(s)))
	copy(buffer[4:], s)
	return buffer
}

// Marshal returns the SSH wire encoding of pub.
func Marshal(pub *sumcrypto.PublicKey) []byte {
	return bytes.Join([][]byte{
		serializeString(keyType),
		serializeString(pub[:])},
		nil)
}

// FormatPublicEd25519 returns pub as one authorized_keys line,
// without a trailing newline.
func FormatPublicEd25519(pub *sumcrypto.PublicKey, comment string) string {
	line := keyType + " " + base64.StdEncoding.EncodeToString(Marshal(pub))
	if comment = strings.TrimSpace(comment); comment != "" {
		line += " " + comment
	}

	return line
}

// KeysEntry returns pub as an entry for the provisioning keys file:
// the name on one line, the key on the next.
func KeysEntry(name string, pub *sumcrypto.PublicKey) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "#") || strings.ContainsAny(name, "\r\n") {
		return "", fmt.Errorf("bad key name %q", name)
	}

	return name + "\n" + FormatPublicEd25519(pub, name) + "\n", nil
}
