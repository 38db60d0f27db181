// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tillitis/devcreds/internal/blob"
	"github.com/tillitis/devcreds/internal/provision"
	"github.com/tillitis/devcreds/internal/signkey"
	"github.com/tillitis/devcreds/internal/source"
	"github.com/tillitis/devcreds/internal/ssh"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	// Missing default file is fine, but not an explicit one.
	conf, err := loadConfig(filepath.Join(dir, "missing.yaml"), false)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Config{}, conf); diff != "" {
		t.Fatalf("Config mismatch (-want +got):\n%s", diff)
	}

	var ioErr IOError
	if _, err := loadConfig(filepath.Join(dir, "missing.yaml"), true); !errors.As(err, &ioErr) {
		t.Fatalf("Expected IOError, got %v", err)
	}

	fn := filepath.Join(dir, "devcreds.yaml")
	writeTestFile(t, fn, []byte(`
source:
  flash: /dev/mtd3
  offset: 4096
signer:
  seed: seed.hex
keys: keys.txt
`))

	conf, err = loadConfig(fn, true)
	if err != nil {
		t.Fatal(err)
	}

	want := Config{
		Source: SourceConfig{Flash: "/dev/mtd3", Offset: 4096},
		Signer: SignerConfig{Seed: "seed.hex"},
		Keys:   "keys.txt",
	}
	if diff := cmp.Diff(want, conf); diff != "" {
		t.Fatalf("Config mismatch (-want +got):\n%s", diff)
	}

	writeTestFile(t, fn, []byte("sources:\n  header: x\n"))
	var pe ParseError
	if _, err := loadConfig(fn, true); !errors.As(err, &pe) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
}

func TestSourceFor(t *testing.T) {
	tests := []struct {
		name string
		opts options
		want source.Source
		err  error
	}{
		{"default", options{}, source.CompiledIn{}, nil},
		{"header", options{conf: Config{Source: SourceConfig{Header: "h.c"}}}, source.Header{Path: "h.c"}, nil},
		{"manifest", options{conf: Config{Source: SourceConfig{Manifest: "m.yaml"}}}, source.Manifest{Path: "m.yaml"}, nil},
		{
			"flash unverified",
			options{conf: Config{Source: SourceConfig{Flash: "f.img", Offset: 8}}, noVerify: true},
			source.Flash{Path: "f.img", Offset: 8},
			nil,
		},
		{"many", options{conf: Config{Source: SourceConfig{Header: "h.c", Flash: "f.img"}}}, nil, ErrManySources},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sourceFor(tt.opts)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Got error %v, want %v", err, tt.err)
			}
			if got != tt.want {
				t.Fatalf("Got %#v, want %#v", got, tt.want)
			}
		})
	}

	src, err := sourceFor(options{conf: Config{Source: SourceConfig{Flash: "f.img"}}})
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := src.(source.Flash); !ok || f.Keys == nil || f.Keys.Len() == 0 {
		t.Fatalf("Expected flash source with the compiled in keys, got %#v", src)
	}
}

func TestPackAndShow(t *testing.T) {
	dir := t.TempDir()

	seedFn := filepath.Join(dir, "seed.hex")
	pub, err := generateSeed(seedFn)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := generateSeed(seedFn); err == nil {
		t.Fatal("Expected error when seed file exists")
	}

	entry, err := ssh.KeysEntry(keyName("seed", pub), &pub)
	if err != nil {
		t.Fatal(err)
	}
	keysFn := filepath.Join(dir, "keys.txt")
	writeTestFile(t, keysFn, []byte(entry))

	opts := options{
		conf: Config{
			Source: SourceConfig{Offset: 0x1000},
			Signer: SignerConfig{Seed: seedFn},
			Keys:   keysFn,
		},
	}

	signer, closeSigner, err := signerFor(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer closeSigner()

	img := filepath.Join(dir, "flash.img")
	writeTestFile(t, img, bytes.Repeat([]byte{0xff}, 0x4000))

	n, err := packBlob(context.Background(), source.CompiledIn{}, signer, img, 0x1000)
	if err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(img)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 0x4000 || b[0] != 0xff || b[0x1000+n] != 0xff || string(b[0x1000:0x1004]) != blob.Magic {
		t.Fatal("Blob not written in place")
	}

	opts.conf.Source.Flash = img
	st, done, err := loadStore(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	defer done()

	snap, err := provision.Begin(st)
	if err != nil {
		t.Fatal(err)
	}
	defer snap.Close()

	var out bytes.Buffer
	if err := printSnapshot(&out, snap, time.Now()); err != nil {
		t.Fatal(err)
	}

	s := out.String()
	for _, want := range []string{
		"Endpoint name:     016d3a6850395e26cf38992c03c00000",
		"Size:        649 bytes",
		"Size:        566 bytes",
		"Size:        150 bytes",
		"Algorithm:   EC",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("Output lacks %q:\n%s", want, s)
		}
	}

	key := hex.EncodeToString(snap.PrivateKey().Bytes())
	if strings.Contains(s, key) || strings.Contains(hex.EncodeToString(out.Bytes()), key) {
		t.Fatal("Key material in output")
	}

	// Not trusted by the compiled in keys.
	opts.conf.Keys = ""
	if _, _, err := loadStore(context.Background(), opts); !errors.Is(err, blob.ErrBadSignature) {
		t.Fatalf("Got %v, want ErrBadSignature", err)
	}
}

func TestPackRefusesInvalid(t *testing.T) {
	raw, err := source.CompiledIn{}.Raw(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	raw.BootstrapURI = "coaps://bootstrap.example.com?aid=someone-else"

	img := filepath.Join(t.TempDir(), "flash.img")
	if _, err := packBlob(context.Background(), source.Fixture{Fields: raw}, nil, img, 0); err == nil {
		t.Fatal("Expected error")
	}
	if _, err := os.Stat(img); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("Blob written for invalid credentials")
	}
}

func TestSignerFor(t *testing.T) {
	s, closeSigner, err := signerFor(options{})
	if err != nil || s != nil {
		t.Fatalf("Got %v, %v, want no signer", s, err)
	}
	closeSigner()

	opts := options{conf: Config{Signer: SignerConfig{Seed: "seed.hex"}}, useTKey: true}
	if _, _, err := signerFor(opts); !errors.Is(err, ErrManySigners) {
		t.Fatalf("Got %v, want ErrManySigners", err)
	}

	if _, err := connectSigner(options{useTKey: true}); !errors.Is(err, ErrNoSigner) {
		t.Fatalf("Got %v, want ErrNoSigner", err)
	}
}

func TestKeyName(t *testing.T) {
	ss, err := signkey.NewSeedSigner(make([]byte, 32))
	if err != nil {
		t.Fatal(err)
	}
	defer ss.Close()

	name := keyName("seed", ss.Public())
	if !strings.HasPrefix(name, "seed-") || len(name) != len("seed-")+8 {
		t.Fatalf("Unexpected name %q", name)
	}
}

func writeTestFile(t *testing.T, fn string, b []byte) {
	t.Helper()

	if err := os.WriteFile(fn, b, 0o600); err != nil {
		t.Fatal(err)
	}
}
