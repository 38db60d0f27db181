// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package header

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tillitis/devcreds/internal/credential"
	"github.com/tillitis/devcreds/internal/data"
)

func TestParseEmbeddedDevCredentials(t *testing.T) {
	r, err := DevCredentials(data.DevCredentials)
	if err != nil {
		t.Fatal(err)
	}

	want := credential.Identity{
		EndpointName:    "016d3a6850395e26cf38992c03c00000",
		AccountID:       "016b4168981e32d9c8c3f8a300000000",
		Manufacturer:    "dev_manufacturer",
		ModelNumber:     "dev_model_num",
		SerialNumber:    "0",
		DeviceType:      "dev_device_type",
		HardwareVersion: "dev_hardware_version",
	}
	if diff := cmp.Diff(want, r.Identity); diff != "" {
		t.Fatalf("Identity mismatch (-want +got):\n%s", diff)
	}

	if r.BootstrapURI != "coaps://coap-systemtest.dev.mbed.com:5684?aid=016b4168981e32d9c8c3f8a300000000" {
		t.Fatalf("Unexpected URI %q", r.BootstrapURI)
	}

	for _, tt := range []struct {
		name     string
		b        []byte
		declared int
		want     int
	}{
		{"device certificate", r.DeviceCertificate, r.DeviceCertificateSize, 649},
		{"root CA", r.RootCACertificate, r.RootCACertificateSize, 566},
		{"private key", r.PrivateKey, r.PrivateKeySize, 150},
	} {
		if len(tt.b) != tt.want || tt.declared != tt.want {
			t.Fatalf("%s: %d bytes, declared %d, want %d", tt.name, len(tt.b), tt.declared, tt.want)
		}
		if tt.b[0] != 0x30 {
			t.Fatalf("%s doesn't start with a SEQUENCE", tt.name)
		}
	}

	if r.MemoryTotalKB != 0 {
		t.Fatalf("MemoryTotalKB = %d", r.MemoryTotalKB)
	}

	b, err := r.Bundle()
	if err != nil {
		t.Fatal(err)
	}
	b.Release()
}

func TestParse(t *testing.T) {
	const text = `
/* A header
 * with a block comment; and a semicolon */
#include <stdint.h>
  #define FOO 1

// line comment with "quote
const char X_URI[] = "coaps://h:5684?aid=a;b"; // trailing
const char X_ESC[] = "a\"b\\c";
const uint8_t X_BLOB[3] =
{ 0x01, 2,
  0xff, };
const uint32_t X_N = 0x10;
const uint32_t X_BLOB_SIZE = sizeof(X_BLOB);
const uint32_t X_URI_SIZE = sizeof( X_URI );
const char OTHER[] = "ignored";
`

	f, err := Parse(text, "X_")
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"BLOB", "BLOB_SIZE", "ESC", "N", "URI", "URI_SIZE"}, f.Names()); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}

	assertString(t, f, "URI", "coaps://h:5684?aid=a;b")
	assertString(t, f, "ESC", `a"b\c`)
	assertUint(t, f, "N", 16)
	assertUint(t, f, "BLOB_SIZE", 3)
	assertUint(t, f, "URI_SIZE", uint32(len("coaps://h:5684?aid=a;b")+1))

	b, err := f.Bytes("BLOB")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{1, 2, 0xff}, b); diff != "" {
		t.Fatalf("Bytes mismatch (-want +got):\n%s", diff)
	}

	if _, err := f.Uint32("URI"); err == nil {
		t.Fatal("Expected type error")
	}

	var me MissingError
	if _, err := f.String("OTHER"); !errors.As(err, &me) || me.Name != "X_OTHER" {
		t.Fatalf("Expected MissingError, got %v", err)
	}
}

func TestParseUpdateCert(t *testing.T) {
	const text = `
#ifdef MBED_CLOUD_CLIENT_USER_CONFIG_FILE
#include MBED_CLOUD_CLIENT_USER_CONFIG_FILE
#endif

#include <stdint.h>

#ifdef MBED_CLOUD_DEV_UPDATE_ID
const uint8_t arm_uc_vendor_id[] = {
    0x5f, 0x5c, 0x3a, 0x4b, 0x3c, 0x1b, 0x5e, 0x6d,
    0x80, 0x21, 0x2c, 0x0c, 0x7d, 0x8b, 0x55, 0x01
};
const uint16_t arm_uc_vendor_id_size = sizeof(arm_uc_vendor_id);

const uint8_t arm_uc_class_id[] = {
    0xa1, 0xb2, 0xc3, 0xd4, 0xe5, 0xf6, 0x07, 0x18,
    0x29, 0x3a, 0x4b, 0x5c, 0x6d, 0x7e, 0x8f, 0x90
};
const uint16_t arm_uc_class_id_size = sizeof(arm_uc_class_id);
#endif

#ifdef MBED_CLOUD_DEV_UPDATE_CERT
const uint8_t arm_uc_default_fingerprint[] = { 0x01, 0x02, 0x03, 0x04 };
const uint16_t arm_uc_default_fingerprint_size = sizeof(arm_uc_default_fingerprint);

const uint8_t arm_uc_default_certificate[] = { 0x30, 0x03, 0x02, 0x01, 0x00 };
const uint16_t arm_uc_default_certificate_size = sizeof(arm_uc_default_certificate);
#endif
`

	f, err := Parse(text, UpdateCertPrefix)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"class_id", "class_id_size",
		"default_certificate", "default_certificate_size",
		"default_fingerprint", "default_fingerprint_size",
		"vendor_id", "vendor_id_size",
	}
	if diff := cmp.Diff(want, f.Names()); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}

	assertUint(t, f, "vendor_id_size", 16)
	assertUint(t, f, "class_id_size", 16)
	assertUint(t, f, "default_certificate_size", 5)

	cert, err := f.Bytes("default_certificate")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x30, 0x03, 0x02, 0x01, 0x00}, cert); diff != "" {
		t.Fatalf("Bytes mismatch (-want +got):\n%s", diff)
	}

	// Developer credentials names aren't picked up.
	if _, err := Parse(text, DevCredentialsPrefix); err != nil {
		t.Fatal(err)
	}

	var pe ParseError
	if _, err := Parse("const uint16_t arm_uc_x = 70000;", UpdateCertPrefix); !errors.As(err, &pe) {
		t.Fatalf("Expected ParseError for out of range uint16_t, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
		msg  string
	}{
		{"unknown statement", "\nint x = 1;", 2, "unknown statement"},
		{"missing semicolon", `const char X_A[] = "a"`, 1, "missing ;"},
		{"unterminated string", `const char X_A[] = "a;`, 1, "unterminated string"},
		{"unterminated comment", "/* x", 1, "unterminated comment"},
		{"bad byte", "const uint8_t X_A[] = { 0x100 };", 1, "bad byte list"},
		{"wrong count", "const uint8_t X_A[2] = { 0x01 };", 1, "declared with 2"},
		{"bad number", "const uint32_t X_A = abc;", 1, "bad value"},
		{"defined twice", "const uint32_t X_A = 1;\nconst uint32_t X_A = 2;", 2, "defined twice"},
		{"sizeof unknown", "const uint32_t X_A = sizeof(X_B);", 1, "sizeof unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, "X_")

			var pe ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Expected ParseError, got %v", err)
			}
			if pe.Line != tt.line {
				t.Fatalf("Line = %d, want %d (%v)", pe.Line, tt.line, pe)
			}
			if !strings.Contains(pe.Msg, tt.msg) {
				t.Fatalf("Msg = %q, want %q", pe.Msg, tt.msg)
			}
		})
	}
}

func TestDevCredentialsMissing(t *testing.T) {
	text := strings.Replace(data.DevCredentials, "MBED_CLOUD_DEV_ACCOUNT_ID", "MBED_CLOUD_DEV_ACCOUNT", 1)

	_, err := DevCredentials(text)

	var me MissingError
	if !errors.As(err, &me) || me.Name != DevCredentialsPrefix+AccountID {
		t.Fatalf("Expected MissingError for account ID, got %v", err)
	}
}

func TestDevCredentialsOptional(t *testing.T) {
	text := strings.Replace(data.DevCredentials, "const char MBED_CLOUD_DEV_SERIAL_NUMBER[] = \"0\";", "", 1)

	r, err := DevCredentials(text)
	if err != nil {
		t.Fatal(err)
	}
	if r.Identity.SerialNumber != "" {
		t.Fatalf("SerialNumber = %q", r.Identity.SerialNumber)
	}
}

func assertString(t *testing.T, f *File, name string, want string) {
	t.Helper()

	got, err := f.String(name)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("%s = %q, want %q", name, got, want)
	}
}

func assertUint(t *testing.T, f *File, name string, want uint32) {
	t.Helper()

	got, err := f.Uint32(name)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("%s = %d, want %d", name, got, want)
	}
}
