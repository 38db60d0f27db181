// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package source

import (
	"bytes"
	"context"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tillitis/devcreds/internal/credential"
	"github.com/tillitis/devcreds/internal/secret"
	"gopkg.in/yaml.v2"
)

// ManifestFile is the YAML layout of a credentials manifest. Asset
// paths are relative to the manifest and may hold DER or PEM.
type ManifestFile struct {
	EndpointName    string `yaml:"endpoint_name"`
	AccountID       string `yaml:"account_id"`
	Manufacturer    string `yaml:"manufacturer"`
	ModelNumber     string `yaml:"model_number"`
	SerialNumber    string `yaml:"serial_number"`
	DeviceType      string `yaml:"device_type"`
	HardwareVersion string `yaml:"hardware_version"`
	BootstrapURI    string `yaml:"bootstrap_uri"`
	MemoryTotalKB   uint32 `yaml:"memory_total_kb"`

	DeviceCertificate string `yaml:"device_certificate"`
	RootCACertificate string `yaml:"root_ca_certificate"`
	PrivateKey        string `yaml:"private_key"`
}

// Manifest is a YAML file naming the identity strings and the files
// holding the certificates and key.
type Manifest struct {
	Path string
}

func (m Manifest) Name() string {
	return m.Path
}

func (m Manifest) Raw(ctx context.Context) (*credential.Raw, error) {
	text, err := os.ReadFile(m.Path)
	if err != nil {
		return nil, IOError{Path: m.Path, Err: err}
	}

	var mf ManifestFile
	if err := yaml.UnmarshalStrict(text, &mf); err != nil {
		return nil, ParseError{What: "manifest", Err: err}
	}

	r := credential.Raw{
		Identity: credential.Identity{
			EndpointName:    mf.EndpointName,
			AccountID:       mf.AccountID,
			Manufacturer:    mf.Manufacturer,
			ModelNumber:     mf.ModelNumber,
			SerialNumber:    mf.SerialNumber,
			DeviceType:      mf.DeviceType,
			HardwareVersion: mf.HardwareVersion,
		},
		BootstrapURI:  mf.BootstrapURI,
		MemoryTotalKB: mf.MemoryTotalKB,
	}

	dir := filepath.Dir(m.Path)

	for _, a := range []struct {
		path     string
		dst      *[]byte
		pemTypes []string
	}{
		{mf.DeviceCertificate, &r.DeviceCertificate, []string{"CERTIFICATE"}},
		{mf.RootCACertificate, &r.RootCACertificate, []string{"CERTIFICATE"}},
		{mf.PrivateKey, &r.PrivateKey, []string{"PRIVATE KEY", "EC PRIVATE KEY", "RSA PRIVATE KEY"}},
	} {
		if err := ctx.Err(); err != nil {
			r.Wipe()
			return nil, err
		}

		if a.path == "" {
			// Left for validation to report.
			continue
		}

		p := a.path
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}

		b, err := readAsset(p, a.pemTypes)
		if err != nil {
			r.Wipe()
			return nil, err
		}
		*a.dst = b
	}

	return &r, nil
}

// readAsset reads a DER file, or the first PEM block of one of the
// wanted types.
func readAsset(path string, pemTypes []string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, IOError{Path: path, Err: err}
	}

	if !bytes.HasPrefix(bytes.TrimSpace(b), []byte("-----BEGIN ")) {
		return b, nil
	}
	defer secret.Wipe(b)

	rest := b
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil, ParseError{What: path, Err: fmt.Errorf("no PEM block of type %q", pemTypes)}
		}

		for _, t := range pemTypes {
			if block.Type != t {
				continue
			}
			if t == "RSA PRIVATE KEY" {
				return pkcs1ToPKCS8(path, block.Bytes)
			}
			return block.Bytes, nil
		}
		secret.Wipe(block.Bytes)
	}
}

// pkcs1ToPKCS8 rewraps a PKCS#1 RSA key, which carries no algorithm
// identifier, as PKCS#8.
func pkcs1ToPKCS8(path string, der []byte) ([]byte, error) {
	defer secret.Wipe(der)

	key, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, ParseError{What: path, Err: err}
	}

	out, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, ParseError{What: path, Err: err}
	}

	return out, nil
}
