// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package source

import (
	"context"
	"errors"

	"github.com/tillitis/devcreds/internal/credential"
)

// Fixture hands out copies of fields injected by a test. The fixture
// itself is never wiped.
type Fixture struct {
	Fields *credential.Raw
}

func (Fixture) Name() string {
	return "test fixture"
}

func (f Fixture) Raw(_ context.Context) (*credential.Raw, error) {
	if f.Fields == nil {
		return nil, errors.New("empty fixture")
	}

	r := *f.Fields
	r.DeviceCertificate = clone(f.Fields.DeviceCertificate)
	r.RootCACertificate = clone(f.Fields.RootCACertificate)
	r.PrivateKey = clone(f.Fields.PrivateKey)

	return &r, nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}

	return append([]byte(nil), b...)
}
