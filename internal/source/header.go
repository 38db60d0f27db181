// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package source

import (
	"context"
	"os"

	"github.com/tillitis/devcreds/internal/credential"
	"github.com/tillitis/devcreds/internal/data"
	"github.com/tillitis/devcreds/internal/header"
)

// CompiledIn is the developer credentials header built into the
// binary.
type CompiledIn struct{}

func (CompiledIn) Name() string {
	return "compiled-in developer credentials"
}

func (CompiledIn) Raw(_ context.Context) (*credential.Raw, error) {
	r, err := header.DevCredentials(data.DevCredentials)
	if err != nil {
		return nil, ParseError{What: "developer credentials header", Err: err}
	}

	return r, nil
}

// Header is a developer credentials header file, as downloaded from
// the cloud portal.
type Header struct {
	Path string
}

func (h Header) Name() string {
	return h.Path
}

func (h Header) Raw(_ context.Context) (*credential.Raw, error) {
	text, err := os.ReadFile(h.Path)
	if err != nil {
		return nil, IOError{Path: h.Path, Err: err}
	}

	r, err := header.DevCredentials(string(text))
	if err != nil {
		return nil, ParseError{What: "developer credentials header", Err: err}
	}

	return r, nil
}
