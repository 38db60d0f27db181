// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package source fetches device credentials from wherever they are
// kept and installs them in a store.
//
// All I/O happens in the Source. Load only swaps the store once the
// fetched credentials have been decoded and validated in full, so a
// broken source never disturbs the credentials already loaded.
package source

import (
	"context"
	"fmt"

	"github.com/tillitis/devcreds/internal/credential"
	"github.com/tillitis/devcreds/internal/store"
	"k8s.io/klog/v2"
)

// Source produces the raw fields of a credential bundle. Each call
// returns fresh slices the caller may wipe.
type Source interface {
	// Name describes the source for humans.
	Name() string
	Raw(ctx context.Context) (*credential.Raw, error)
}

// Bundle fetches from src and builds a bundle without loading it. The
// caller owns the returned bundle and must Release it.
func Bundle(ctx context.Context, src Source) (*credential.Bundle, error) {
	raw, err := src.Raw(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}
	defer raw.Wipe()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := raw.Bundle()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}

	return b, nil
}

// Load fetches from src, validates, and installs the result in st.
// On error st is left as it was.
func Load(ctx context.Context, src Source, st *store.Store) error {
	b, err := Bundle(ctx, src)
	if err != nil {
		klog.V(1).Infof("Loading credentials from %s failed: %v", src.Name(), err)
		return err
	}
	defer b.Release()

	if err := st.Load(b); err != nil {
		return err
	}

	klog.Infof("Loaded credentials for %s from %s", b.EndpointName(), src.Name())

	return nil
}
