// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tillitis/devcreds/internal/blob"
	"github.com/tillitis/devcreds/internal/credential"
	"github.com/tillitis/devcreds/internal/signkey"
	"k8s.io/klog/v2"
)

// Flash is a credential blob in a flash partition. Device is read if
// set, otherwise the file or block device at Path.
//
// With Keys set the blob must be signed by one of them.
type Flash struct {
	Path   string
	Device io.ReaderAt
	Offset int64
	Keys   *signkey.Keys
}

func (f Flash) Name() string {
	if f.Device != nil && f.Path == "" {
		return fmt.Sprintf("flash at offset %d", f.Offset)
	}

	return fmt.Sprintf("flash %s at offset %d", f.Path, f.Offset)
}

func (f Flash) Raw(ctx context.Context) (*credential.Raw, error) {
	dev := f.Device

	if dev == nil {
		file, err := os.Open(f.Path)
		if err != nil {
			return nil, IOError{Path: f.Path, Err: err}
		}
		defer file.Close()
		dev = file
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := blob.Decode(dev, f.Offset, f.Keys)
	if err != nil {
		return nil, err
	}

	if b.Signed {
		klog.V(1).Infof("Credential blob signed by %s", b.SignedBy.Name)
	} else if f.Keys == nil {
		klog.Warningf("Credential blob signature not checked, no trusted keys given")
	}

	return &b.Raw, nil
}
