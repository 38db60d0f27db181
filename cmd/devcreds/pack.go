// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tillitis/devcreds/internal/blob"
	"github.com/tillitis/devcreds/internal/credential"
	"github.com/tillitis/devcreds/internal/secret"
	"github.com/tillitis/devcreds/internal/signkey"
	"github.com/tillitis/devcreds/internal/source"
)

func pack(opts options) int {
	if opts.outFile == "" {
		le.Printf("Please pass where to write the blob with --out.\n")
		return 2
	}

	src, err := sourceFor(opts)
	if err != nil {
		le.Printf("%v\n", err)
		return 1
	}

	signer, closeSigner, err := signerFor(opts)
	if err != nil {
		le.Printf("Couldn't set up signer: %v\n", err)
		return 1
	}
	defer closeSigner()

	n, err := packBlob(context.Background(), src, signer, opts.outFile, opts.conf.Source.Offset)
	if err != nil {
		le.Printf("%v\n", err)
		return 1
	}

	if signer == nil {
		le.Printf("Wrote unsigned blob of %d bytes to %s at offset %d\n", n, opts.outFile, opts.conf.Source.Offset)
	} else {
		pub := signer.Public()
		le.Printf("Wrote blob of %d bytes signed by %x to %s at offset %d\n",
			n, signkey.PubKey{Key: pub}.KeyHash(), opts.outFile, opts.conf.Source.Offset)
	}

	return 0
}

// packBlob validates what src holds, then writes it as a blob at off
// in the file fn, leaving the rest of the file alone.
func packBlob(ctx context.Context, src source.Source, signer blob.Signer, fn string, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset %d", off)
	}

	raw, err := src.Raw(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", src.Name(), err)
	}
	defer raw.Wipe()

	// Refuse to write anything a device couldn't load.
	if err := validate(raw); err != nil {
		return 0, fmt.Errorf("%s: %w", src.Name(), err)
	}

	// Declared sizes belong to the header format, blobs go by the
	// encoded lengths.
	raw.DeviceCertificateSize = 0
	raw.RootCACertificateSize = 0
	raw.PrivateKeySize = 0

	enc, err := blob.Encode(raw, signer)
	if err != nil {
		return 0, err
	}
	defer secret.Wipe(enc)

	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		return 0, IOError{path: fn, err: err}
	}

	if _, err := f.WriteAt(enc, off); err != nil {
		f.Close()
		return 0, IOError{path: fn, err: err}
	}

	if err := f.Close(); err != nil {
		return 0, IOError{path: fn, err: err}
	}

	return len(enc), nil
}

// validate builds a throwaway bundle from a copy of raw.
func validate(raw *credential.Raw) error {
	cp := *raw
	cp.PrivateKey = append([]byte(nil), raw.PrivateKey...)

	b, err := cp.Bundle()
	if err != nil {
		cp.Wipe()
		return err
	}
	b.Release()

	return nil
}
