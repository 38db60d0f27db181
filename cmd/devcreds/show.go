// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tillitis/devcreds/internal/der"
	"github.com/tillitis/devcreds/internal/provision"
	"github.com/tillitis/devcreds/internal/source"
	"github.com/tillitis/devcreds/internal/store"
)

// loadStore loads the configured credentials into a new store. The
// store is cleared, zeroing the key, if we are interrupted.
func loadStore(ctx context.Context, opts options) (*store.Store, func(), error) {
	src, err := sourceFor(opts)
	if err != nil {
		return nil, nil, err
	}

	st := store.New()
	ctx, cancel := context.WithCancel(ctx)

	signalCh := handleSignals(func() {
		cancel()
		st.Clear()
		os.Exit(1)
	}, os.Interrupt, syscall.SIGTERM)

	done := func() {
		signal.Stop(signalCh)
		cancel()
		st.Clear()
	}

	if err := source.Load(ctx, src, st); err != nil {
		done()
		return nil, nil, err
	}

	return st, done, nil
}

func show(opts options) int {
	st, done, err := loadStore(context.Background(), opts)
	if err != nil {
		le.Printf("Couldn't load credentials: %v\n", err)
		return 1
	}
	defer done()

	snap, err := provision.Begin(st)
	if err != nil {
		le.Printf("%v\n", err)
		return 1
	}
	defer snap.Close()

	if err := printSnapshot(os.Stdout, snap, time.Now()); err != nil {
		le.Printf("%v\n", err)
		return 1
	}

	return 0
}

func check(opts options) int {
	st, done, err := loadStore(context.Background(), opts)
	if err != nil {
		le.Printf("Credentials not valid: %v\n", err)
		return 1
	}
	defer done()

	snap, err := provision.Begin(st)
	if err != nil {
		le.Printf("%v\n", err)
		return 1
	}
	defer snap.Close()

	// Also make sure crypto/tls can use them as they are.
	if _, err := snap.TLSCertificate(); err != nil {
		le.Printf("Credentials not usable for TLS: %v\n", err)
		return 1
	}
	if _, err := snap.RootCAs(); err != nil {
		le.Printf("Root CA not usable: %v\n", err)
		return 1
	}

	le.Printf("Credentials for %s OK\n", snap.EndpointName())

	return 0
}

// printSnapshot writes everything but the key material.
func printSnapshot(w io.Writer, snap *provision.Snapshot, now time.Time) error {
	id := snap.Identity()
	uri := snap.BootstrapURI()
	key := snap.PrivateKey()

	fmt.Fprintf(w, "Endpoint name:     %s\n", id.EndpointName)
	fmt.Fprintf(w, "Account ID:        %s\n", id.AccountID)
	fmt.Fprintf(w, "Manufacturer:      %s\n", id.Manufacturer)
	fmt.Fprintf(w, "Model number:      %s\n", id.ModelNumber)
	if id.SerialNumber != "" {
		fmt.Fprintf(w, "Serial number:     %s\n", id.SerialNumber)
	}
	fmt.Fprintf(w, "Device type:       %s\n", id.DeviceType)
	fmt.Fprintf(w, "Hardware version:  %s\n", id.HardwareVersion)
	fmt.Fprintf(w, "Bootstrap server:  %s (%s)\n", uri.Host(), uri.Scheme())
	if kb := snap.MemoryBudgetKB(); kb != 0 {
		fmt.Fprintf(w, "Memory budget:     %d KiB\n", kb)
	}
	fmt.Fprintf(w, "Generation:        %d\n", snap.Generation())

	for _, c := range []struct {
		name  string
		asset der.Asset
	}{
		{"Device certificate", snap.DeviceCertificate()},
		{"Root CA", snap.RootCACertificate()},
	} {
		cert, err := c.asset.Certificate()
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}

		expiry := ""
		if now.After(cert.NotAfter) {
			expiry = " EXPIRED"
		}

		fmt.Fprintf(w, "\n%s:\n", c.name)
		fmt.Fprintf(w, "  Size:        %d bytes\n", c.asset.Size())
		fmt.Fprintf(w, "  SHA-256:     %s\n", c.asset.Fingerprint())
		fmt.Fprintf(w, "  Subject:     %s\n", cert.Subject)
		fmt.Fprintf(w, "  Issuer:      %s\n", cert.Issuer)
		fmt.Fprintf(w, "  Valid until: %s%s\n", cert.NotAfter.UTC().Format(time.RFC3339), expiry)
	}

	fmt.Fprintf(w, "\nPrivate key:\n")
	fmt.Fprintf(w, "  Size:        %d bytes\n", key.Size())
	fmt.Fprintf(w, "  Algorithm:   %s\n", key.Algorithm())

	return nil
}
