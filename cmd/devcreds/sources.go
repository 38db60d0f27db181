// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/tillitis/devcreds/internal/blob"
	"github.com/tillitis/devcreds/internal/signkey"
	"github.com/tillitis/devcreds/internal/source"
	"github.com/tillitis/devcreds/internal/tkey"
)

// trustedKeys returns the keys a flash blob must be signed with. nil
// if signatures aren't checked.
func trustedKeys(opts options) (*signkey.Keys, error) {
	if opts.noVerify {
		return nil, nil
	}

	var keys signkey.Keys
	var err error

	if opts.conf.Keys != "" {
		keys, err = signkey.FromFile(opts.conf.Keys)
	} else {
		keys, err = signkey.FromEmbedded()
	}
	if err != nil {
		return nil, err
	}

	return &keys, nil
}

// sourceFor picks the credential source the config names, or the
// compiled in developer credentials if it names none.
func sourceFor(opts options) (source.Source, error) {
	sc := opts.conf.Source

	n := 0
	for _, s := range []string{sc.Header, sc.Manifest, sc.Flash} {
		if s != "" {
			n++
		}
	}
	if n > 1 {
		return nil, ErrManySources
	}

	switch {
	case sc.Header != "":
		return source.Header{Path: sc.Header}, nil

	case sc.Manifest != "":
		return source.Manifest{Path: sc.Manifest}, nil

	case sc.Flash != "":
		keys, err := trustedKeys(opts)
		if err != nil {
			return nil, err
		}
		return source.Flash{Path: sc.Flash, Offset: sc.Offset, Keys: keys}, nil
	}

	return source.CompiledIn{}, nil
}

// signerFor sets up the signer for pack. Returns a nil signer if none
// is configured.
func signerFor(opts options) (blob.Signer, func(), error) {
	seed := opts.conf.Signer.Seed

	if seed != "" && opts.useTKey {
		return nil, nil, ErrManySigners
	}

	switch {
	case seed != "":
		s, err := signkey.ReadSeedFile(seed)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case opts.useTKey:
		tk, err := connectSigner(opts)
		if err != nil {
			return nil, nil, err
		}
		return tk, func() { _ = tk.Close() }, nil
	}

	return nil, func() {}, nil
}

// connectSigner loads the signer app onto a TKey.
func connectSigner(opts options) (*tkey.TKey, error) {
	if opts.conf.Signer.App == "" {
		return nil, fmt.Errorf("%w: pass the signer app with --app", ErrNoSigner)
	}

	bin, err := os.ReadFile(opts.conf.Signer.App)
	if err != nil {
		return nil, IOError{path: opts.conf.Signer.App, err: err}
	}

	tk, err := tkey.New(opts.conf.Signer.Port, opts.verbose)
	if err != nil {
		return nil, err
	}

	if err := tk.LoadSigner(bin); err != nil {
		_ = tk.Close()
		return nil, err
	}

	return tk, nil
}

func handleSignals(action func(), sig ...os.Signal) chan<- os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sig...)
	go func() {
		for {
			<-ch
			action()
		}
	}()
	return ch
}
