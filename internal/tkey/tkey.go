// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

// Package tkey signs credential blobs with a Tillitis TKey.
//
// Connect to a TKey in firmware mode:
//
//	tk, err := tkey.New("", false)
//
// Load a signer device app from file, then sign:
//
//	err = tk.LoadSigner(bin)
//	sig, err := tk.Sign(digest)
package tkey

import (
	"fmt"
	"log"
	"os"

	"github.com/tillitis/devcreds/internal/util"
	"github.com/tillitis/tkeyclient"
	"github.com/tillitis/tkeysign"
	sumcrypto "sigsum.org/sigsum-go/pkg/crypto"
)

// Largest device app the TKey can hold.
const maxAppSize = 100 * 1024

var le = log.New(os.Stderr, "", 0)

type TKey struct {
	client  *tkeyclient.TillitisKey
	udi     UDI
	signer  *tkeysign.Signer
	pubKey  sumcrypto.PublicKey
	verbose bool
}

// New connects to a TKey in firmware mode on devPath, or on the first
// TKey found if devPath is empty.
func New(devPath string, verbose bool) (*TKey, error) {
	var err error

	if !verbose {
		tkeyclient.SilenceLogging()
	}

	if devPath == "" {
		devPath, err = util.DetectSerialPort(verbose)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
		}
	}

	tk := tkeyclient.New()
	if verbose {
		le.Printf("Connecting to device on serial port %s ...\n", devPath)
	}
	if err := tk.Connect(devPath); err != nil {
		return nil, ConnError{devPath: devPath, err: err}
	}

	nameVer, err := tk.GetNameVersion()
	if err != nil {
		tk.Close()
		le.Printf("Either the device path (%s) is wrong, or the TKey is not in firmware-mode (already running an app).\n", devPath)
		le.Printf("Please unplug the TKey and plug it in again to put it in firmware-mode.\n")
		return nil, ErrNotFirmware
	}
	if verbose {
		le.Printf("Firmware name0:'%s' name1:'%s' version:%d\n",
			nameVer.Name0, nameVer.Name1, nameVer.Version)
	}

	tkUDI, err := tk.GetUDI()
	if err != nil {
		tk.Close()
		return nil, fmt.Errorf("GetUDI failed: %w", err)
	}

	var udi UDI
	if err = udi.fromRawLE(tkUDI.RawBytes()); err != nil {
		tk.Close()
		return nil, err
	}

	return &TKey{
		client:  tk,
		udi:     udi,
		verbose: verbose,
	}, nil
}

func (t *TKey) UDI() UDI {
	return t.udi
}

func (t *TKey) Close() error {
	if t.signer != nil {
		return t.signer.Close()
	}

	return t.client.Close()
}

// LoadSigner loads a signer device app onto the TKey, with no USS,
// and fetches its public key.
func (t *TKey) LoadSigner(bin []byte) error {
	if len(bin) == 0 || len(bin) > maxAppSize {
		return fmt.Errorf("device app has bad size %d", len(bin))
	}

	if err := t.client.LoadApp(bin, []byte{}); err != nil {
		return fmt.Errorf("couldn't load app: %w", err)
	}
	if t.verbose {
		le.Printf("App loaded.\n")
	}

	signer := tkeysign.New(t.client)
	t.signer = &signer

	nameVer, err := t.signer.GetAppNameVersion()
	if err != nil {
		return fmt.Errorf("GetAppNameVersion: %w", err)
	}
	if t.verbose {
		le.Printf("App name0:'%s' name1:'%s' version:%d\n",
			nameVer.Name0, nameVer.Name1, nameVer.Version)
	}

	pub, err := t.signer.GetPubkey()
	if err != nil {
		return fmt.Errorf("GetPubkey failed: %w", err)
	}
	if len(pub) != sumcrypto.PublicKeySize {
		return fmt.Errorf("public key has length %d, expected %d", len(pub), sumcrypto.PublicKeySize)
	}
	copy(t.pubKey[:], pub)

	return nil
}

// Public returns the signer app's public key. Zero before LoadSigner.
func (t *TKey) Public() sumcrypto.PublicKey {
	return t.pubKey
}

// Sign asks the running signer app to sign message.
func (t *TKey) Sign(message []byte) ([]byte, error) {
	if t.signer == nil {
		return nil, ErrNoSigner
	}

	signature, err := t.signer.Sign(message)
	if err != nil {
		return nil, fmt.Errorf("Sign failed: %w", err)
	}

	return signature, nil
}
