// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package header

import (
	"errors"

	"github.com/tillitis/devcreds/internal/credential"
	"github.com/tillitis/devcreds/internal/secret"
)

// Names in a developer credentials header, without the prefix.
const (
	EndpointName          = "BOOTSTRAP_ENDPOINT_NAME"
	AccountID             = "ACCOUNT_ID"
	BootstrapServerURI    = "BOOTSTRAP_SERVER_URI"
	DeviceCertificate     = "BOOTSTRAP_DEVICE_CERTIFICATE"
	RootCACertificate     = "BOOTSTRAP_SERVER_ROOT_CA_CERTIFICATE"
	PrivateKey            = "BOOTSTRAP_DEVICE_PRIVATE_KEY"
	Manufacturer          = "MANUFACTURER"
	ModelNumber           = "MODEL_NUMBER"
	SerialNumber          = "SERIAL_NUMBER"
	DeviceType            = "DEVICE_TYPE"
	HardwareVersion       = "HARDWARE_VERSION"
	MemoryTotalKB         = "MEMORY_TOTAL_KB"
	DeviceCertificateSize = DeviceCertificate + "_SIZE"
	RootCACertificateSize = RootCACertificate + "_SIZE"
	PrivateKeySize        = PrivateKey + "_SIZE"
)

// DevCredentials parses a developer credentials header into the raw
// fields of a credential bundle. Nothing is validated beyond the
// header syntax, that's left to Raw.Bundle.
//
// Optional definitions (serial number, memory budget and the size
// constants) may be missing. The size constants become declared
// sizes, so they are checked against the arrays, not trusted.
func DevCredentials(text string) (*credential.Raw, error) {
	f, err := Parse(text, DevCredentialsPrefix)
	if err != nil {
		return nil, err
	}

	// The parsed file holds a copy of the key.
	defer func() {
		if key, ok := f.Lookup(PrivateKey); ok {
			secret.Wipe(key.Bytes)
		}
	}()

	var r credential.Raw

	for _, s := range []struct {
		name string
		dst  *string
	}{
		{EndpointName, &r.Identity.EndpointName},
		{AccountID, &r.Identity.AccountID},
		{BootstrapServerURI, &r.BootstrapURI},
		{Manufacturer, &r.Identity.Manufacturer},
		{ModelNumber, &r.Identity.ModelNumber},
		{DeviceType, &r.Identity.DeviceType},
		{HardwareVersion, &r.Identity.HardwareVersion},
	} {
		if *s.dst, err = f.String(s.name); err != nil {
			return nil, err
		}
	}

	if r.Identity.SerialNumber, err = f.String(SerialNumber); err != nil && !isMissing(err) {
		return nil, err
	}

	for _, b := range []struct {
		name string
		dst  *[]byte
	}{
		{DeviceCertificate, &r.DeviceCertificate},
		{RootCACertificate, &r.RootCACertificate},
		{PrivateKey, &r.PrivateKey},
	} {
		v, err := f.Bytes(b.name)
		if err != nil {
			return nil, err
		}
		*b.dst = append([]byte(nil), v...)
	}

	for _, n := range []struct {
		name string
		dst  *int
	}{
		{DeviceCertificateSize, &r.DeviceCertificateSize},
		{RootCACertificateSize, &r.RootCACertificateSize},
		{PrivateKeySize, &r.PrivateKeySize},
	} {
		v, err := f.Uint32(n.name)
		if err != nil && !isMissing(err) {
			return nil, err
		}
		*n.dst = int(v)
	}

	if r.MemoryTotalKB, err = f.Uint32(MemoryTotalKB); err != nil && !isMissing(err) {
		return nil, err
	}

	return &r, nil
}

func isMissing(err error) bool {
	var me MissingError
	return errors.As(err, &me)
}
