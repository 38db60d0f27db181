// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package credential

import (
	"net/url"
	"strings"
)

// Identity is what the device tells the bootstrap server about itself.
type Identity struct {
	EndpointName    string
	AccountID       string
	Manufacturer    string
	ModelNumber     string
	SerialNumber    string // optional, often a placeholder like "0"
	DeviceType      string
	HardwareVersion string
}

// Validate checks that every mandatory field is set. The first empty
// field is reported.
func (id Identity) Validate() error {
	for _, f := range []struct {
		name, value string
	}{
		{FieldEndpointName, id.EndpointName},
		{FieldAccountID, id.AccountID},
		{FieldManufacturer, id.Manufacturer},
		{FieldModelNumber, id.ModelNumber},
		{FieldDeviceType, id.DeviceType},
		{FieldHardwareVersion, id.HardwareVersion},
	} {
		if strings.TrimSpace(f.value) == "" {
			return invalid(f.name, "empty")
		}
	}

	return nil
}

// Schemes the bootstrap transport accepts. Bootstrap always runs over
// a secured channel, plain coap is refused.
var recognizedSchemes = map[string]bool{
	"coaps":     true,
	"coaps+tcp": true,
}

const accountIDParam = "aid"

// BootstrapURI is a parsed and checked bootstrap server URI, like
// "coaps://bootstrap.example.com:5684?aid=<account id>".
type BootstrapURI struct {
	raw string
	u   *url.URL
}

func ParseBootstrapURI(s string) (BootstrapURI, error) {
	if s == "" {
		return BootstrapURI{}, invalid(FieldBootstrapURI, "empty")
	}

	u, err := url.Parse(s)
	if err != nil {
		return BootstrapURI{}, invalid(FieldBootstrapURI, "%v", err)
	}

	if u.Scheme == "" {
		return BootstrapURI{}, invalid(FieldBootstrapURI, "missing scheme")
	}
	if !recognizedSchemes[strings.ToLower(u.Scheme)] {
		return BootstrapURI{}, invalid(FieldBootstrapURI, "unsupported scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return BootstrapURI{}, invalid(FieldBootstrapURI, "missing host")
	}

	aids := u.Query()[accountIDParam]
	if len(aids) == 0 || aids[0] == "" {
		return BootstrapURI{}, invalid(FieldURIAccountID, "missing %s parameter", accountIDParam)
	}
	if len(aids) > 1 {
		return BootstrapURI{}, invalid(FieldURIAccountID, "%s parameter given %d times", accountIDParam, len(aids))
	}

	return BootstrapURI{raw: s, u: u}, nil
}

func (b BootstrapURI) String() string {
	return b.raw
}

func (b BootstrapURI) Scheme() string {
	if b.u == nil {
		return ""
	}
	return b.u.Scheme
}

// Host returns host and port, as in the URI.
func (b BootstrapURI) Host() string {
	if b.u == nil {
		return ""
	}
	return b.u.Host
}

// AccountID is the value of the aid query parameter.
func (b BootstrapURI) AccountID() string {
	if b.u == nil {
		return ""
	}
	return b.u.Query().Get(accountIDParam)
}
