// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package credential

import "fmt"

// Field names used in ValidationError, in the order Build checks them.
const (
	FieldEndpointName      = "endpoint_name"
	FieldAccountID         = "account_id"
	FieldManufacturer      = "manufacturer"
	FieldModelNumber       = "model_number"
	FieldDeviceType        = "device_type"
	FieldHardwareVersion   = "hardware_version"
	FieldBootstrapURI      = "bootstrap_uri"
	FieldURIAccountID      = "bootstrap_uri.aid"
	FieldDeviceCertificate = "device_certificate"
	FieldRootCACertificate = "root_ca_certificate"
	FieldPrivateKey        = "private_key"
)

// ValidationError names the first field of a bundle that failed
// validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, a ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, a...)}
}

// DecodeFailure is returned by Raw.Bundle when an asset couldn't be
// decoded. It unwraps to the der error, so errors.Is(err,
// der.ErrMalformedAsset) works.
type DecodeFailure struct {
	Field string
	Err   error
}

func (e *DecodeFailure) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *DecodeFailure) Unwrap() error {
	return e.Err
}
