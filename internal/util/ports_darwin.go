// Copyright (C) 2023 - Tillitis AB
// SPDX-License-Identifier: GPL-2.0-only

//go:build darwin

package util

import "k8s.io/klog/v2"

// DetectSerialPort can't enumerate USB devices on macOS, so it only
// tells the user how to find the TKey.
func DetectSerialPort(verbose bool) (string, error) {
	klog.Errorf(`Serial port detection is not available on MacOS.
Please find the serial port device path using:
    ls -l /dev/cu.*
Then run like:
    devcreds pack --tkey --port /dev/cu.usbmodemN ...`)

	return "", ErrNoDevice
}
