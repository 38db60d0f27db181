// Copyright (C) 2023 - Tillitis AB
// SPDX-License-Identifier: GPL-2.0-only

//go:build linux || windows

package util

import (
	"fmt"

	"go.bug.st/serial/enumerator"
	"k8s.io/klog/v2"
)

const (
	tillitisUSBVID = "1207"
	tillitisUSBPID = "8887"
)

type SerialPort struct {
	DevPath      string
	SerialNumber string
}

// DetectSerialPort returns the serial port of the only TKey plugged
// in. When verbose, it tells the user what it found.
func DetectSerialPort(verbose bool) (string, error) {
	ports, err := TKeyPorts()
	if err != nil {
		return "", err
	}

	switch len(ports) {
	case 0:
		if verbose {
			klog.Errorf("No TKey serial ports detected. Pass the signing TKey device path using --port.")
		}
		return "", ErrNoDevice

	case 1:
		if verbose {
			klog.Infof("Auto-detected serial port %s", ports[0].DevPath)
		}
		return ports[0].DevPath, nil
	}

	if verbose {
		klog.Errorf("Detected %d TKey serial ports:", len(ports))
		for _, p := range ports {
			klog.Errorf("%s with serial number %s", p.DevPath, p.SerialNumber)
		}
		klog.Errorf("Please choose one of the above by using the --port flag.")
	}

	return "", ErrManyDevices
}

// TKeyPorts lists the USB serial ports with a TKey behind them.
func TKeyPorts() ([]SerialPort, error) {
	var ports []SerialPort

	portDetails, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("GetDetailedPortsList: %w", err)
	}

	for _, port := range portDetails {
		if port.IsUSB && port.VID == tillitisUSBVID && port.PID == tillitisUSBPID {
			ports = append(ports, SerialPort{port.Name, port.SerialNumber})
		}
	}

	return ports, nil
}
