// SPDX-FileCopyrightText: 2025 Tillitis AB <tillitis.se>
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

type SourceConfig struct {
	Header   string `yaml:"header"`
	Manifest string `yaml:"manifest"`
	Flash    string `yaml:"flash"`
	Offset   int64  `yaml:"offset"`
}

type SignerConfig struct {
	Seed string `yaml:"seed"`
	App  string `yaml:"app"`
	Port string `yaml:"port"`
}

type Config struct {
	Source SourceConfig `yaml:"source"`
	Signer SignerConfig `yaml:"signer"`

	// Trusted provisioning keys file. Empty means the compiled in
	// keys.
	Keys string `yaml:"keys"`
}

// loadConfig reads fn. A missing file is fine unless the user asked
// for it explicitly.
func loadConfig(fn string, explicit bool) (Config, error) {
	var conf Config

	rawConfig, err := os.ReadFile(fn)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return conf, nil
		}
		return conf, IOError{path: fn, err: err}
	}

	err = yaml.UnmarshalStrict(rawConfig, &conf)
	if err != nil {
		return conf, ParseError{what: "config", err: err}
	}

	return conf, nil
}
