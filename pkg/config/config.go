// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package config loads and saves remote settings and merges overrides on top
// of them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Thermoquad/daikinir/pkg/daikin"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the settings file used when none is given
const DefaultPath = "daikin.toml"

// Overrides holds optional settings. A nil field leaves the base value alone.
type Overrides struct {
	Power       *daikin.Power `toml:"power,omitempty" json:"power,omitempty"`
	Fan         *int          `toml:"fan,omitempty" json:"fan,omitempty"`
	Swing       *daikin.Swing `toml:"swing,omitempty" json:"swing,omitempty"`
	Temperature *int          `toml:"temperature,omitempty" json:"temperature,omitempty"`
	Mode        *daikin.Mode  `toml:"mode,omitempty" json:"mode,omitempty"`
	Delay       *int          `toml:"delay,omitempty" json:"delay,omitempty"`
}

// document is the on-disk layout
type document struct {
	Default Overrides `toml:"default"`
}

// Merge returns base with every present override applied.
func Merge(base daikin.Settings, o Overrides) daikin.Settings {
	if o.Power != nil {
		base.Power = *o.Power
	}
	if o.Fan != nil {
		base.Fan = *o.Fan
	}
	if o.Swing != nil {
		base.Swing = *o.Swing
	}
	if o.Temperature != nil {
		base.Temperature = *o.Temperature
	}
	if o.Mode != nil {
		base.Mode = *o.Mode
	}
	if o.Delay != nil {
		base.Delay = *o.Delay
	}
	return base
}

// FromSettings returns overrides with every field set from s
func FromSettings(s daikin.Settings) Overrides {
	return Overrides{
		Power:       &s.Power,
		Fan:         &s.Fan,
		Swing:       &s.Swing,
		Temperature: &s.Temperature,
		Mode:        &s.Mode,
		Delay:       &s.Delay,
	}
}

// IsEmpty reports whether no field is set
func (o Overrides) IsEmpty() bool {
	return o == Overrides{}
}

// Load reads settings from path. Fields missing from the file, or a missing
// file, fall back to daikin.DefaultSettings.
func Load(path string) (daikin.Settings, error) {
	settings := daikin.DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return settings, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	return Merge(settings, doc.Default), nil
}

// Save writes s to path, replacing any previous contents.
func Save(path string, s daikin.Settings) error {
	data, err := toml.Marshal(document{Default: FromSettings(s)})
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}
