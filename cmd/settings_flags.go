// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"github.com/Thermoquad/daikinir/pkg/config"
	"github.com/Thermoquad/daikinir/pkg/daikin"
	"github.com/spf13/pflag"
)

// addSettingsFlags registers the per-run setting overrides
func addSettingsFlags(flags *pflag.FlagSet) {
	flags.StringP("power", "p", "", "on|off")
	flags.IntP("fan", "f", 0, "0..5 (0: auto)")
	flags.StringP("swing", "s", "", "on|off")
	flags.IntP("temperature", "t", 0, "18..30")
	flags.StringP("mode", "m", "", "cool|heat")
	flags.IntP("delay", "d", 0, "timer in hours (<0: off timer, >0: on timer)")
}

// overridesFromFlags returns the settings the user set explicitly.
// Flags left at their defaults do not override the settings file.
func overridesFromFlags(flags *pflag.FlagSet) (config.Overrides, error) {
	var o config.Overrides

	if flags.Changed("power") {
		v, err := flags.GetString("power")
		if err != nil {
			return o, err
		}
		power := daikin.Power(v)
		o.Power = &power
	}
	if flags.Changed("fan") {
		v, err := flags.GetInt("fan")
		if err != nil {
			return o, err
		}
		o.Fan = &v
	}
	if flags.Changed("swing") {
		v, err := flags.GetString("swing")
		if err != nil {
			return o, err
		}
		swing := daikin.Swing(v)
		o.Swing = &swing
	}
	if flags.Changed("temperature") {
		v, err := flags.GetInt("temperature")
		if err != nil {
			return o, err
		}
		o.Temperature = &v
	}
	if flags.Changed("mode") {
		v, err := flags.GetString("mode")
		if err != nil {
			return o, err
		}
		mode := daikin.Mode(v)
		o.Mode = &mode
	}
	if flags.Changed("delay") {
		v, err := flags.GetInt("delay")
		if err != nil {
			return o, err
		}
		o.Delay = &v
	}

	return o, nil
}
