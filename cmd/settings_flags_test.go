// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"testing"

	"github.com/Thermoquad/daikinir/pkg/daikin"
	"github.com/spf13/pflag"
)

func parseSettingsFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addSettingsFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("Parse(%v) failed: %v", args, err)
	}
	return flags
}

func TestOverridesFromFlags_NoneSet(t *testing.T) {
	o, err := overridesFromFlags(parseSettingsFlags(t))
	if err != nil {
		t.Fatalf("overridesFromFlags failed: %v", err)
	}
	if !o.IsEmpty() {
		t.Errorf("expected no overrides, got %+v", o)
	}
}

func TestOverridesFromFlags_ShortFlags(t *testing.T) {
	flags := parseSettingsFlags(t, "-p", "off", "-f", "3", "-s", "off", "-t", "22", "-m", "heat", "-d", "-2")

	o, err := overridesFromFlags(flags)
	if err != nil {
		t.Fatalf("overridesFromFlags failed: %v", err)
	}

	if o.Power == nil || *o.Power != daikin.PowerOff {
		t.Errorf("Power = %v, want off", o.Power)
	}
	if o.Fan == nil || *o.Fan != 3 {
		t.Errorf("Fan = %v, want 3", o.Fan)
	}
	if o.Swing == nil || *o.Swing != daikin.SwingOff {
		t.Errorf("Swing = %v, want off", o.Swing)
	}
	if o.Temperature == nil || *o.Temperature != 22 {
		t.Errorf("Temperature = %v, want 22", o.Temperature)
	}
	if o.Mode == nil || *o.Mode != daikin.ModeHeat {
		t.Errorf("Mode = %v, want heat", o.Mode)
	}
	if o.Delay == nil || *o.Delay != -2 {
		t.Errorf("Delay = %v, want -2", o.Delay)
	}
}

func TestOverridesFromFlags_ExplicitZero(t *testing.T) {
	o, err := overridesFromFlags(parseSettingsFlags(t, "--fan", "0", "--delay=0"))
	if err != nil {
		t.Fatalf("overridesFromFlags failed: %v", err)
	}

	if o.Fan == nil || *o.Fan != 0 {
		t.Errorf("explicit --fan 0 should override, got %v", o.Fan)
	}
	if o.Delay == nil || *o.Delay != 0 {
		t.Errorf("explicit --delay=0 should override, got %v", o.Delay)
	}
	if o.Temperature != nil {
		t.Error("temperature was not given and should not override")
	}
}

func TestOverridesFromFlags_PassesInvalidValuesThrough(t *testing.T) {
	o, err := overridesFromFlags(parseSettingsFlags(t, "--mode", "warm"))
	if err != nil {
		t.Fatalf("overridesFromFlags failed: %v", err)
	}
	if o.Mode == nil || *o.Mode != "warm" {
		t.Errorf("Mode = %v, want warm", o.Mode)
	}
}
