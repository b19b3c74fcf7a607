// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"strings"
	"testing"

	"github.com/Thermoquad/daikinir/pkg/daikin"
	"github.com/Thermoquad/daikinir/pkg/remote"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestRemoteModel(t *testing.T) remoteModel {
	t.Helper()
	r, err := remote.New("", nil)
	if err != nil {
		t.Fatalf("remote.New failed: %v", err)
	}
	return initialRemoteModel(r, "test")
}

func pressKey(m remoteModel, k tea.KeyType) remoteModel {
	updated, _ := m.Update(tea.KeyMsg{Type: k})
	return updated.(remoteModel)
}

func TestAdjustField(t *testing.T) {
	base := daikin.DefaultSettings()

	tests := []struct {
		name  string
		field int
		dir   int
		check func(s daikin.Settings) bool
	}{
		{"power toggles", fieldPower, 1, func(s daikin.Settings) bool { return s.Power == daikin.PowerOff }},
		{"mode toggles", fieldMode, -1, func(s daikin.Settings) bool { return s.Mode == daikin.ModeHeat }},
		{"temperature stays at max", fieldTemperature, 1, func(s daikin.Settings) bool { return s.Temperature == daikin.MaxTemperature }},
		{"temperature decreases", fieldTemperature, -1, func(s daikin.Settings) bool { return s.Temperature == daikin.MaxTemperature-1 }},
		{"fan stays at auto", fieldFan, -1, func(s daikin.Settings) bool { return s.Fan == daikin.FanAuto }},
		{"fan increases", fieldFan, 1, func(s daikin.Settings) bool { return s.Fan == 1 }},
		{"swing toggles", fieldSwing, 1, func(s daikin.Settings) bool { return s.Swing == daikin.SwingOff }},
		{"off timer", fieldDelay, -1, func(s daikin.Settings) bool { return s.Delay == -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjustField(base, tt.field, tt.dir)
			if !tt.check(got) {
				t.Errorf("adjustField(%s, %d) = %+v", fieldNames[tt.field], tt.dir, got)
			}
		})
	}
}

func TestRemoteModel_Navigation(t *testing.T) {
	m := newTestRemoteModel(t)

	m = pressKey(m, tea.KeyUp)
	if m.cursor != fieldDelay {
		t.Errorf("cursor = %d, want wrap to %d", m.cursor, fieldDelay)
	}

	m = pressKey(m, tea.KeyDown)
	m = pressKey(m, tea.KeyDown)
	if m.cursor != fieldMode {
		t.Errorf("cursor = %d, want %d", m.cursor, fieldMode)
	}

	m = pressKey(m, tea.KeyRight)
	if m.pending.Mode != daikin.ModeHeat {
		t.Errorf("Mode = %s, want heat", m.pending.Mode)
	}
	if m.remote.Settings().Mode != daikin.ModeCool {
		t.Error("editing should not apply until enter")
	}
	if !strings.Contains(m.View(), "unsent changes") {
		t.Error("view should flag unsent changes")
	}
}

func TestRemoteModel_SendApplies(t *testing.T) {
	m := newTestRemoteModel(t)
	m.cursor = fieldTemperature
	m = pressKey(m, tea.KeyLeft)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(remoteModel)
	if cmd == nil {
		t.Fatal("enter should return an apply command")
	}

	updated, _ = m.Update(cmd())
	m = updated.(remoteModel)

	if m.statusErr {
		t.Fatalf("unexpected error status: %s", m.status)
	}
	if m.remote.Settings().Temperature != daikin.MaxTemperature-1 {
		t.Errorf("applied Temperature = %d, want %d", m.remote.Settings().Temperature, daikin.MaxTemperature-1)
	}
	if !strings.Contains(m.status, "Sent 276 symbols") {
		t.Errorf("status = %q", m.status)
	}
}

func TestRemoteModel_Quit(t *testing.T) {
	m := newTestRemoteModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(remoteModel).quitting {
		t.Error("ctrl+c should quit")
	}
	if cmd == nil {
		t.Error("ctrl+c should return tea.Quit")
	}
}
