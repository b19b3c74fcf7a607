// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"strings"
	"testing"
)

func TestFormatFrame(t *testing.T) {
	f, err := BuildCommand(Settings{Power: PowerOn, Swing: SwingOn, Temperature: 25, Mode: ModeCool})
	if err != nil {
		t.Fatalf("BuildCommand failed: %v", err)
	}

	want := "11 DA 27 00 00 39 32 00 BF 00 00 06 60 00 00 C1 63"
	if got := FormatFrame(f); got != want {
		t.Errorf("FormatFrame = %q, want %q", got, want)
	}
}

func TestFormatSettings(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		want string
	}{
		{
			name: "defaults",
			s:    DefaultSettings(),
			want: "power=on mode=cool temp=30°C fan=auto swing=on timer=none",
		},
		{
			name: "off timer",
			s:    Settings{Power: PowerOff, Fan: 2, Swing: SwingOff, Temperature: 20, Mode: ModeHeat, Delay: -3},
			want: "power=off mode=heat temp=20°C fan=2 swing=off timer=off in 3h",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSettings(tt.s); got != tt.want {
				t.Errorf("FormatSettings = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCommand_ReportsChecksum(t *testing.T) {
	s := DefaultSettings()
	f, err := BuildCommand(s)
	if err != nil {
		t.Fatalf("BuildCommand failed: %v", err)
	}

	if out := FormatCommand(s, f); !strings.Contains(out, "(OK)") {
		t.Errorf("expected OK checksum in output:\n%s", out)
	}

	f[ChecksumIndex]++
	if out := FormatCommand(s, f); !strings.Contains(out, "(MISMATCH)") {
		t.Errorf("expected MISMATCH checksum in output:\n%s", out)
	}
}
