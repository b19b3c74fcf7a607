// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"fmt"
	"strings"
)

// FormatFrame returns a hex dump of the frame, e.g.
// "11 DA 27 00 00 39 32 00 BF 00 00 06 60 00 00 C1 63"
func FormatFrame(f Frame) string {
	return FormatBytes(f[:])
}

// FormatBytes returns data as space separated hex
func FormatBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// FormatDelay returns the timer in human-readable form
func FormatDelay(delay int) string {
	switch {
	case delay > 0:
		return fmt.Sprintf("on in %dh", delay)
	case delay < 0:
		return fmt.Sprintf("off in %dh", -delay)
	default:
		return "none"
	}
}

// FormatFan returns the fan speed in human-readable form
func FormatFan(fan int) string {
	if fan == FanAuto {
		return "auto"
	}
	return fmt.Sprintf("%d", fan)
}

// FormatSettings returns a one-line summary of s
func FormatSettings(s Settings) string {
	return fmt.Sprintf("power=%s mode=%s temp=%d°C fan=%s swing=%s timer=%s",
		s.Power, s.Mode, s.Temperature, FormatFan(s.Fan), s.Swing, FormatDelay(s.Delay))
}

// FormatCommand returns an annotated breakdown of a command frame
func FormatCommand(s Settings, f Frame) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Settings: %s\n", FormatSettings(s)))
	sb.WriteString(fmt.Sprintf("Frame:    %s\n", FormatFrame(f)))
	sb.WriteString(fmt.Sprintf("  [5]  mode/timer/power: %08b\n", f[5]))
	sb.WriteString(fmt.Sprintf("  [6]  temperature:      0x%02X (%d half-degrees)\n", f[6], f[6]))
	sb.WriteString(fmt.Sprintf("  [8]  fan/swing:        %08b\n", f[8]))
	sb.WriteString(fmt.Sprintf("  [10] timer:            %02X %02X %02X\n", f[10], f[11], f[12]))

	status := "OK"
	if !f.Valid() {
		status = "MISMATCH"
	}
	sb.WriteString(fmt.Sprintf("  [16] checksum:         0x%02X (%s)\n", f[ChecksumIndex], status))

	return sb.String()
}
