// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package daikin encodes air-conditioner settings into the Daikin remote
// control's infrared command format.
//
// A transmission is three frames: two constant handshake frames followed by
// a 17-byte command frame carrying the settings and an additive checksum.
// Every byte is sent LSB first as pulse symbols, each symbol being a
// quadruple of mark/space duration values understood by generic IR blasters.
package daikin

// Frame layout
const (
	FrameSize     = 17
	ChecksumIndex = FrameSize - 1
	FixedSize     = 8
)

// Command frame bytes that never change
const (
	header0     = 0x11
	header1     = 0xDA
	header2     = 0x27
	trailerByte = 0xC1

	// separatorBit sits between mode and timer mode in byte 5
	separatorBit = 0x08
)

// Temperature limits in °C
const (
	MinTemperature = 18
	MaxTemperature = 30
)

// Fan speed limits (0 is auto)
const (
	FanAuto = 0
	MinFan  = 1
	MaxFan  = 5
)

// Field bit patterns
const (
	modeCoolBits = 0x3
	modeHeatBits = 0x4

	timerNone = 0x0
	timerOn   = 0x1
	timerOff  = 0x2

	fanAutoBits = 0xB
	fanOffset   = 2

	swingOnBits  = 0xF
	swingOffBits = 0x0
)

// Timer bytes
const (
	delayIdle1   = 0x00
	delayIdle2   = 0x06
	delayIdle3   = 0x60
	offTimerTag  = 0x06
	minutesPerHr = 60
)

var handshakeFrames = [2][FixedSize]byte{
	{0x11, 0xDA, 0x27, 0x00, 0xC5, 0x00, 0x00, 0xD7},
	{0x11, 0xDA, 0x27, 0x00, 0x42, 0x00, 0x00, 0x54},
}

// FixedFrames returns copies of the two handshake frames sent ahead of
// every command frame.
func FixedFrames() [2][FixedSize]byte {
	return handshakeFrames
}

// Power is the unit's on/off state
type Power string

// Power values
const (
	PowerOn  Power = "on"
	PowerOff Power = "off"
)

// Swing is the louver swing state
type Swing string

// Swing values
const (
	SwingOn  Swing = "on"
	SwingOff Swing = "off"
)

// Mode is the operating mode
type Mode string

// Mode values
const (
	ModeCool Mode = "cool"
	ModeHeat Mode = "heat"

	// ModeCold is the spelling older settings files use for cooling.
	ModeCold Mode = "cold"
)

// Settings is the desired operating state of the unit.
type Settings struct {
	Power       Power `json:"power"`
	Fan         int   `json:"fan"`
	Swing       Swing `json:"swing"`
	Temperature int   `json:"temperature"`
	Mode        Mode  `json:"mode"`
	// Delay is the timer in hours: 0 disables it, a positive value switches
	// the unit on after that many hours, a negative value switches it off.
	Delay int `json:"delay"`
}

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() Settings {
	return Settings{
		Power:       PowerOn,
		Fan:         FanAuto,
		Swing:       SwingOn,
		Temperature: MaxTemperature,
		Mode:        ModeCool,
		Delay:       0,
	}
}
