// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package remote

import (
	"fmt"
	"io"
	"os"

	"github.com/Thermoquad/daikinir/pkg/daikin"
)

// DefaultOutputPath is where the pulse file is written by default
const DefaultOutputPath = "daikin.txt"

// Format selects how a transmission is serialized
type Format string

const (
	// FormatText is the comma separated hex text most IR blasters import
	FormatText Format = "text"
	// FormatRaw is the duration quadruples as bytes
	FormatRaw Format = "raw"
	// FormatCBOR is the network bridge message
	FormatCBOR Format = "cbor"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatRaw, FormatCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %s (use text, raw or cbor)", name)
	}
}

// Marshal serializes a transmission in the given format
func Marshal(format Format, frame daikin.Frame, seq daikin.Sequence) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(seq.String()), nil
	case FormatRaw:
		return seq.Bytes(), nil
	case FormatCBOR:
		return daikin.EncodeBridgeMessage(frame, seq)
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// Sink receives rendered transmissions
type Sink interface {
	Emit(frame daikin.Frame, seq daikin.Sequence) error
}

// FileSink replaces a file with each transmission
type FileSink struct {
	Path   string
	Format Format
}

// Emit implements Sink
func (s *FileSink) Emit(frame daikin.Frame, seq daikin.Sequence) error {
	data, err := Marshal(s.Format, frame, seq)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Path, err)
	}
	return nil
}

// String describes the sink
func (s *FileSink) String() string {
	return fmt.Sprintf("File: %s (%s)", s.Path, s.Format)
}

// WriterSink writes each transmission to a stream such as a serial port
type WriterSink struct {
	W      io.Writer
	Format Format
}

// Emit implements Sink
func (s *WriterSink) Emit(frame daikin.Frame, seq daikin.Sequence) error {
	data, err := Marshal(s.Format, frame, seq)
	if err != nil {
		return err
	}
	if _, err := s.W.Write(data); err != nil {
		return fmt.Errorf("failed to send transmission: %w", err)
	}
	return nil
}
