// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"fmt"
	"strings"
)

// Symbol is one pulse timing symbol: two mark/space pairs.
type Symbol uint8

// Pulse symbols
const (
	Bit0 Symbol = iota
	Bit1
	Leader
	Stop1 // ends the lead-in
	Stop2 // ends a handshake frame
	Stop3 // ends the command frame
)

// Idle symbols sent before the first frame
const leadInBits = 5

// SequenceLength is the number of symbols in every rendered transmission:
// lead-in, two handshake frames and the command frame.
const SequenceLength = leadInBits + 1 +
	2*(1+FixedSize*8+1) +
	(1 + FrameSize*8 + 1)

// Durations returns the mark, space, mark, space quadruple for the symbol.
func (s Symbol) Durations() [4]byte {
	switch s {
	case Bit0:
		return [4]byte{0x00, 0x12, 0x00, 0x12}
	case Bit1:
		return [4]byte{0x00, 0x12, 0x00, 0x31}
	case Leader:
		return [4]byte{0x00, 0x86, 0x00, 0x41}
	case Stop1:
		return [4]byte{0x00, 0x12, 0x03, 0xc1}
	case Stop2:
		return [4]byte{0x00, 0x13, 0x05, 0x22}
	case Stop3:
		return [4]byte{0x00, 0x12, 0x1e, 0x0d}
	default:
		return [4]byte{}
	}
}

// Text returns the symbol as IR blaster text, e.g. "0x00,0x12,0x00,0x12,".
// Stop3 ends a transmission and has no trailing separator.
func (s Symbol) Text() string {
	d := s.Durations()
	text := fmt.Sprintf("0x%02x,0x%02x,0x%02x,0x%02x", d[0], d[1], d[2], d[3])
	if s == Stop3 {
		return text
	}
	return text + ","
}

// String returns the symbol name
func (s Symbol) String() string {
	switch s {
	case Bit0:
		return "BIT_0"
	case Bit1:
		return "BIT_1"
	case Leader:
		return "LEADER"
	case Stop1:
		return "STOP_1"
	case Stop2:
		return "STOP_2"
	case Stop3:
		return "STOP_3"
	default:
		return "UNKNOWN"
	}
}

// Sequence is an ordered pulse train
type Sequence []Symbol

// String returns the concatenated text of every symbol
func (seq Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(seq) * 20)
	for _, s := range seq {
		sb.WriteString(s.Text())
	}
	return sb.String()
}

// Bytes returns the duration quadruples back to back
func (seq Sequence) Bytes() []byte {
	out := make([]byte, 0, len(seq)*4)
	for _, s := range seq {
		d := s.Durations()
		out = append(out, d[:]...)
	}
	return out
}

// EncodeByte returns the 8 bit symbols of b, least significant bit first.
func EncodeByte(b byte) []Symbol {
	return appendByte(make([]Symbol, 0, 8), b)
}

func appendByte(seq []Symbol, b byte) []Symbol {
	for i := 0; i < 8; i++ {
		if b&0x01 == 1 {
			seq = append(seq, Bit1)
		} else {
			seq = append(seq, Bit0)
		}
		b >>= 1
	}
	return seq
}

func appendFrame(seq []Symbol, frame []byte, stop Symbol) []Symbol {
	seq = append(seq, Leader)
	for _, b := range frame {
		seq = appendByte(seq, b)
	}
	return append(seq, stop)
}

// Render builds the command frame for s and returns the full transmission.
func Render(s Settings) (Sequence, error) {
	frame, err := BuildCommand(s)
	if err != nil {
		return nil, err
	}
	return RenderFrame(frame), nil
}

// RenderFrame returns the full transmission for an already built frame.
func RenderFrame(frame Frame) Sequence {
	seq := make([]Symbol, 0, SequenceLength)

	for i := 0; i < leadInBits; i++ {
		seq = append(seq, Bit0)
	}
	seq = append(seq, Stop1)

	for _, fixed := range handshakeFrames {
		seq = appendFrame(seq, fixed[:], Stop2)
	}

	seq = appendFrame(seq, frame[:], Stop3)

	return seq
}
