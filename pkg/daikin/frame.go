// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

// Frame is a complete command frame, checksum included.
type Frame [FrameSize]byte

// BuildCommand packs settings into a command frame.
//
// Layout:
//
//	0-4   11 DA 27 00 00
//	5     mode(4) | 1 | timer mode(2) | power(1)
//	6     temperature * 2
//	7     00
//	8     fan(4) | swing(4)
//	9     00
//	10-12 timer bytes
//	13-14 00 00
//	15    C1
//	16    checksum of bytes 0-15
//
// The first invalid setting aborts the build and its *EncodeError is returned.
func BuildCommand(s Settings) (Frame, error) {
	var f Frame

	mode, err := EncodeMode(s.Mode)
	if err != nil {
		return Frame{}, err
	}
	power, err := EncodePower(s.Power)
	if err != nil {
		return Frame{}, err
	}
	temperature, err := EncodeTemperature(s.Temperature)
	if err != nil {
		return Frame{}, err
	}
	fan, err := EncodeFan(s.Fan)
	if err != nil {
		return Frame{}, err
	}
	swing, err := EncodeSwing(s.Swing)
	if err != nil {
		return Frame{}, err
	}
	timer := EncodeTimerMode(s.Delay)
	delay := EncodeDelay(s.Delay)

	f[0] = header0
	f[1] = header1
	f[2] = header2
	f[5] = mode<<4 | separatorBit | timer<<1 | power
	f[6] = temperature
	f[8] = fan<<4 | swing
	f[10] = delay[0]
	f[11] = delay[1]
	f[12] = delay[2]
	f[15] = trailerByte
	f[ChecksumIndex] = Checksum(f[:ChecksumIndex])

	return f, nil
}

// Checksum returns the sum of data modulo 256
func Checksum(data []byte) uint8 {
	var sum uint8
	for _, b := range data {
		sum += b
	}
	return sum
}

// Valid reports whether the checksum byte matches the frame contents
func (f Frame) Valid() bool {
	return f[ChecksumIndex] == Checksum(f[:ChecksumIndex])
}

// Bytes returns the frame as a slice
func (f Frame) Bytes() []byte {
	b := make([]byte, FrameSize)
	copy(b, f[:])
	return b
}
