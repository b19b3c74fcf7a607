// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

// Field encoders return the bit pattern for a single setting, right aligned
// in a uint8. They are independent of each other and hold no state.

// EncodeMode returns the 4-bit mode pattern.
func EncodeMode(mode Mode) (uint8, error) {
	switch mode {
	case ModeCool, ModeCold:
		return modeCoolBits, nil
	case ModeHeat:
		return modeHeatBits, nil
	default:
		return 0, newEncodeError(InvalidMode, "mode", mode)
	}
}

// EncodeTimerMode returns the 2-bit timer mode for a delay in hours.
func EncodeTimerMode(delay int) uint8 {
	switch {
	case delay > 0:
		return timerOn
	case delay < 0:
		return timerOff
	default:
		return timerNone
	}
}

// EncodePower returns the 1-bit power pattern.
func EncodePower(power Power) (uint8, error) {
	switch power {
	case PowerOn:
		return 1, nil
	case PowerOff:
		return 0, nil
	default:
		return 0, newEncodeError(InvalidPower, "power", power)
	}
}

// EncodeFan returns the 4-bit fan pattern. Auto is 0b1011, speeds 1-5 are
// sent as speed+2.
func EncodeFan(fan int) (uint8, error) {
	switch {
	case fan == FanAuto:
		return fanAutoBits, nil
	case fan >= MinFan && fan <= MaxFan:
		return uint8(fan + fanOffset), nil
	default:
		return 0, newEncodeError(InvalidFan, "fan", fan)
	}
}

// EncodeSwing returns the 4-bit swing pattern.
func EncodeSwing(swing Swing) (uint8, error) {
	switch swing {
	case SwingOn:
		return swingOnBits, nil
	case SwingOff:
		return swingOffBits, nil
	default:
		return 0, newEncodeError(InvalidSwing, "swing", swing)
	}
}

// EncodeTemperature returns the target temperature in half degrees.
func EncodeTemperature(temperature int) (uint8, error) {
	if temperature < MinTemperature || temperature > MaxTemperature {
		return 0, newEncodeError(InvalidTemperature, "temperature", temperature)
	}
	return uint8(temperature * 2), nil
}

// EncodeDelay returns the three timer bytes (frame bytes 10-12).
// It never fails; any delay maps to some timer value.
func EncodeDelay(delay int) [3]uint8 {
	return [3]uint8{EncodeDelay1(delay), EncodeDelay2(delay), EncodeDelay3(delay)}
}

// EncodeDelay1 returns the low byte of the on-timer in minutes. The off-timer
// leaves it zero.
func EncodeDelay1(delay int) uint8 {
	if delay > 0 {
		return uint8(delayMinutes(delay) & 0xFF)
	}
	return delayIdle1
}

// EncodeDelay2 returns the second timer byte.
func EncodeDelay2(delay int) uint8 {
	switch {
	case delay > 0:
		return uint8((delayMinutes(delay) >> 8) & 0xFF)
	case delay < 0:
		m := delayMinutes(delay)
		if m > 0xFF {
			return uint8(m & 0xFF)
		}
		// Off-timers up to 255 minutes carry the low nibble above the tag.
		return uint8(offTimerTag | ((m & 0x0F) << 4))
	default:
		return delayIdle2
	}
}

// EncodeDelay3 returns the third timer byte.
func EncodeDelay3(delay int) uint8 {
	if delay >= 0 {
		return delayIdle3
	}
	m := delayMinutes(delay)
	if m > 0xFF {
		return uint8((m >> 8) & 0xFF)
	}
	return uint8(m >> 4)
}

// delayMinutes returns the timer magnitude in minutes
func delayMinutes(delay int) int {
	if delay < 0 {
		delay = -delay
	}
	return delay * minutesPerHr
}
