// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which setting failed to encode
type ErrorKind int

const (
	InvalidMode ErrorKind = iota + 1
	InvalidPower
	InvalidFan
	InvalidSwing
	InvalidTemperature
)

// Sentinel errors, one per kind. Match with errors.Is.
var (
	ErrInvalidMode        = errors.New("invalid mode")
	ErrInvalidPower       = errors.New("invalid power")
	ErrInvalidFan         = errors.New("invalid fan")
	ErrInvalidSwing       = errors.New("invalid swing")
	ErrInvalidTemperature = errors.New("invalid temperature")
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case InvalidMode:
		return "InvalidMode"
	case InvalidPower:
		return "InvalidPower"
	case InvalidFan:
		return "InvalidFan"
	case InvalidSwing:
		return "InvalidSwing"
	case InvalidTemperature:
		return "InvalidTemperature"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidMode:
		return ErrInvalidMode
	case InvalidPower:
		return ErrInvalidPower
	case InvalidFan:
		return ErrInvalidFan
	case InvalidSwing:
		return ErrInvalidSwing
	case InvalidTemperature:
		return ErrInvalidTemperature
	default:
		return nil
	}
}

// EncodeError reports a setting outside its valid range.
type EncodeError struct {
	Kind  ErrorKind
	Field string
	Value interface{}
}

// Error implements the error interface
func (e *EncodeError) Error() string {
	return fmt.Sprintf("invalid value for %s: '%v'", e.Field, e.Value)
}

// Unwrap returns the sentinel error for the kind
func (e *EncodeError) Unwrap() error {
	return e.Kind.sentinel()
}

func newEncodeError(kind ErrorKind, field string, value interface{}) *EncodeError {
	return &EncodeError{Kind: kind, Field: field, Value: value}
}
