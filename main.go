// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad
//
// daikinir - Daikin air-conditioner IR command encoder
//
// A CLI tool that turns air-conditioner settings into the pulse train a
// Daikin remote would send, for replay through a generic IR blaster.

package main

import (
	"os"

	"github.com/Thermoquad/daikinir/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
