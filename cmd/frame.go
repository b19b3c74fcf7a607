// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"

	"github.com/Thermoquad/daikinir/pkg/daikin"
	"github.com/Thermoquad/daikinir/pkg/remote"
	"github.com/spf13/cobra"
)

var framePulses bool

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Show the command frame for the given settings",
	Long: `Build the command frame for the settings file plus any flag overrides and
print it with a field breakdown. Nothing is written or saved.`,
	Args: cobra.NoArgs,
	RunE: runFrame,
}

func init() {
	rootCmd.AddCommand(frameCmd)
	addSettingsFlags(frameCmd.Flags())
	frameCmd.Flags().BoolVar(&framePulses, "pulses", false, "Also print the pulse train")
}

func runFrame(cmd *cobra.Command, args []string) error {
	overrides, err := overridesFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	r, err := remote.New(configPath, nil)
	if err != nil {
		return err
	}

	res, err := r.Preview(overrides)
	if err != nil {
		return err
	}

	fixed := daikin.FixedFrames()
	fmt.Printf("Handshake 1: %s\n", daikin.FormatBytes(fixed[0][:]))
	fmt.Printf("Handshake 2: %s\n", daikin.FormatBytes(fixed[1][:]))
	fmt.Print(daikin.FormatCommand(res.Settings, res.Frame))

	if framePulses {
		fmt.Printf("\nPulses (%d symbols):\n%s\n", len(res.Sequence), res.Sequence.String())
	}

	return nil
}

