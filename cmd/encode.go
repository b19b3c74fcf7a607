// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"

	"github.com/Thermoquad/daikinir/pkg/daikin"
	"github.com/Thermoquad/daikinir/pkg/remote"
	"github.com/spf13/cobra"
)

var (
	encodeOutput string
	encodeFormat string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Write the IR pulse file for the given settings",
	Long: `Encode the settings file plus any flag overrides into an IR pulse train
and write it to a file for replay by an IR blaster.

Only the flags given on the command line override the settings file. On
success the merged settings are saved back to the settings file. Invalid
settings abort without writing anything.

Examples:
  daikinir encode -p on -m cool -t 26
  daikinir encode -d -2             # switch off in two hours
  daikinir encode --format raw -o daikin.bin`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	addSettingsFlags(encodeCmd.Flags())
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", remote.DefaultOutputPath, "Pulse file to write")
	encodeCmd.Flags().StringVar(&encodeFormat, "format", string(remote.FormatText), "Output format (text, raw, cbor)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	overrides, err := overridesFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	format, err := remote.ParseFormat(encodeFormat)
	if err != nil {
		return err
	}

	r, err := remote.New(configPath, &remote.FileSink{Path: encodeOutput, Format: format})
	if err != nil {
		return err
	}

	res, err := r.Apply(overrides)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", daikin.FormatSettings(res.Settings))
	fmt.Printf("Frame: %s\n", daikin.FormatFrame(res.Frame))
	fmt.Printf("Wrote %d symbols to %s\n", len(res.Sequence), encodeOutput)

	return nil
}
