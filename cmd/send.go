// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"

	"github.com/Thermoquad/daikinir/pkg/daikin"
	"github.com/Thermoquad/daikinir/pkg/remote"
	"github.com/spf13/cobra"
)

var sendFormat string

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send the IR pulse train to a blaster or bridge",
	Long: `Encode the settings like 'encode' does, then send the pulse train over a
serial IR blaster (--port) or a WebSocket IR bridge (--url) instead of
writing a file.

Serial blasters receive the raw duration bytes; bridges receive a CBOR
message carrying the command frame and the pulse bytes. Use --format to
override.

Exit codes:
  0 - Sent
  1 - Invalid settings or connection error`,
	Args: cobra.NoArgs,
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	addSettingsFlags(sendCmd.Flags())
	sendCmd.Flags().StringVar(&sendFormat, "format", "", "Output format (text, raw, cbor)")
}

func runSend(cmd *cobra.Command, args []string) error {
	if !hasConnectionFlags() {
		return fmt.Errorf("either --port or --url must be specified")
	}

	overrides, err := overridesFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	// Reject bad settings before opening the connection
	r, err := remote.New(configPath, nil)
	if err != nil {
		return err
	}
	if _, err := r.Preview(overrides); err != nil {
		return err
	}

	sink, connInfo, closeSink, err := openSink("", sendFormat)
	if err != nil {
		return err
	}
	defer closeSink()

	r, err = remote.New(configPath, sink)
	if err != nil {
		return err
	}

	res, err := r.Apply(overrides)
	if err != nil {
		return err
	}

	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("%s\n", daikin.FormatSettings(res.Settings))
	fmt.Printf("Sent %d symbols (checksum 0x%02X)\n", len(res.Sequence), res.Frame[daikin.ChecksumIndex])

	return nil
}
