// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MsgIRTransmit is the bridge message type for a rendered transmission
const MsgIRTransmit = 0x40

// Bridge payload keys
const (
	BridgeKeyFrame  = 0
	BridgeKeyPulses = 1
)

// EncodeBridgeMessage creates the CBOR message sent to network IR bridges:
// [MsgIRTransmit, {0: command frame, 1: pulse bytes}]
func EncodeBridgeMessage(frame Frame, seq Sequence) ([]byte, error) {
	payload := map[int]interface{}{
		BridgeKeyFrame:  frame.Bytes(),
		BridgeKeyPulses: seq.Bytes(),
	}

	data, err := cbor.Marshal([]interface{}{uint64(MsgIRTransmit), payload})
	if err != nil {
		return nil, fmt.Errorf("failed to encode bridge message: %w", err)
	}

	return data, nil
}
