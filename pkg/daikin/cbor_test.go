// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestEncodeBridgeMessage(t *testing.T) {
	s := DefaultSettings()
	frame, err := BuildCommand(s)
	if err != nil {
		t.Fatalf("BuildCommand failed: %v", err)
	}
	seq := RenderFrame(frame)

	data, err := EncodeBridgeMessage(frame, seq)
	if err != nil {
		t.Fatalf("EncodeBridgeMessage failed: %v", err)
	}

	var msg struct {
		_       struct{} `cbor:",toarray"`
		Type    uint8
		Payload map[int][]byte
	}
	if err := cbor.Unmarshal(data, &msg); err != nil {
		t.Fatalf("failed to decode CBOR: %v", err)
	}

	if msg.Type != MsgIRTransmit {
		t.Errorf("type = 0x%02X, want 0x%02X", msg.Type, MsgIRTransmit)
	}
	if string(msg.Payload[BridgeKeyFrame]) != string(frame.Bytes()) {
		t.Errorf("frame = % X, want % X", msg.Payload[BridgeKeyFrame], frame.Bytes())
	}
	if len(msg.Payload[BridgeKeyPulses]) != SequenceLength*4 {
		t.Errorf("pulse bytes = %d, want %d", len(msg.Payload[BridgeKeyPulses]), SequenceLength*4)
	}
}
