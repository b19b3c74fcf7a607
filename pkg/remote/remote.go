// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package remote keeps the current air-conditioner settings and turns
// setting changes into transmissions.
package remote

import (
	"fmt"
	"sync"

	"github.com/Thermoquad/daikinir/pkg/config"
	"github.com/Thermoquad/daikinir/pkg/daikin"
	log "github.com/sirupsen/logrus"
)

// Result is one encoded transmission
type Result struct {
	Settings daikin.Settings
	Frame    daikin.Frame
	Sequence daikin.Sequence
}

// Remote applies setting changes: merge, encode, emit, then persist.
// It is safe for concurrent use.
type Remote struct {
	mu         sync.Mutex
	configPath string
	settings   daikin.Settings
	sink       Sink
	log        *log.Entry
}

// New loads the settings file at configPath. An empty configPath keeps
// settings in memory only.
func New(configPath string, sink Sink) (*Remote, error) {
	settings := daikin.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}

	return &Remote{
		configPath: configPath,
		settings:   settings,
		sink:       sink,
		log:        log.WithField("config", configPath),
	}, nil
}

// Settings returns the last applied settings
func (r *Remote) Settings() daikin.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

// Preview encodes the current settings with o applied without emitting or
// saving anything.
func (r *Remote) Preview(o config.Overrides) (Result, error) {
	return encode(config.Merge(r.Settings(), o))
}

// Apply merges o into the current settings, emits the transmission and saves
// the result. Nothing changes if encoding or emitting fails. Once the
// transmission is out, a failed save is logged and the applied settings are
// still returned.
func (r *Remote) Apply(o config.Overrides) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := encode(config.Merge(r.settings, o))
	if err != nil {
		r.log.WithError(err).Warn("Rejected settings")
		return Result{}, err
	}

	if r.sink != nil {
		if err := r.sink.Emit(res.Frame, res.Sequence); err != nil {
			return Result{}, err
		}
	}

	r.settings = res.Settings
	r.log.WithFields(log.Fields{
		"settings": daikin.FormatSettings(res.Settings),
		"checksum": fmt.Sprintf("0x%02X", res.Frame[daikin.ChecksumIndex]),
	}).Info("Applied settings")

	if r.configPath != "" {
		if err := config.Save(r.configPath, res.Settings); err != nil {
			r.log.WithError(err).Warn("Settings sent but not saved")
		}
	}

	return res, nil
}

func encode(s daikin.Settings) (Result, error) {
	frame, err := daikin.BuildCommand(s)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Settings: s,
		Frame:    frame,
		Sequence: daikin.RenderFrame(frame),
	}, nil
}
