// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Thermoquad/daikinir/pkg/daikin"
	"github.com/Thermoquad/daikinir/pkg/remote"
	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *remote.Remote) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	sink := &remote.FileSink{Path: filepath.Join(dir, "daikin.txt"), Format: remote.FormatText}
	r, err := remote.New(filepath.Join(dir, "daikin.toml"), sink)
	if err != nil {
		t.Fatalf("remote.New failed: %v", err)
	}
	return newRouter(r), r
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestServe_GetSettings(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/settings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got daikin.Settings
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got != daikin.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", got)
	}
}

func TestServe_PutSettings(t *testing.T) {
	router, r := newTestRouter(t)

	w := doRequest(router, http.MethodPut, "/api/settings", `{"temperature": 25, "fan": 0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp applyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Settings.Temperature != 25 {
		t.Errorf("Temperature = %d, want 25", resp.Settings.Temperature)
	}
	if resp.Symbols != daikin.SequenceLength {
		t.Errorf("Symbols = %d, want %d", resp.Symbols, daikin.SequenceLength)
	}
	if r.Settings().Temperature != 25 {
		t.Error("remote settings not updated")
	}
}

func TestServe_PutInvalidSettings(t *testing.T) {
	router, r := newTestRouter(t)

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantKind  string
		wantField string
	}{
		{"bad mode", `{"mode": "warm"}`, http.StatusUnprocessableEntity, "InvalidMode", "mode"},
		{"bad fan", `{"fan": 6}`, http.StatusUnprocessableEntity, "InvalidFan", "fan"},
		{"bad temperature", `{"temperature": 17}`, http.StatusUnprocessableEntity, "InvalidTemperature", "temperature"},
		{"bad json", `{"fan": `, http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPut, "/api/settings", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}

			var resp errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if resp.Kind != tt.wantKind || resp.Field != tt.wantField {
				t.Errorf("kind/field = %s/%s, want %s/%s", resp.Kind, resp.Field, tt.wantKind, tt.wantField)
			}
		})
	}

	if r.Settings() != daikin.DefaultSettings() {
		t.Error("rejected requests should not change settings")
	}
}

func TestServe_FrameAndPulses(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/frame", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var frame frameResponse
	if err := json.Unmarshal(w.Body.Bytes(), &frame); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !strings.HasPrefix(frame.Frame, "11 DA 27 00 00") {
		t.Errorf("frame = %q, want header prefix", frame.Frame)
	}

	w = doRequest(router, http.MethodGet, "/api/pulses", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.HasSuffix(w.Body.String(), "0x00,0x12,0x1e,0x0d") {
		t.Error("pulse text should end with the final stop marker")
	}
}
