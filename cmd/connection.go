// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/Thermoquad/daikinir/pkg/remote"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"
	"golang.org/x/term"
)

// Connection is an output channel to an IR blaster or bridge
type Connection interface {
	io.Writer
	io.Closer
}

// SerialConnection wraps a serial port
type SerialConnection struct {
	port serial.Port
}

func (s *SerialConnection) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

func (s *SerialConnection) Close() error {
	return s.port.Close()
}

// WebSocketConnection sends each write as one binary message
type WebSocketConnection struct {
	conn *websocket.Conn
}

func (w *WebSocketConnection) Write(p []byte) (int, error) {
	err := w.conn.WriteMessage(websocket.BinaryMessage, p)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *WebSocketConnection) Close() error {
	// Best effort close handshake before dropping the socket
	_ = w.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return w.conn.Close()
}

// Bridge dial limits
const (
	bridgeHandshakeTimeout = 10 * time.Second
	bridgeDialTimeout      = 15 * time.Second
)

// OpenSerialConnection opens the serial port of an IR blaster. The blaster
// only ever receives, so the port is configured 8N1 and never read.
func OpenSerialConnection(portName string, baudRate int) (Connection, error) {
	port, err := serial.Open(portName, &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open IR blaster on %s: %w", portName, err)
	}

	log.WithFields(log.Fields{"port": portName, "baud": baudRate}).Debug("IR blaster connected")
	return &SerialConnection{port: port}, nil
}

// bridgeURL checks that wsURL names a websocket IR bridge
func bridgeURL(wsURL string) (*url.URL, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid IR bridge URL: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return nil, fmt.Errorf("unsupported IR bridge URL scheme %q (use ws:// or wss://)", u.Scheme)
	}
	return u, nil
}

// OpenWebSocketConnection dials a websocket IR bridge, sending HTTP Basic
// credentials when both username and password are set.
func OpenWebSocketConnection(wsURL, username, password string, skipSSLVerify bool) (Connection, error) {
	u, err := bridgeURL(wsURL)
	if err != nil {
		return nil, err
	}

	dialer := websocket.Dialer{HandshakeTimeout: bridgeHandshakeTimeout}
	if u.Scheme == "wss" {
		dialer.TLSClientConfig = &tls.Config{InsecureSkipVerify: skipSSLVerify}
	}

	headers := http.Header{}
	if username != "" && password != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
		headers.Set("Authorization", "Basic "+credentials)
	}

	ctx, cancel := context.WithTimeout(context.Background(), bridgeDialTimeout)
	defer cancel()

	conn, resp, err := dialer.DialContext(ctx, u.String(), headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("IR bridge %s refused connection (HTTP %d): %w", u.Host, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("IR bridge %s unreachable: %w", u.Host, err)
	}

	log.WithField("bridge", u.Host).Debug("IR bridge connected")
	return &WebSocketConnection{conn: conn}, nil
}

// GetPassword returns the IR bridge password from DAIKIN_PASSWORD, or
// prompts for it on the terminal.
func GetPassword() (string, error) {
	if pw := os.Getenv("DAIKIN_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "IR bridge password: ")
	defer fmt.Fprintln(os.Stderr)

	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err == nil {
		return string(passwordBytes), nil
	}

	// Not a terminal, e.g. piped input
	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read IR bridge password: %w", err)
	}
	return strings.TrimSpace(password), nil
}

// OpenConnection opens either a serial or WebSocket connection based on
// flags. The returned format is what the other end expects by default.
func OpenConnection() (Connection, string, remote.Format, error) {
	if wsURL != "" {
		password := ""
		if wsUsername != "" {
			var err error
			password, err = GetPassword()
			if err != nil {
				return nil, "", "", err
			}
		}

		conn, err := OpenWebSocketConnection(wsURL, wsUsername, password, wsNoSSLVerify)
		if err != nil {
			return nil, "", "", err
		}

		return conn, fmt.Sprintf("WebSocket: %s", wsURL), remote.FormatCBOR, nil
	}

	if portName != "" {
		conn, err := OpenSerialConnection(portName, baudRate)
		if err != nil {
			return nil, "", "", err
		}

		return conn, fmt.Sprintf("Serial: %s @ %d baud", portName, baudRate), remote.FormatRaw, nil
	}

	return nil, "", "", fmt.Errorf("either --port or --url must be specified")
}

// hasConnectionFlags reports whether a serial port or bridge URL was given
func hasConnectionFlags() bool {
	return wsURL != "" || portName != ""
}

// openSink returns a connection sink when --port or --url is set, and a file
// sink otherwise. An empty format keeps the sink's default. The returned
// close function is never nil.
func openSink(outputPath, format string) (remote.Sink, string, func(), error) {
	if hasConnectionFlags() {
		conn, connInfo, defaultFormat, err := OpenConnection()
		if err != nil {
			return nil, "", nil, err
		}

		f := defaultFormat
		if format != "" {
			if f, err = remote.ParseFormat(format); err != nil {
				conn.Close()
				return nil, "", nil, err
			}
		}

		closeFn := func() {
			if err := conn.Close(); err != nil {
				log.WithError(err).Debug("Connection close failed")
			}
		}
		return &remote.WriterSink{W: conn, Format: f}, connInfo, closeFn, nil
	}

	f := remote.FormatText
	if format != "" {
		var err error
		if f, err = remote.ParseFormat(format); err != nil {
			return nil, "", nil, err
		}
	}

	sink := &remote.FileSink{Path: outputPath, Format: f}
	return sink, sink.String(), func() {}, nil
}
