// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"strings"

	"github.com/Thermoquad/daikinir/pkg/config"
	"github.com/Thermoquad/daikinir/pkg/daikin"
	"github.com/Thermoquad/daikinir/pkg/remote"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	remoteOutput string
	remoteFormat string
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Interactive remote control",
	Long: `Edit the settings in a terminal UI and send them with enter.

Output goes to --port or --url when given, otherwise to --output.`,
	Args: cobra.NoArgs,
	RunE: runRemote,
}

func init() {
	rootCmd.AddCommand(remoteCmd)
	remoteCmd.Flags().StringVarP(&remoteOutput, "output", "o", remote.DefaultOutputPath, "Pulse file to write")
	remoteCmd.Flags().StringVar(&remoteFormat, "format", "", "Output format (text, raw, cbor)")
}

func runRemote(cmd *cobra.Command, args []string) error {
	sink, sinkInfo, closeSink, err := openSink(remoteOutput, remoteFormat)
	if err != nil {
		return err
	}
	defer closeSink()

	r, err := remote.New(configPath, sink)
	if err != nil {
		return err
	}

	p := tea.NewProgram(initialRemoteModel(r, sinkInfo), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

//////////////////////////////////////////////////////////////
// Constants
//////////////////////////////////////////////////////////////

// Timer range offered by the UI, in hours
const (
	minDelayHours = -24
	maxDelayHours = 24
)

// Editable fields, in display order
const (
	fieldPower = iota
	fieldMode
	fieldTemperature
	fieldFan
	fieldSwing
	fieldDelay
	fieldCount
)

var fieldNames = [fieldCount]string{"Power", "Mode", "Temperature", "Fan", "Swing", "Timer"}

//////////////////////////////////////////////////////////////
// Key Bindings
//////////////////////////////////////////////////////////////

type remoteKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Send  key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k remoteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Send, k.Help, k.Quit}
}

func (k remoteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Send, k.Reset, k.Help, k.Quit},
	}
}

var remoteKeys = remoteKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
	Down:  key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next")),
	Left:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "decrease")),
	Right: key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "increase")),
	Send:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "revert")),
	Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

//////////////////////////////////////////////////////////////
// Model
//////////////////////////////////////////////////////////////

type remoteModel struct {
	remote   *remote.Remote
	sinkInfo string

	pending daikin.Settings
	cursor  int

	status    string
	statusErr bool

	help     help.Model
	quitting bool
}

type appliedMsg struct {
	result remote.Result
	err    error
}

func initialRemoteModel(r *remote.Remote, sinkInfo string) remoteModel {
	return remoteModel{
		remote:   r,
		sinkInfo: sinkInfo,
		pending:  r.Settings(),
		help:     help.New(),
		status:   "Ready",
	}
}

func (m remoteModel) Init() tea.Cmd {
	return nil
}

func (m remoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case appliedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		res := msg.result
		m.pending = res.Settings
		m.status = fmt.Sprintf("Sent %d symbols (checksum 0x%02X)", len(res.Sequence), res.Frame[daikin.ChecksumIndex])
		m.statusErr = false
	}

	return m, nil
}

func (m remoteModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, remoteKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, remoteKeys.Up):
		m.cursor = (m.cursor + fieldCount - 1) % fieldCount

	case key.Matches(msg, remoteKeys.Down):
		m.cursor = (m.cursor + 1) % fieldCount

	case key.Matches(msg, remoteKeys.Left):
		m.pending = adjustField(m.pending, m.cursor, -1)

	case key.Matches(msg, remoteKeys.Right):
		m.pending = adjustField(m.pending, m.cursor, 1)

	case key.Matches(msg, remoteKeys.Reset):
		m.pending = m.remote.Settings()
		m.status = "Reverted to last sent settings"
		m.statusErr = false

	case key.Matches(msg, remoteKeys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, remoteKeys.Send):
		return m, applyCmd(m.remote, m.pending)
	}

	return m, nil
}

func applyCmd(r *remote.Remote, s daikin.Settings) tea.Cmd {
	return func() tea.Msg {
		res, err := r.Apply(config.FromSettings(s))
		return appliedMsg{result: res, err: err}
	}
}

// adjustField steps one field up (dir > 0) or down. Enumerations toggle,
// numbers stay inside their valid range.
func adjustField(s daikin.Settings, field, dir int) daikin.Settings {
	switch field {
	case fieldPower:
		if s.Power == daikin.PowerOn {
			s.Power = daikin.PowerOff
		} else {
			s.Power = daikin.PowerOn
		}
	case fieldMode:
		if s.Mode == daikin.ModeHeat {
			s.Mode = daikin.ModeCool
		} else {
			s.Mode = daikin.ModeHeat
		}
	case fieldTemperature:
		s.Temperature = clamp(s.Temperature+dir, daikin.MinTemperature, daikin.MaxTemperature)
	case fieldFan:
		s.Fan = clamp(s.Fan+dir, daikin.FanAuto, daikin.MaxFan)
	case fieldSwing:
		if s.Swing == daikin.SwingOn {
			s.Swing = daikin.SwingOff
		} else {
			s.Swing = daikin.SwingOn
		}
	case fieldDelay:
		s.Delay = clamp(s.Delay+dir, minDelayHours, maxDelayHours)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fieldValue(s daikin.Settings, field int) string {
	switch field {
	case fieldPower:
		return string(s.Power)
	case fieldMode:
		return string(s.Mode)
	case fieldTemperature:
		return fmt.Sprintf("%d°C", s.Temperature)
	case fieldFan:
		return daikin.FormatFan(s.Fan)
	case fieldSwing:
		return string(s.Swing)
	case fieldDelay:
		return daikin.FormatDelay(s.Delay)
	default:
		return ""
	}
}

//////////////////////////////////////////////////////////////
// View
//////////////////////////////////////////////////////////////

func (m remoteModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true).
		Width(14)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("12")).
		Padding(0, 1)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	s.WriteString(titleStyle.Render("Daikin Remote"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(m.sinkInfo))
	s.WriteString("\n\n")

	var fields strings.Builder
	for i := 0; i < fieldCount; i++ {
		value := fieldValue(m.pending, i)
		if i == m.cursor {
			value = selectedStyle.Render("◀ " + value + " ▶")
		} else {
			value = valueStyle.Render(value)
		}
		fields.WriteString(labelStyle.Render(fieldNames[i]))
		fields.WriteString(value)
		if i < fieldCount-1 {
			fields.WriteString("\n")
		}
	}
	s.WriteString(boxStyle.Render(fields.String()))
	s.WriteString("\n\n")

	preview, err := m.remote.Preview(config.FromSettings(m.pending))
	if err != nil {
		s.WriteString(errorStyle.Render(err.Error()))
	} else {
		s.WriteString(headerStyle.Render("Frame: "))
		s.WriteString(daikin.FormatFrame(preview.Frame))
	}
	s.WriteString("\n")

	if m.pending != m.remote.Settings() {
		s.WriteString(headerStyle.Render("(unsent changes)"))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.statusErr {
		s.WriteString(errorStyle.Render(m.status))
	} else {
		s.WriteString(valueStyle.Render(m.status))
	}
	s.WriteString("\n\n")
	s.WriteString(m.help.View(remoteKeys))
	s.WriteString("\n")

	return s.String()
}
