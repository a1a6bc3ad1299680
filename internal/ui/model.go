// ABOUTME: Bubbletea model for warning playback
// ABOUTME: Shows the header, current section and playback progress
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI state
type Model struct {
	// Warning
	header     string
	outputPath string
	sampleRate int
	segments   []Segment
	total      int

	// Playback
	played int
	done   bool
	err    error

	// Dimensions
	width  int
	height int
}

// ProgressMsg reports how many samples have been handed to the output
type ProgressMsg struct {
	Played int
}

// DoneMsg reports that playback finished
type DoneMsg struct {
	Err error
}

// NewModel creates a new TUI model
func NewModel(header, outputPath string, sampleRate int, segments []Segment) Model {
	total := 0
	if n := len(segments); n > 0 {
		total = segments[n-1].Start + segments[n-1].Length
	}
	return Model{
		header:     header,
		outputPath: outputPath,
		sampleRate: sampleRate,
		segments:   segments,
		total:      total,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case ProgressMsg:
		m.played = min(max(msg.Played, 0), m.total)
	case DoneMsg:
		m.done = true
		m.err = msg.Err
		if msg.Err == nil {
			m.played = m.total
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	s := m.renderHeader()
	s += m.renderProgress()
	s += m.renderHelp()
	return s
}

func (m Model) renderHeader() string {
	return fmt.Sprintf(`┌─ SAME Warning ───────────────────────────────────────┐
│ %-52s │
│ Output: %-44s │
├──────────────────────────────────────────────────────┤
`, truncate(m.header, 52), truncate(m.outputPath, 44))
}

func (m Model) renderProgress() string {
	section := "-"
	if i := segmentAt(m.segments, m.played); i >= 0 {
		section = fmt.Sprintf("%s (%d/%d)", m.segments[i].Label, i+1, len(m.segments))
	}

	status := "Playing"
	switch {
	case m.err != nil:
		status = "Error: " + m.err.Error()
	case m.done:
		status = "Done"
	}

	return fmt.Sprintf("│ Status:  %-43s │\n"+
		"│ Section: %-43s │\n"+
		"│ [%s] %6.1fs / %6.1fs │\n",
		truncate(status, 43), truncate(section, 43),
		renderBar(m.played, m.total, 30), m.seconds(m.played), m.seconds(m.total))
}

func (m Model) renderHelp() string {
	return `│ q:Quit                                               │
└──────────────────────────────────────────────────────┘
`
}

func (m Model) seconds(samples int) float64 {
	if m.sampleRate == 0 {
		return 0
	}
	return float64(samples) / float64(m.sampleRate)
}

// Utility functions
func renderBar(value, max, width int) string {
	filled := 0
	if max > 0 {
		filled = (value * width) / max
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
