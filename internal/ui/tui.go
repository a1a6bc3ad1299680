// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for playback display
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run creates the playback program. The caller starts it and feeds it
// ProgressMsg and DoneMsg through Send.
func Run(model Model) *tea.Program {
	return tea.NewProgram(model)
}
