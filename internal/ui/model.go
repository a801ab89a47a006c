// Package ui is the interactive authoring console: a small bubbletea program
// exposing the three workspace operations (setup, validate, export) against
// the single currently loaded scene.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Session is the application-side backend the console drives. All scene state
// lives behind it; the UI only renders results.
type Session interface {
	SetupWorkspace() (string, error)
	LoadScene(path string) (string, error)
	ValidateScene() ([]string, error)
	ExportScene(assetType string) (string, error)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const helpText = "commands: setup | load <path> | validate | export [weapon|armor|monster|environment|character] | quit"

type MainModel struct {
	input   textinput.Model
	session Session
	lines   []string
}

func InitialModel(session Session) MainModel {
	input := textinput.New()
	input.Placeholder = "command"
	input.Focus()

	return MainModel{
		input:   input,
		session: session,
		lines:   []string{helpStyle.Render(helpText)},
	}
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MainModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tower Game - Asset Console"))
	b.WriteString("\n\n")
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	return b.String()
}
