package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// CommandResultMsg carries the outcome of one console command back into the
// update loop.
type CommandResultMsg struct {
	Lines []string
	Err   error
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			m.appendLine("> " + line)

			return m, performCommand(line, m.session)
		}

	case CommandResultMsg:
		if msg.Err != nil {
			m.appendLine(errStyle.Render(fmt.Sprintf("error: %s", msg.Err)))

			return m, nil
		}
		for _, line := range msg.Lines {
			m.appendLine(line)
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *MainModel) appendLine(line string) {
	m.lines = append(m.lines, line)

	// Keep the scrollback bounded; the persisted reports are the record.
	const maxLines = 200
	if len(m.lines) > maxLines {
		m.lines = m.lines[len(m.lines)-maxLines:]
	}
}

func performCommand(input string, session Session) tea.Cmd {
	return func() tea.Msg {
		parts := strings.Fields(input)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			return CommandResultMsg{Lines: []string{helpStyle.Render(helpText)}}

		case "setup":
			path, err := session.SetupWorkspace()
			if err != nil {
				return CommandResultMsg{Err: err}
			}

			return CommandResultMsg{Lines: []string{
				okStyle.Render("Workspace configured: " + path),
			}}

		case "load":
			if len(args) != 1 {
				return CommandResultMsg{Err: fmt.Errorf("usage: load <path>")}
			}
			info, err := session.LoadScene(args[0])
			if err != nil {
				return CommandResultMsg{Err: err}
			}

			return CommandResultMsg{Lines: []string{okStyle.Render(info)}}

		case "validate":
			findings, err := session.ValidateScene()
			if err != nil {
				return CommandResultMsg{Err: err}
			}
			if len(findings) == 0 {
				return CommandResultMsg{Lines: []string{okStyle.Render("All checks passed!")}}
			}
			lines := make([]string, 0, len(findings))
			for _, f := range findings {
				lines = append(lines, warnStyle.Render("[WARN] "+f))
			}

			return CommandResultMsg{Lines: lines}

		case "export":
			assetType := ""
			if len(args) > 0 {
				assetType = args[0]
			}
			path, err := session.ExportScene(assetType)
			if err != nil {
				return CommandResultMsg{Err: err}
			}

			return CommandResultMsg{Lines: []string{okStyle.Render("Exported to " + path)}}

		default:
			return CommandResultMsg{Err: fmt.Errorf("unknown command: %q", cmd)}
		}
	}
}
