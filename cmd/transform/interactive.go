package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tengyifei/llcpptransformer/samples"
	"github.com/tengyifei/llcpptransformer/transformer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectType modelState = iota
	stateInputBytes
	stateShowResult
)

type interactiveModel struct {
	err       error
	pairs     []samples.Pair
	input     textinput.Model
	result    string
	direction transformer.Direction
	selected  int
	state     modelState
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "hex: "
	ti.Width = 72

	return &interactiveModel{
		pairs:     samples.Pairs(),
		input:     ti,
		direction: transformer.V1ToOld,
		state:     stateSelectType,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputBytes {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.pairs)-1 {
				m.selected++
			}

		case "d":
			if m.state == stateSelectType {
				if m.direction == transformer.V1ToOld {
					m.direction = transformer.OldToV1
				} else {
					m.direction = transformer.V1ToOld
				}
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				m.prepareInput()
				m.state = stateInputBytes

			case stateInputBytes:
				m.runTransform()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputBytes:
				m.state = stateSelectType
				m.input.Blur()
			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}
		}
	}

	if m.state == stateInputBytes {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// prepareInput seeds the hex field with the selected pair's fixture for
// the current source dialect.
func (m *interactiveModel) prepareInput() {
	p := m.pairs[m.selected]
	src := p.V1Bytes
	if m.direction == transformer.OldToV1 {
		src = p.OldBytes
	}
	m.input.SetValue(hex.EncodeToString(src))
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *interactiveModel) runTransform() {
	p := m.pairs[m.selected]
	root := p.V1
	if m.direction == transformer.OldToV1 {
		root = p.Old
	}

	src, err := decodeHex(m.input.Value())
	if err != nil {
		m.err = fmt.Errorf("decode input: %w", err)
		return
	}

	dst := make([]byte, transformer.MaxMessageBytes)
	n, err := transformer.Transform(m.direction, root, src, dst)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.result = fmt.Sprintf("%d bytes in, %d bytes out\n\n%s", len(src), n, hexDump(dst[:n]))
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Wire Transformer"))
	b.WriteString(" ")
	b.WriteString(dirStyle.Render(m.direction.String()))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a message type:\n\n")
		for i, p := range m.pairs {
			line := fmt.Sprintf("%s  (old %d, v1 %d bytes)", p.Name, len(p.OldBytes), len(p.V1Bytes))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + nameStyle.Render(p.Name) + line[len(p.Name):])
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • d direction • enter edit bytes • q quit"))

	case stateInputBytes:
		p := m.pairs[m.selected]
		b.WriteString(fmt.Sprintf("Transforming %s (%s)\n\n", nameStyle.Render(p.Name), m.direction))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter transform • esc back"))

	case stateShowResult:
		p := m.pairs[m.selected]
		b.WriteString(fmt.Sprintf("Result for %s:\n\n", nameStyle.Render(p.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
