package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	charsetruntime "github.com/wippyai/charset-runtime"
	"github.com/wippyai/charset-runtime/converter"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	aliasStyle = lipgloss.NewStyle().
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

type interactiveModel struct {
	err       error
	encodings []encodingInfo
	input     textinput.Model
	result    string
	selected  int
	state     modelState
}

type encodingInfo struct {
	name      string
	canonical string
	aliases   []string
	minBytes  int
	maxBytes  int
}

type modelState int

const (
	stateSelectEncoding modelState = iota
	stateInputText
	stateShowResult
)

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{state: stateSelectEncoding}
}

type loadedMsg struct {
	err       error
	encodings []encodingInfo
}

type transcodeMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadEncodings
}

func (m *interactiveModel) loadEncodings() tea.Msg {
	var encodings []encodingInfo
	for _, name := range converter.AvailableNames() {
		canonical, err := converter.CanonicalName(name)
		if err != nil {
			return loadedMsg{err: err}
		}
		aliases, err := converter.Aliases(name)
		if err != nil {
			return loadedMsg{err: err}
		}
		conv, err := converter.Open(name)
		if err != nil {
			return loadedMsg{err: err}
		}
		encodings = append(encodings, encodingInfo{
			name:      name,
			canonical: canonical,
			aliases:   aliases,
			minBytes:  conv.MinBytesPerChar(),
			maxBytes:  conv.MaxBytesPerChar(),
		})
		conv.Close()
	}
	return loadedMsg{encodings: encodings}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputText {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectEncoding && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectEncoding && m.selected < len(m.encodings)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectEncoding:
				m.prepareInput()
				m.state = stateInputText

			case stateInputText:
				return m, m.transcode

			case stateShowResult:
				m.state = stateSelectEncoding
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputText:
				m.state = stateSelectEncoding
			case stateShowResult:
				m.state = stateSelectEncoding
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.encodings = msg.encodings

	case transcodeMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputText {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "text to encode"
	ti.Prompt = "text: "
	ti.Width = 60
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) transcode() tea.Msg {
	info := m.encodings[m.selected]
	text := m.input.Value()

	conv, err := converter.Open(info.name)
	if err != nil {
		return transcodeMsg{err: err}
	}
	defer conv.Close()

	var b strings.Builder
	encoded, outcome := conv.EncodeString(text)
	if outcome != charsetruntime.OutcomeOK {
		fmt.Fprintf(&b, "encode: %s\n\n", outcome)
		for _, r := range text {
			if !conv.CanEncode(r) {
				fmt.Fprintf(&b, "  U+%04X %q is not representable\n", r, string(r))
			}
		}
		return transcodeMsg{result: b.String()}
	}

	fmt.Fprintf(&b, "%d bytes:\n  % x\n\n", len(encoded), encoded)

	decoded, outcome := conv.DecodeString(encoded)
	if outcome != charsetruntime.OutcomeOK {
		fmt.Fprintf(&b, "round trip failed: %s\n", outcome)
	} else {
		fmt.Fprintf(&b, "round trip: %q\n", decoded)
	}
	return transcodeMsg{result: b.String()}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.encodings) == 0 {
		return "Loading encodings..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Charset Transcoder"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectEncoding:
		b.WriteString("Select an encoding:\n\n")
		for i, e := range m.encodings {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatEncoding(e)))
			} else {
				b.WriteString(cursor + m.formatEncoding(e))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputText:
		e := m.encodings[m.selected]
		b.WriteString(fmt.Sprintf("Encoding with %s (%d-%d bytes per char)\n\n",
			nameStyle.Render(e.name), e.minBytes, e.maxBytes))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter encode • esc back"))

	case stateShowResult:
		e := m.encodings[m.selected]
		b.WriteString(fmt.Sprintf("Result for %s:\n\n", nameStyle.Render(e.name)))
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

func (m *interactiveModel) formatEncoding(e encodingInfo) string {
	line := nameStyle.Render(e.name)
	if e.canonical != e.name {
		line += " → " + nameStyle.Render(e.canonical)
	}
	if len(e.aliases) > 0 {
		line += "  " + aliasStyle.Render(strings.Join(e.aliases, ", "))
	}
	return line
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
