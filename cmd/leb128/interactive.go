package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-instrument/leb128"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	widthStyle = lipgloss.NewStyle().
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

var widths = []leb128.Width{leb128.WidthU32, leb128.WidthS32, leb128.WidthS64}

type modelState int

const (
	stateDecode modelState = iota
	stateEncode
)

type interactiveModel struct {
	err      error
	result   string
	inputs   []textinput.Model
	width    int
	focusIdx int
	state    modelState
}

const (
	inputHex = iota
	inputValue
	inputLen
)

func newInteractiveModel(w leb128.Width) *interactiveModel {
	m := &interactiveModel{state: stateDecode}
	for i, wd := range widths {
		if wd == w {
			m.width = i
		}
	}

	hexIn := textinput.New()
	hexIn.Prompt = "bytes: "
	hexIn.Placeholder = "ac 02"
	hexIn.Width = 40

	valueIn := textinput.New()
	valueIn.Prompt = "value: "
	valueIn.Placeholder = "300"
	valueIn.Width = 24

	lenIn := textinput.New()
	lenIn.Prompt = "min length: "
	lenIn.Placeholder = "0"
	lenIn.Width = 4

	m.inputs = []textinput.Model{hexIn, valueIn, lenIn}
	m.focus(inputHex)
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+e":
			if m.state == stateDecode {
				m.state = stateEncode
				m.focus(inputValue)
			} else {
				m.state = stateDecode
				m.focus(inputHex)
			}
			m.recompute()
			return m, nil

		case "ctrl+w":
			m.width = (m.width + 1) % len(widths)
			m.recompute()
			return m, nil

		case "tab":
			if m.state == stateEncode {
				if m.focusIdx == inputValue {
					m.focus(inputLen)
				} else {
					m.focus(inputValue)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *interactiveModel) focus(idx int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focusIdx = idx
	m.inputs[idx].Focus()
}

func (m *interactiveModel) recompute() {
	m.result, m.err = "", nil
	w := widths[m.width]

	switch m.state {
	case stateDecode:
		text := strings.TrimSpace(m.inputs[inputHex].Value())
		if text == "" {
			return
		}
		data, err := parseHex(text)
		if err != nil {
			m.err = err
			return
		}
		values, err := decodeAll(data, w)
		var lines []string
		for _, v := range values {
			lines = append(lines, fmt.Sprintf("%s (%d bytes)", v.text, v.byteCount))
		}
		m.result = strings.Join(lines, "\n")
		m.err = err

	case stateEncode:
		value := strings.TrimSpace(m.inputs[inputValue].Value())
		if value == "" {
			return
		}
		byteCount := 0
		if s := strings.TrimSpace(m.inputs[inputLen].Value()); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				m.err = fmt.Errorf("min length: %w", err)
				return
			}
			byteCount = n
		}
		data, err := encode(value, w, byteCount)
		if err != nil {
			m.err = err
			return
		}
		m.result = fmt.Sprintf("%s (%d bytes)", formatHex(data), len(data))
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("LEB128"))
	b.WriteString(" ")
	for i, w := range widths {
		if i == m.width {
			b.WriteString(selectedStyle.Render(" " + w.String() + " "))
		} else {
			b.WriteString(widthStyle.Render(" " + w.String() + " "))
		}
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateDecode:
		b.WriteString("Decode\n\n")
		b.WriteString(m.inputs[inputHex].View())
		b.WriteString("\n")
	case stateEncode:
		b.WriteString("Encode\n\n")
		b.WriteString(m.inputs[inputValue].View())
		b.WriteString("\n")
		b.WriteString(m.inputs[inputLen].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.result != "" {
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+e decode/encode • ctrl+w width • tab next field • esc quit"))
	return b.String()
}

func runInteractive(w leb128.Width) error {
	p := tea.NewProgram(newInteractiveModel(w), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
