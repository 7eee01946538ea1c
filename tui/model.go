// Package tui implements the full-screen interactive calculator.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/calcpad/calcpad/calculator"
)

// displayWidth is the number of terminal cells visible in the display row.
const displayWidth = 32

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})

	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(displayWidth + 2).
			Align(lipgloss.Right)

	errorDisplayStyle = displayStyle.
				Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Margin(0, 1, 0, 0).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#303030"})

	operatorButtonStyle = buttonStyle.
				Background(lipgloss.AdaptiveColor{Light: "#FFAF5F", Dark: "#875F00"}).
				Bold(true)
)

type keyMap struct {
	Equals    key.Binding
	Clear     key.Binding
	Backspace key.Binding
	Percent   key.Binding
	Sign      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Equals, k.Clear, k.Backspace},
		{k.Percent, k.Sign},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "evaluate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "percent"),
		),
		Sign: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sign"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model wraps the calculator state machine for bubbletea. All arithmetic
// lives in the calculator package; the model only maps keys to events and
// renders the resulting state.
type Model struct {
	calc   calculator.Calculator
	keys   keyMap
	help   help.Model
	width  int
	offset int
}

func New() Model {
	return Model{
		calc: calculator.New(),
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Equals):
			return m.apply(calculator.EqualsPressed{}), nil
		case key.Matches(msg, m.keys.Clear):
			return m.apply(calculator.ClearPressed{}), nil
		case key.Matches(msg, m.keys.Backspace):
			return m.apply(calculator.BackspacePressed{}), nil
		case key.Matches(msg, m.keys.Percent):
			return m.apply(calculator.PercentagePressed{}), nil
		case key.Matches(msg, m.keys.Sign):
			return m.apply(calculator.SignTogglePressed{}), nil
		}

		if event, ok := eventForKey(msg.String()); ok {
			return m.apply(event), nil
		}
	}

	return m, nil
}

// eventForKey maps a plain keystroke to a calculator event. The "*" and "/"
// keys map to the multiply and divide operations alongside the display
// glyphs "x" and "÷".
func eventForKey(s string) (calculator.Event, bool) {
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return calculator.NumberPressed{Digit: s[0] - '0'}, true
	}

	switch s {
	case ".":
		return calculator.DecimalPressed{}, true
	case "+":
		return calculator.OperationPressed{Op: calculator.Add}, true
	case "-":
		return calculator.OperationPressed{Op: calculator.Subtract}, true
	case "x", "*":
		return calculator.OperationPressed{Op: calculator.Multiply}, true
	case "/", "÷":
		return calculator.OperationPressed{Op: calculator.Divide}, true
	}

	return nil, false
}

func (m Model) apply(event calculator.Event) Model {
	next, hint := m.calc.Apply(event)
	m.calc = next

	// The left ellipsis occupies one cell, hence the +1 when windowing.
	sw := runewidth.StringWidth(m.calc.DisplayString())
	end := max(0, sw-displayWidth+1)
	if hint == calculator.ScrollToEnd || m.offset > end {
		m.offset = end
	}

	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("calcpad"))
	b.WriteString("\n\n")

	display := m.calc.DisplayString()
	if runewidth.StringWidth(display) > displayWidth {
		display = runewidth.TruncateLeft(display, m.offset, "…")
		display = runewidth.Truncate(display, displayWidth, "…")
	}

	style := displayStyle
	if m.calc.HasError() {
		style = errorDisplayStyle
	}
	b.WriteString(style.Render(display))
	b.WriteString("\n\n")

	b.WriteString(m.viewKeypad())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

var keypadRows = [][]string{
	{"c", "s", "%", "÷"},
	{"7", "8", "9", "x"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", "⌫", "="},
}

func (m Model) viewKeypad() string {
	var rows []string
	for _, row := range keypadRows {
		var cells []string
		for _, label := range row {
			style := buttonStyle
			if strings.ContainsAny(label, "+-x÷=") {
				style = operatorButtonStyle
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// Run starts the interactive calculator and blocks until it exits.
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
