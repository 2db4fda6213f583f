package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// doneMsg reports that the console loop returned.
type doneMsg struct {
	err error
}

// Model is the Bubble Tea model showing the emulated console.
type Model struct {
	lcd    *LCD
	joy    *Joystick
	keys   KeyMap
	help   help.Model
	styles Styles
	title  string

	width    int
	height   int
	err      error
	quitting bool
}

// NewModel creates a model over a shared display and joystick.
func NewModel(lcd *LCD, joy *Joystick, title string) Model {
	return Model{
		lcd:    lcd,
		joy:    joy,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
		title:  title,
	}
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(RefreshInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m, tickCmd(RefreshInterval)

	case doneMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey feeds the virtual joystick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.joy.Push(core.AxisY, core.AxisMin)
	case key.Matches(msg, m.keys.Down):
		m.joy.Push(core.AxisY, core.AxisMax)
	case key.Matches(msg, m.keys.Left):
		m.joy.Push(core.AxisX, core.AxisMin)
	case key.Matches(msg, m.keys.Right):
		m.joy.Push(core.AxisX, core.AxisMax)
	case key.Matches(msg, m.keys.Button):
		m.joy.Press()
	}
	return m, nil
}

// View renders the LCD with a title and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render(m.title),
		RenderLCD(m.lcd.Rows(), m.styles),
		m.styles.Help.Render(m.help.View(m.keys)),
	)

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Err returns the error the console loop finished with, if any.
func (m Model) Err() error {
	return m.err
}

// Run shows lcd in the terminal and runs loop beside the Bubble Tea event
// loop. It returns when loop returns or the user quits; quitting cancels
// the context passed to loop.
func Run(ctx context.Context, lcd *LCD, joy *Joystick, title string, loop func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		NewModel(lcd, joy, title),
		tea.WithAltScreen(),
	)

	go func() {
		err := loop(ctx)
		p.Send(doneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
