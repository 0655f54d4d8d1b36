// Package ui provides the interactive hosts for VPN Launcher.
// This file contains the terminal picker built on bubbletea.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yllada/vpn-launcher/common"
	"github.com/yllada/vpn-launcher/launcher"
)

// QueryHandler answers launcher queries.
type QueryHandler interface {
	HandleQuery(ctx context.Context, q launcher.Query) ([]launcher.Item, error)
}

// resultsMsg carries the items of query number seq.
type resultsMsg struct {
	seq   int
	items []launcher.Item
	err   error
}

// actionDoneMsg reports the outcome of running an item's action.
type actionDoneMsg struct {
	item launcher.Item
	err  error
}

// Picker is a bubbletea model that behaves like a launcher dedicated to
// the VPN plugin: the input is the query, enter toggles the selection.
type Picker struct {
	ctx     context.Context
	handler QueryHandler

	input  textinput.Model
	items  []launcher.Item
	cursor int

	// seq numbers queries; results of older queries are discarded.
	seq     int
	running bool

	status    string
	statusErr bool
	queryErr  error

	width  int
	height int
}

// NewPicker creates a picker whose input starts with initial.
func NewPicker(ctx context.Context, handler QueryHandler, initial string) *Picker {
	input := textinput.New()
	input.Placeholder = "filter VPN connections"
	input.Prompt = "vpn ❯ "
	input.SetValue(initial)
	input.CursorEnd()
	input.Focus()

	return &Picker{
		ctx:     ctx,
		handler: handler,
		input:   input,
	}
}

// RunPicker runs the picker until the user quits.
func RunPicker(ctx context.Context, handler QueryHandler, initial string) error {
	program := tea.NewProgram(NewPicker(ctx, handler, initial), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (m *Picker) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.query())
}

// query issues a new query for the current input.
func (m *Picker) query() tea.Cmd {
	m.seq++
	seq := m.seq
	text := m.input.Value()
	ctx, handler := m.ctx, m.handler

	return func() tea.Msg {
		items, err := handler.HandleQuery(ctx, launcher.TriggeredQuery(text))
		return resultsMsg{seq: seq, items: items, err: err}
	}
}

func (m *Picker) activate() tea.Cmd {
	item, ok := m.selected()
	if !ok || m.running {
		return nil
	}
	action, ok := item.DefaultAction()
	if !ok {
		return nil
	}

	m.running = true
	m.status = action.Text + "…"
	m.statusErr = false

	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{item: item, err: action.Run(ctx)}
	}
}

func (m *Picker) selected() (launcher.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return launcher.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.items = msg.items
		if m.cursor >= len(m.items) {
			m.cursor = max(len(m.items)-1, 0)
		}
		m.queryErr = msg.err
		return m, nil

	case actionDoneMsg:
		m.running = false
		if msg.err != nil {
			common.LogError("Action for %s failed: %v", msg.item.Text, msg.err)
			m.status = msg.err.Error()
			m.statusErr = true
		} else {
			m.status = "✓ " + msg.item.Subtext
			m.statusErr = false
		}
		return m, m.query()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case "tab":
			if item, ok := m.selected(); ok && item.Completion != m.input.Value() {
				m.input.SetValue(item.Completion)
				m.input.CursorEnd()
				return m, m.query()
			}
			return m, nil
		case "enter":
			return m, m.activate()
		case "ctrl+r":
			return m, m.query()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.cursor = 0
		return m, tea.Batch(cmd, m.query())
	}
	return m, cmd
}

func (m *Picker) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(common.AppName))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(subtextStyle.Render("No VPN connections match."))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		badge := disconnectedBadge
		if item.Connected() {
			badge = connectedBadge
		}
		line := fmt.Sprintf("%s %s", badge, item.Text)
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(subtextStyle.Render(item.Subtext))
		b.WriteString("\n")
	}

	if m.queryErr != nil {
		b.WriteString(errorStyle.Render(m.queryErr.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select • tab complete • enter toggle • ctrl+r refresh • esc quit"))
	return b.String()
}
