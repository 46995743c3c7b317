package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user backs out of a prompt without
// choosing anything. Callers treat it as a normal exit, not a failure.
var ErrCancelled = errors.New("selection cancelled")

// pageSize caps how many options are visible at once; the window slides
// with the cursor for longer lists.
const pageSize = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("211"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// Option is one selectable row. Detail is an optional dimmed second line.
type Option struct {
	Label  string
	Detail string
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var defaultKeyMap = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "cancel")),
}

type selectModel struct {
	title     string
	options   []Option
	keys      keyMap
	cursor    int
	chosen    bool
	cancelled bool
}

func newSelectModel(title string, options []Option) selectModel {
	return selectModel{
		title:   title,
		options: options,
		keys:    defaultKeyMap,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.options) - 1
			}

		case key.Matches(msg, m.keys.Down):
			m.cursor++
			if m.cursor >= len(m.options) {
				m.cursor = 0
			}

		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// window returns the visible slice bounds around the cursor.
func (m selectModel) window() (int, int) {
	if len(m.options) <= pageSize {
		return 0, len(m.options)
	}
	start := m.cursor - pageSize/2
	if start < 0 {
		start = 0
	}
	end := start + pageSize
	if end > len(m.options) {
		end = len(m.options)
		start = end - pageSize
	}
	return start, end
}

func (m selectModel) View() string {
	s := titleStyle.Render(m.title) + "\n\n"

	start, end := m.window()
	for i := start; i < end; i++ {
		opt := m.options[i]
		if i == m.cursor {
			s += cursorStyle.Render("❯ ") + selectedStyle.Render(opt.Label)
		} else {
			s += "  " + opt.Label
		}
		s += "\n"
		if opt.Detail != "" && i == m.cursor {
			s += detailStyle.Render("    "+opt.Detail) + "\n"
		}
	}

	if end < len(m.options) {
		s += detailStyle.Render(fmt.Sprintf("  … %d more below", len(m.options)-end)) + "\n"
	}

	s += helpStyle.Render("↑/↓ move · enter select · q cancel")
	return s
}

// Select runs an interactive picker and returns the index of the chosen
// option. Cancelling with q, esc, or ctrl+c yields ErrCancelled.
func Select(title string, options []Option) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("nothing to select from")
	}

	p := tea.NewProgram(newSelectModel(title, options))
	final, err := p.Run()
	if err != nil {
		// Covers closed or non-interactive stdin; piping input is not a
		// supported mode, so treat it like backing out.
		return 0, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	m, ok := final.(selectModel)
	if !ok {
		return 0, errors.New("unexpected model type from prompt")
	}
	if m.cancelled || !m.chosen {
		return 0, ErrCancelled
	}
	return m.cursor, nil
}
