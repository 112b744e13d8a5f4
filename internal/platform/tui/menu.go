package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-explorer/internal/core"
	"github.com/vovakirdan/tui-explorer/internal/world"
)

// Start menu fields, in focus order. The last entry is the Play option.
const (
	fieldSeed = iota
	fieldRange
	fieldViewport
	fieldPlay
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
)

// MenuModel is the Bubble Tea model for the start menu: three inputs and a
// single Play option.
type MenuModel struct {
	inputs    []textinput.Model
	focus     int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	err       string
	quitting  bool
	play      bool
}

// NewMenuModel creates a new start menu prefilled from cfg. An empty seed is
// replaced by a random one.
func NewMenuModel(cfg core.RuntimeConfig, seedLength int) MenuModel {
	if cfg.Seed == "" {
		cfg.Seed = core.RandomSeed(max(1, seedLength))
	}

	labels := []string{"Seed", "Generation range", "Viewport"}
	values := []string{cfg.Seed, strconv.Itoa(cfg.GenerationRange), strconv.Itoa(cfg.Viewport)}

	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		in := textinput.New()
		in.Prompt = fmt.Sprintf("%-18s", labels[i]+":")
		in.SetValue(values[i])
		in.CharLimit = 32
		inputs[i] = in
	}
	inputs[fieldRange].CharLimit = 4
	inputs[fieldViewport].CharLimit = 4
	inputs[fieldSeed].Focus()

	return MenuModel{
		inputs:    inputs,
		focus:     fieldSeed,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m.updateFocused(msg)
}

// handleKey processes keyboard input for the form.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		return m.setFocus(m.focus - 1), nil

	case MenuActionDown:
		return m.setFocus(m.focus + 1), nil

	case MenuActionSelect:
		if m.focus != fieldPlay {
			return m.setFocus(m.focus + 1), nil
		}
		cfg, err := m.parse()
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.config = cfg
		m.play = true
		return m, tea.Quit
	}

	return m.updateFocused(msg)
}

func (m MenuModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus == fieldPlay {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves the focus, wrapping around.
func (m MenuModel) setFocus(i int) MenuModel {
	n := len(m.inputs) + 1
	m.focus = ((i % n) + n) % n
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return m
}

// parse validates the form and returns the resulting config.
func (m MenuModel) parse() (core.RuntimeConfig, error) {
	cfg := m.config

	seed := strings.TrimSpace(m.inputs[fieldSeed].Value())
	if err := world.ValidateSeed(seed); err != nil {
		return cfg, fmt.Errorf("seed: %w", err)
	}
	cfg.Seed = seed

	var err error
	if cfg.GenerationRange, err = parsePositive(m.inputs[fieldRange].Value()); err != nil {
		return cfg, fmt.Errorf("generation range: %w", err)
	}
	if cfg.Viewport, err = parsePositive(m.inputs[fieldViewport].Value()); err != nil {
		return cfg, fmt.Errorf("viewport: %w", err)
	}
	return cfg, nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("must be at least 1, got %d", n)
	}
	return n, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  E X P L O R E R  ", m.width)))
	b.WriteString("\n\n")

	for _, in := range m.inputs {
		b.WriteString("  ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	play := "  Play  "
	if m.focus == fieldPlay {
		b.WriteString("> " + selectedStyle.Render(play))
	} else {
		b.WriteString("  " + play)
	}
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Tab/Up/Down: Navigate  |  Enter: Next / Play  |  Esc: Quit"))
	b.WriteString("\n")

	return b.String()
}

// Selected reports whether the player chose Play.
func (m MenuModel) Selected() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the start menu and returns the chosen settings.
func RunMenu(cfg core.RuntimeConfig, seedLength int) (MenuResult, error) {
	model := NewMenuModel(cfg, seedLength)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || !m.Selected() {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{Config: m.Config()}, nil
}
