package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-explorer/internal/core"
	"github.com/vovakirdan/tui-explorer/internal/game"
	"github.com/vovakirdan/tui-explorer/internal/storage"
	"github.com/vovakirdan/tui-explorer/internal/world"
)

// mode is the input mode of the play screen.
type mode int

const (
	modePlaying mode = iota
	modeSaveName
	modeConfirmOverwrite
	modeLoadName
	modeConfirmDiscard
	modeLoadFailed
)

// actionDirections maps movement actions to game directions.
var actionDirections = map[core.Action]game.Direction{
	core.ActionNorth: game.North,
	core.ActionSouth: game.South,
	core.ActionEast:  game.East,
	core.ActionWest:  game.West,
}

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	armedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model of the play screen.
type Model struct {
	game       *game.Game
	slots      storage.SlotStore
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	input      textinput.Model
	logger     *log.Logger
	seedLength int

	mode        mode
	pendingName string
	status      string
	statusErr   bool
	quitting    bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithModelLogger sets the logger used for save and load failures.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSeedLength sets the length of seeds generated on reset.
func WithSeedLength(n int) ModelOption {
	return func(m *Model) {
		if n > 0 {
			m.seedLength = n
		}
	}
}

// NewModel creates a new Bubble Tea model playing g and saving to slots.
func NewModel(g *game.Game, slots storage.SlotStore, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	in := textinput.New()
	in.CharLimit = 64
	in.Width = 32

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:       g,
		slots:      slots,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		input:      in,
		logger:     log.New(io.Discard),
		seedLength: core.SeedLength,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.screen = newWindowScreen(g.Viewport())
	return m
}

func newWindowScreen(radius int) *core.Screen {
	w, h := WindowSize(radius)
	return core.NewScreen(w, h)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modePlaying:
			return m.handlePlayKey(msg)
		case modeSaveName, modeLoadName:
			return m.handleNameKey(msg)
		case modeConfirmOverwrite, modeConfirmDiscard, modeLoadFailed:
			return m.handleChoiceKey(msg)
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.mode == modeSaveName || m.mode == modeLoadName {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePlayKey processes keyboard input while exploring.
func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action.IsMove() {
		if err := m.game.Move(actionDirections[action]); err != nil {
			m.setError(err.Error())
		} else {
			m.setStatus("")
		}
		return m, nil
	}

	switch action {
	case core.ActionBomb:
		armed, err := m.game.ToggleBombing()
		switch {
		case err != nil:
			m.setError(err.Error())
		case armed:
			m.setStatus("Bomb armed: your next move blasts through walls")
		default:
			m.setStatus("Bomb disarmed")
		}

	case core.ActionInteract:
		reward, ok := m.game.Interact()
		if !ok {
			m.setStatus("Nothing to interact with here")
			break
		}
		text := reward.Message
		if reward.Bombs > 0 {
			text += fmt.Sprintf(" (+%d bombs)", reward.Bombs)
		}
		m.setStatus(text)

	case core.ActionRangeUp, core.ActionRangeDown:
		delta := 1
		if action == core.ActionRangeDown {
			delta = -1
		}
		m.setStatus(fmt.Sprintf("Generation range: %d", m.game.AdjustGenerationRange(delta)))

	case core.ActionReset:
		seed := core.RandomSeed(m.seedLength)
		if err := m.game.Reset(seed); err != nil {
			m.setError(err.Error())
			break
		}
		m.setStatus("New world with seed " + seed)

	case core.ActionSave:
		return m.openPrompt(modeSaveName, "save as")

	case core.ActionLoad:
		if !m.game.Saved() {
			m.mode = modeConfirmDiscard
			return m, nil
		}
		return m.openPrompt(modeLoadName, "load")

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleNameKey processes keyboard input while a name prompt is open.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		m.setStatus("Cancelled")
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.setError("Name cannot be empty")
			return m, nil
		}
		if m.mode == modeSaveName {
			return m.submitSave(name)
		}
		return m.submitLoad(name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleChoiceKey processes y/n and retry/abort answers.
func (m Model) handleChoiceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := strings.ToLower(msg.String())

	switch m.mode {
	case modeConfirmOverwrite:
		switch key {
		case "y":
			m.save(m.pendingName)
		case "n":
			m.save(storage.UniqueName(m.nameTaken, m.pendingName))
		case "esc":
			m.setStatus("Cancelled")
		default:
			return m, nil
		}
		m.closePrompt()

	case modeConfirmDiscard:
		switch key {
		case "y":
			return m.openPrompt(modeLoadName, "load")
		case "n", "esc":
			m.mode = modePlaying
			m.setStatus("Load cancelled")
		}

	case modeLoadFailed:
		switch key {
		case "r":
			return m.openPrompt(modeLoadName, "load")
		case "a", "esc":
			m.closePrompt()
			m.setStatus("Load aborted")
		}
	}

	return m, nil
}

func (m Model) openPrompt(md mode, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = md
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.setStatus("")
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) closePrompt() {
	m.mode = modePlaying
	m.pendingName = ""
	m.input.Blur()
}

func (m Model) submitSave(name string) (tea.Model, tea.Cmd) {
	taken, err := storage.Exists(m.slots, name)
	if err != nil {
		m.logger.Warn("cannot check save name", "name", name, "error", err)
	}
	if taken {
		m.pendingName = name
		m.mode = modeConfirmOverwrite
		m.input.Blur()
		return m, nil
	}
	m.save(name)
	m.closePrompt()
	return m, nil
}

func (m *Model) save(name string) {
	if err := m.game.Save(m.slots, name); err != nil {
		m.logger.Error("save failed", "name", name, "error", err)
		m.setError("Save failed: " + err.Error())
		return
	}
	m.setStatus(fmt.Sprintf("Saved as %q", name))
}

func (m Model) submitLoad(name string) (tea.Model, tea.Cmd) {
	err := m.game.Load(m.slots, name)
	if err == nil {
		m.closePrompt()
		m.setStatus(fmt.Sprintf("Loaded %q", name))
		return m, nil
	}

	var notFound *storage.SaveNotFoundError
	var invalidType *world.InvalidTypeError
	switch {
	case errors.As(err, &notFound):
		m.setError(err.Error())
		return m, nil
	case errors.As(err, &invalidType), errors.Is(err, world.ErrCorruptRecord):
		m.logger.Warn("unreadable save", "name", name, "error", err)
		m.pendingName = name
		m.mode = modeLoadFailed
		m.input.Blur()
		m.setError(err.Error())
		return m, nil
	default:
		m.logger.Error("load failed", "name", name, "error", err)
		m.closePrompt()
		m.setError("Load failed: " + err.Error())
		return m, nil
	}
}

func (m Model) nameTaken(name string) bool {
	taken, err := storage.Exists(m.slots, name)
	if err != nil {
		m.logger.Warn("cannot check save name", "name", name, "error", err)
	}
	return taken
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHUD())
	b.WriteString("\n\n")

	m.screen.Clear()
	DrawWindow(m.screen, m.game.Window(), 0, 0)
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n\n")

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if prompt := m.renderPrompt(); prompt != "" {
		b.WriteString(prompt)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// renderHUD renders the tile line and the session line.
func (m Model) renderHUD() string {
	pos := m.game.Position()
	tile := m.game.CurrentTile()
	tileLine := fmt.Sprintf("X: %d | Y: %d | Tile_ID: %d | Tile_Type: %s",
		pos.X, pos.Y, tile.ID, tile.Type)

	bombs := fmt.Sprintf("Bombs: %d", m.game.Bombs())
	if limit := m.game.BombCap(); limit > 0 {
		bombs = fmt.Sprintf("Bombs: %d/%d", m.game.Bombs(), limit)
	}
	if m.game.Bombing() {
		bombs += " " + armedStyle.Render("ARMED")
	}

	saved := "unsaved"
	if m.game.Saved() {
		saved = "saved"
	}
	info := fmt.Sprintf("Seed: %s | Tiles: %d | Range: %d | %s",
		m.game.Seed(), m.game.TileCount(), m.game.GenerationRange(), saved)

	return hudStyle.Render(tileLine) + "\n" + bombs + "  " + infoStyle.Render(info)
}

// renderPrompt renders the open prompt, if any.
func (m Model) renderPrompt() string {
	switch m.mode {
	case modeSaveName:
		return promptStyle.Render("Save name: ") + m.input.View()
	case modeLoadName:
		line := promptStyle.Render("Load name: ") + m.input.View()
		if names, err := m.slots.Names(); err == nil && len(names) > 0 {
			line += "\n" + infoStyle.Render("Saves: "+strings.Join(names, ", "))
		}
		return line
	case modeConfirmOverwrite:
		return promptStyle.Render(fmt.Sprintf("%q exists. Overwrite? [y/n] (n picks a new name)", m.pendingName))
	case modeConfirmDiscard:
		return promptStyle.Render("Discard unsaved changes and load? [y/n]")
	case modeLoadFailed:
		return promptStyle.Render(fmt.Sprintf("Cannot load %q. [r]etry or [a]bort?", m.pendingName))
	}
	return ""
}

// Game returns the game being played.
func (m Model) Game() *game.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, slots storage.SlotStore, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(g, slots, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
