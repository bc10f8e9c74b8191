package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocky/internal/config"
	"github.com/vovakirdan/tui-blocky/internal/core"
)

// SetupSelection holds the user's choices from the match setup menu.
type SetupSelection struct {
	Preset config.DifficultyPreset
	Depth  int // 0 = keep the configured depth
}

// presetChoices are the difficulty presets offered, in menu order.
var presetChoices = []struct {
	preset config.DifficultyPreset
	label  string
}{
	{config.DifficultyNormal, "Normal (smart CPU, 1 smash)"},
	{config.DifficultyEasy, "Easy (weak CPU, 2 smashes)"},
	{config.DifficultyHard, "Hard (strong CPU, 1 smash)"},
	{config.DifficultyFixed, "Use config file"},
}

// SetupModel lets users choose the difficulty preset and board depth
// before a match.
type SetupModel struct {
	title         string
	cursor        int
	depthCursor   int
	inDepthSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     SetupSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewSetupModel creates a new setup model for the given variant title.
func NewSetupModel(title string, width, height int) SetupModel {
	return SetupModel{
		title:       title,
		depthCursor: config.DefaultBlockyConfig().Board.MaxDepth - config.MinDepth,
		width:       width,
		height:      height,
		keyMapper:   NewKeyMapper(),
		choosing:    true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDepthSelect {
		return m.handleDepthSelectKey(action)
	}
	return m.handlePresetSelectKey(action)
}

func (m SetupModel) handlePresetSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(presetChoices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Preset = presetChoices[m.cursor].preset
		if m.selection.Preset == config.DifficultyFixed {
			// The config file decides the depth too
			m.choosing = false
			return m, tea.Quit
		}
		m.inDepthSelect = true
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SetupModel) handleDepthSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	depths := config.MaxDepth - config.MinDepth + 1

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.depthCursor > 0 {
			m.depthCursor--
		}
	case MenuActionDown:
		if m.depthCursor < depths-1 {
			m.depthCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Depth = config.MinDepth + m.depthCursor
		return m, tea.Quit
	case MenuActionBack:
		m.inDepthSelect = false
	}

	return m, nil
}

// View renders the preset/depth selection.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDepthSelect {
		return m.viewDepthSelect()
	}
	return m.viewPresetSelect()
}

func (m SetupModel) viewPresetSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, choice := range presetChoices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, choice.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewDepthSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("BOARD DEPTH", m.width))
	b.WriteString("\n\n")

	for i := 0; i <= config.MaxDepth-config.MinDepth; i++ {
		cursor := "  "
		if i == m.depthCursor {
			cursor = "> "
		}
		depth := config.MinDepth + i
		cells := 1 << depth

		line := fmt.Sprintf("%s%d  (%dx%d unit cells)", cursor, depth, cells, cells)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *SetupSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m SetupModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetup runs the match setup menu and returns the selection.
// A nil selection means the user backed out or quit.
func RunSetup(title string, cfg core.RuntimeConfig) (*SetupSelection, bool, error) {
	model := NewSetupModel(title, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, true, nil
	}

	if m.IsQuitting() {
		return nil, true, nil
	}
	if m.WantsBack() {
		return nil, false, nil
	}

	return m.Selected(), false, nil
}
