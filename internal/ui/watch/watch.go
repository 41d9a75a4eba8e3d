package watch

import (
	"context"
	"fmt"
	"strings"

	help "github.com/charmbracelet/bubbles/help"
	key "github.com/charmbracelet/bubbles/key"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	config "github.com/inference-gateway/keychord/config"
	domain "github.com/inference-gateway/keychord/internal/domain"
	keybinding "github.com/inference-gateway/keychord/internal/keybinding"
	logger "github.com/inference-gateway/keychord/internal/logger"
	services "github.com/inference-gateway/keychord/internal/services"
	keys "github.com/inference-gateway/keychord/internal/ui/keys"
	styles "github.com/inference-gateway/keychord/internal/ui/styles"
	icons "github.com/inference-gateway/keychord/internal/ui/styles/icons"
	zap "go.uber.org/zap"
)

const maxEntries = 12

// Entry is one key press as seen by the engine
type Entry struct {
	Combo   string
	Handled bool
	Typing  bool
	Actions []string
}

// ReloadMsg carries a configuration re-read from disk. Err is set when the
// file could not be decoded.
type ReloadMsg struct {
	Config *config.Config
	Err    error
}

type keyMap struct {
	Quit  key.Binding
	Focus key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus input"),
		),
	}
}

// Model feeds terminal key presses through a keybinding engine and shows what
// fired
type Model struct {
	ctx      context.Context
	keymap   *services.KeymapService
	engine   *keybinding.Engine
	recorder *services.ActionRecorder
	status   string
	input    textinput.Model
	keys     keyMap
	help     help.Model
	styles   *styles.CommonStyles
	entries  []Entry
}

// New creates a watch model. recorder must be the resolver keymap was
// created with.
func New(ctx context.Context, keymap *services.KeymapService, recorder *services.ActionRecorder) Model {
	input := textinput.New()
	input.Placeholder = "tab to type here"
	input.Prompt = "> "

	return Model{
		ctx:      ctx,
		keymap:   keymap,
		engine:   keymap.Engine(),
		recorder: recorder,
		input:    input,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   styles.NewCommonStyles(),
	}
}

// Entries returns the recorded presses, oldest first
func (m Model) Entries() []Entry {
	return m.entries
}

// InputValue returns the text typed into the input
func (m Model) InputValue() string {
	return m.input.Value()
}

// Status returns the result of the last configuration reload
func (m Model) Status() string {
	return m.status
}

// Typing reports whether the text input has focus
func (m Model) Typing() bool {
	return m.input.Focused()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case ReloadMsg:
		return m.reload(msg), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.engine.ClearSequenceState()
			if m.input.Focused() {
				m.input.Blur()
				return m, nil
			}
			cmd := m.input.Focus()
			return m, cmd
		}

		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) reload(msg ReloadMsg) Model {
	log := logger.Component(m.ctx, "watch")

	if msg.Err != nil {
		log.Warn("config reload failed", zap.Error(msg.Err))
		m.status = "reload failed: " + msg.Err.Error()
		return m
	}

	if err := m.keymap.Reload(m.ctx, msg.Config.Keybindings); err != nil {
		log.Warn("config reloaded with invalid keys", zap.Error(err))
		m.status = "reloaded with errors: " + err.Error()
		return m
	}

	m.status = "keymap reloaded"
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var target domain.Target
	if m.input.Focused() {
		target = &keys.Element{Tag: "textarea"}
	}

	ev := keys.FromTeaKey(msg, target)
	combo, err := m.engine.ComboFromEvent(ev)
	if err != nil {
		return m, nil
	}

	handled := m.engine.HandleKeydown(ev)
	m.entries = append(m.entries, Entry{
		Combo:   combo,
		Handled: handled,
		Typing:  m.input.Focused(),
		Actions: m.recorder.Drain(),
	})
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}

	if m.input.Focused() && !ev.Consumed() && keys.CanInputHandle(msg) {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("keychord watch"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(m.styles.PlaceholderText.Render("press any key"))
		b.WriteString("\n")
	}
	for _, e := range m.entries {
		actions := m.styles.PlaceholderText.Render("-")
		if len(e.Actions) > 0 {
			actions = m.styles.Action.Render(strings.Join(e.Actions, ", "))
		}
		fmt.Fprintf(&b, " %s %-20s %s\n", icons.Status(e.Handled), m.styles.Combo.Render(e.Combo), actions)
	}

	b.WriteString("\n")
	if m.engine.Pending() {
		b.WriteString(icons.StyledPending() + " " + m.styles.Pending.Render("waiting for next key"))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.PlaceholderText.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
