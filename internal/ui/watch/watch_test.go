package watch

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	config "github.com/inference-gateway/keychord/config"
	keybinding "github.com/inference-gateway/keychord/internal/keybinding"
	logger "github.com/inference-gateway/keychord/internal/logger"
	services "github.com/inference-gateway/keychord/internal/services"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	recorder := services.NewActionRecorder()
	engine := keybinding.New()
	keymap := services.NewKeymapService(engine, recorder)
	require.NoError(t, keymap.Apply(logger.NopContext(), config.DefaultConfig().Keybindings))
	return New(logger.NopContext(), keymap, recorder)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWatchRecordsFiredActions(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Len(t, m.Entries(), 1)
	assert.Equal(t, Entry{Combo: "Ctrl+S", Handled: true, Actions: []string{"format_document", "save"}}, m.Entries()[0])

	m, _ = send(t, m, runes("g"))
	assert.Contains(t, m.View(), "waiting for next key")

	m, _ = send(t, m, runes("g"))
	assert.Equal(t, []string{"scroll_to_top"}, m.Entries()[2].Actions)
	assert.NotContains(t, m.View(), "waiting for next key")
}

func TestWatchTypingGuard(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.Typing())

	m, _ = send(t, m, runes("g"))
	m, _ = send(t, m, runes("g"))
	assert.Equal(t, "gg", m.InputValue())
	for _, e := range m.Entries() {
		assert.False(t, e.Handled)
		assert.True(t, e.Typing)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	last := m.Entries()[len(m.Entries())-1]
	assert.Equal(t, []string{"cancel"}, last.Actions)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.Typing())
}

func TestWatchForwardsOnlyInputKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = send(t, m, runes("a"))
	m, _ = send(t, m, runes("b"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Equal(t, "ab", m.InputValue())

	last := m.Entries()[len(m.Entries())-1]
	assert.Equal(t, "Ctrl+D", last.Combo)
	assert.False(t, last.Handled)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "b", m.InputValue())
}

func TestWatchQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWatchReload(t *testing.T) {
	m := newTestModel(t)

	cfg := config.DefaultConfig()
	cfg.Keybindings.Scopes = []config.ScopeConfig{{
		ID:       "custom",
		Bindings: []config.KeyBindingEntry{{Keys: []string{"x"}, Action: "explode"}},
	}}

	m, _ = send(t, m, ReloadMsg{Config: cfg})
	assert.Equal(t, "keymap reloaded", m.Status())

	m, _ = send(t, m, runes("x"))
	assert.Equal(t, []string{"explode"}, m.Entries()[0].Actions)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Empty(t, m.Entries()[1].Actions)

	m, _ = send(t, m, ReloadMsg{Err: assert.AnError})
	assert.Contains(t, m.Status(), "reload failed")
	assert.Contains(t, m.View(), "reload failed")
}

func TestWatchKeepsRecentEntries(t *testing.T) {
	m := newTestModel(t)

	for range maxEntries + 5 {
		m, _ = send(t, m, runes("x"))
	}
	assert.Len(t, m.Entries(), maxEntries)
}
