package combo_test

import (
	"testing"

	combo "github.com/inference-gateway/keychord/internal/keybinding/combo"
	mocks "github.com/inference-gateway/keychord/tests/mocks/domain"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single letter", input: "k", expected: "K"},
		{name: "cmd alias", input: "cmd+k", expected: "Meta+K"},
		{name: "command alias", input: "Command+k", expected: "Meta+K"},
		{name: "control alias", input: "control+s", expected: "Ctrl+S"},
		{name: "option alias", input: "option+x", expected: "Alt+X"},
		{name: "modifier order", input: "shift+ctrl+k", expected: "Ctrl+Shift+K"},
		{name: "all modifiers", input: "shift+alt+ctrl+meta+p", expected: "Meta+Ctrl+Alt+Shift+P"},
		{name: "esc alias", input: "esc", expected: "Escape"},
		{name: "space alias", input: "ctrl+SPACE", expected: "Ctrl+Space"},
		{name: "named key capitalized", input: "ENTER", expected: "Enter"},
		{name: "function key", input: "alt+f4", expected: "Alt+F4"},
		{name: "surrounding whitespace", input: " ctrl + s ", expected: "Ctrl+S"},
		{name: "duplicate modifier", input: "ctrl+ctrl+s", expected: "Ctrl+S"},
		{name: "punctuation key", input: "shift+/", expected: "Shift+/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := combo.Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"cmd+k", "shift+ctrl+k", "esc", "ctrl+space", "alt+PageDown", "g", "meta+alt+shift+ctrl+z"}

	for _, input := range inputs {
		once, err := combo.Normalize(input)
		require.NoError(t, err)

		twice, err := combo.Normalize(once)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "normalizing %q twice", input)
	}
}

func TestNormalizeModifierOrderIndependent(t *testing.T) {
	a, err := combo.Normalize("shift+ctrl+k")
	require.NoError(t, err)
	b, err := combo.Normalize("ctrl+shift+k")
	require.NoError(t, err)

	assert.Equal(t, "Ctrl+Shift+K", a)
	assert.Equal(t, a, b)
}

func TestNormalizeRejectsModifierOnly(t *testing.T) {
	for _, input := range []string{"ctrl+shift", "meta", "", "+", "ctrl+"} {
		_, err := combo.Normalize(input)
		assert.ErrorIs(t, err, combo.ErrInvalidCombo, "input %q", input)
	}
}

func TestNormalizeSequence(t *testing.T) {
	steps, err := combo.NormalizeSequence("Ctrl+K   ctrl+s")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ctrl+K", "Ctrl+S"}, steps)

	steps, err = combo.NormalizeSequence("g g")
	require.NoError(t, err)
	assert.Equal(t, []string{"G", "G"}, steps)

	steps, err = combo.NormalizeSequence("cmd+k")
	require.NoError(t, err)
	assert.Equal(t, []string{"Meta+K"}, steps)
}

func TestNormalizeSequenceErrors(t *testing.T) {
	_, err := combo.NormalizeSequence("   ")
	assert.ErrorIs(t, err, combo.ErrInvalidSequence)

	_, err = combo.NormalizeSequence("ctrl+k shift")
	assert.ErrorIs(t, err, combo.ErrInvalidCombo)
	assert.Contains(t, err.Error(), "step 2")
}

func TestFromEvent(t *testing.T) {
	ev := &mocks.FakeKeyEvent{}
	ev.KeyReturns("k")
	ev.CtrlReturns(true)
	ev.ShiftReturns(true)

	got, err := combo.FromEvent(ev)
	require.NoError(t, err)
	assert.Equal(t, "Ctrl+Shift+K", got)
	assert.Equal(t, 1, ev.KeyCallCount())
}

func TestFromEventSpecialKeys(t *testing.T) {
	tests := []struct {
		key      string
		meta     bool
		expected string
	}{
		{key: " ", expected: "Space"},
		{key: "+", meta: true, expected: "Meta+Plus"},
		{key: "Escape", expected: "Escape"},
		{key: "ArrowUp", expected: "Arrowup"},
	}

	for _, tt := range tests {
		ev := &mocks.FakeKeyEvent{}
		ev.KeyReturns(tt.key)
		ev.MetaReturns(tt.meta)

		got, err := combo.FromEvent(ev)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

func TestFromEventModifierOnly(t *testing.T) {
	ev := &mocks.FakeKeyEvent{}
	ev.KeyReturns("Control")
	ev.CtrlReturns(true)

	_, err := combo.FromEvent(ev)
	assert.ErrorIs(t, err, combo.ErrInvalidCombo)
}

func TestSplit(t *testing.T) {
	mods, key := combo.Split("Meta+Ctrl+K")
	assert.Equal(t, []string{"Meta", "Ctrl"}, mods)
	assert.Equal(t, "K", key)

	mods, key = combo.Split("Escape")
	assert.Empty(t, mods)
	assert.Equal(t, "Escape", key)
}
