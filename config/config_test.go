package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	combo "github.com/inference-gateway/keychord/internal/keybinding/combo"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("logging defaults", func(t *testing.T) {
		assert.False(t, cfg.Logging.Debug)
	})
	t.Run("sequence timeout", func(t *testing.T) {
		assert.Equal(t, 800*time.Millisecond, cfg.Keybindings.SequenceTimeout())
	})
	t.Run("scopes", func(t *testing.T) {
		global, ok := cfg.Keybindings.Scope(ScopeGlobal)
		require.True(t, ok)
		assert.True(t, global.IsActive())

		palette, ok := cfg.Keybindings.Scope(ScopePalette)
		require.True(t, ok)
		assert.False(t, palette.IsActive())
		assert.Greater(t, palette.Priority, global.Priority)
	})
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, cfg.Validate())
	})
}

func TestSequenceTimeoutFallback(t *testing.T) {
	k := KeybindingsConfig{}
	assert.Equal(t, DefaultSequenceTimeoutMs*time.Millisecond, k.SequenceTimeout())

	k.SequenceTimeoutMs = 1500
	assert.Equal(t, 1500*time.Millisecond, k.SequenceTimeout())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSequenceTimeoutMs, cfg.Keybindings.SequenceTimeoutMs)
	assert.Len(t, cfg.Keybindings.Scopes, len(DefaultScopes()))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  debug: true
keybindings:
  sequence_timeout_ms: 1200
  scopes:
    - id: vim
      priority: 5
      active: false
      bindings:
        - keys: ["g g"]
          action: top
        - keys: ["ctrl+s"]
          action: write
          continue: true
          enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, 1200*time.Millisecond, cfg.Keybindings.SequenceTimeout())
	require.Len(t, cfg.Keybindings.Scopes, 1)

	vim := cfg.Keybindings.Scopes[0]
	assert.Equal(t, "vim", vim.ID)
	assert.Equal(t, 5, vim.Priority)
	assert.False(t, vim.IsActive())
	require.Len(t, vim.Bindings, 2)
	assert.True(t, vim.Bindings[0].IsEnabled())
	assert.False(t, vim.Bindings[1].IsEnabled())
	require.NotNil(t, vim.Bindings[1].Continue)
	assert.True(t, *vim.Bindings[1].Continue)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("KEYCHORD_KEYBINDINGS_SEQUENCE_TIMEOUT_MS", "250")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Keybindings.SequenceTimeout())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keybindings: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".keychord", "config.yaml")
	cfg := DefaultConfig()
	cfg.Keybindings.SequenceTimeoutMs = 950

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 950, loaded.Keybindings.SequenceTimeoutMs)
	assert.Equal(t, cfg.Keybindings.Scopes, loaded.Keybindings.Scopes)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Keybindings: KeybindingsConfig{
			Scopes: []ScopeConfig{
				{ID: "a", Bindings: []KeyBindingEntry{
					{Keys: []string{"ctrl+shift"}, Action: "broken"},
					{Keys: nil, Action: "empty"},
				}},
				{ID: "a"},
				{ID: ""},
			},
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, combo.ErrInvalidCombo)
	assert.Contains(t, err.Error(), `action "broken"`)
	assert.Contains(t, err.Error(), `action "empty": no keys`)
	assert.Contains(t, err.Error(), "declared more than once")
	assert.Contains(t, err.Error(), "scope #3")
}
