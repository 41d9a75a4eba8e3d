package config

// Scope ids shipped with the default configuration
const (
	ScopeGlobal  = "global"
	ScopeEditor  = "editor"
	ScopePalette = "palette"
)

// DefaultScopes returns the default keybinding scopes. A user config that
// declares keybindings.scopes replaces them entirely.
func DefaultScopes() []ScopeConfig {
	inactive := false
	proceed := true

	return []ScopeConfig{
		{
			ID:       ScopeGlobal,
			Priority: 0,
			Bindings: []KeyBindingEntry{
				{Keys: []string{"ctrl+s"}, Action: "save", Description: "save the current document"},
				{Keys: []string{"esc"}, Action: "cancel", Description: "cancel current operation", AllowWhenTyping: true},
				{Keys: []string{"shift+/"}, Action: "toggle_help", Description: "toggle help"},
				{Keys: []string{"ctrl+k ctrl+s"}, Action: "show_shortcuts", Description: "list keyboard shortcuts"},
				{Keys: []string{"g g"}, Action: "scroll_to_top", Description: "scroll to top"},
				{Keys: []string{"shift+g"}, Action: "scroll_to_bottom", Description: "scroll to bottom"},
				{Keys: []string{"ctrl+p", "cmd+p"}, Action: "open_palette", Description: "open the command palette"},
			},
		},
		{
			ID:       ScopeEditor,
			Priority: 10,
			Bindings: []KeyBindingEntry{
				{Keys: []string{"ctrl+s"}, Action: "format_document", Description: "format before saving", Continue: &proceed},
				{Keys: []string{"ctrl+/"}, Action: "toggle_comment", Description: "toggle line comment", AllowWhenTyping: true},
				{Keys: []string{"ctrl+k ctrl+c"}, Action: "comment_block", Description: "comment selection", AllowWhenTyping: true},
				{Keys: []string{"ctrl+k ctrl+u"}, Action: "uncomment_block", Description: "uncomment selection", AllowWhenTyping: true},
			},
		},
		{
			ID:       ScopePalette,
			Priority: 20,
			Active:   &inactive,
			Bindings: []KeyBindingEntry{
				{Keys: []string{"esc"}, Action: "close_palette", Description: "close the command palette", AllowWhenTyping: true},
				{Keys: []string{"enter"}, Action: "run_command", Description: "run the selected command", AllowWhenTyping: true},
				{Keys: []string{"up", "ctrl+p"}, Action: "previous_command", Description: "select previous command", AllowWhenTyping: true},
				{Keys: []string{"down", "ctrl+n"}, Action: "next_command", Description: "select next command", AllowWhenTyping: true},
			},
		},
	}
}
