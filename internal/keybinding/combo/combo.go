package combo

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	domain "github.com/inference-gateway/keychord/internal/domain"
)

// Modifier token names in canonical order
const (
	Meta  = "Meta"
	Ctrl  = "Ctrl"
	Alt   = "Alt"
	Shift = "Shift"
)

// Key tokens with a fixed canonical spelling
const (
	Escape = "Escape"
	Space  = "Space"
	Plus   = "Plus"
)

var modifierOrder = []string{Meta, Ctrl, Alt, Shift}

var aliases = map[string]string{
	"cmd":     Meta,
	"command": Meta,
	"meta":    Meta,
	"ctrl":    Ctrl,
	"control": Ctrl,
	"alt":     Alt,
	"option":  Alt,
	"shift":   Shift,
	"esc":     Escape,
	"space":   Space,
}

// Normalize parses a combo descriptor such as "cmd+k" and returns its
// canonical form ("Meta+K"). Modifiers are always emitted in the order
// Meta, Ctrl, Alt, Shift followed by the key.
func Normalize(text string) (string, error) {
	mods := make(map[string]bool, len(modifierOrder))
	key := ""

	for _, raw := range strings.Split(text, "+") {
		token := canonicalToken(strings.TrimSpace(raw))
		if token == "" {
			continue
		}
		if IsModifier(token) {
			mods[token] = true
			continue
		}
		key = token
	}

	if key == "" {
		return "", fmt.Errorf("%w: %q has no key", ErrInvalidCombo, text)
	}

	parts := make([]string, 0, len(mods)+1)
	for _, mod := range modifierOrder {
		if mods[mod] {
			parts = append(parts, mod)
		}
	}
	parts = append(parts, key)

	return strings.Join(parts, "+"), nil
}

// NormalizeSequence splits a sequence descriptor such as "Ctrl+K Ctrl+S" on
// whitespace and normalizes every step.
func NormalizeSequence(text string) ([]string, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q has no steps", ErrInvalidSequence, text)
	}

	steps := make([]string, 0, len(fields))
	for i, field := range fields {
		step, err := Normalize(field)
		if err != nil {
			return nil, fmt.Errorf("step %d of %q: %w", i+1, text, err)
		}
		steps = append(steps, step)
	}

	return steps, nil
}

// FromEvent builds the canonical combo for a key event.
func FromEvent(event domain.KeyEvent) (string, error) {
	var b strings.Builder

	if event.Meta() {
		b.WriteString("meta+")
	}
	if event.Ctrl() {
		b.WriteString("ctrl+")
	}
	if event.Alt() {
		b.WriteString("alt+")
	}
	if event.Shift() {
		b.WriteString("shift+")
	}

	switch key := event.Key(); key {
	case "+":
		b.WriteString(Plus)
	case " ":
		b.WriteString(Space)
	default:
		b.WriteString(key)
	}

	return Normalize(b.String())
}

// IsModifier reports whether a canonical token is a modifier
func IsModifier(token string) bool {
	switch token {
	case Meta, Ctrl, Alt, Shift:
		return true
	}
	return false
}

// Split breaks a canonical combo into its modifiers and key.
func Split(canonical string) (mods []string, key string) {
	parts := strings.Split(canonical, "+")
	return parts[:len(parts)-1], parts[len(parts)-1]
}

func canonicalToken(token string) string {
	if token == "" {
		return ""
	}

	if alias, ok := aliases[strings.ToLower(token)]; ok {
		return alias
	}

	if utf8.RuneCountInString(token) == 1 {
		return strings.ToUpper(token)
	}

	first, size := utf8.DecodeRuneInString(token)
	return string(unicode.ToUpper(first)) + strings.ToLower(token[size:])
}
