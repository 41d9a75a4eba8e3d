package keybinding

import (
	"strings"

	domain "github.com/inference-gateway/keychord/internal/domain"
)

// TypingAttribute on a target forces the typing answer: "true" or "false"
const TypingAttribute = "data-keychord-typing"

// input types that are controls rather than text fields
var nonTextInputTypes = map[string]bool{
	"button":   true,
	"checkbox": true,
	"color":    true,
	"file":     true,
	"image":    true,
	"radio":    true,
	"range":    true,
	"reset":    true,
	"submit":   true,
}

// DefaultTypingGuard treats form controls and content-editable targets as
// typing surfaces unless TypingAttribute says otherwise.
func DefaultTypingGuard(event domain.KeyEvent) bool {
	target := event.Target()
	if target == nil {
		return false
	}

	if v, ok := target.Attribute(TypingAttribute); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true
		case "false":
			return false
		}
	}

	if target.IsContentEditable() {
		return true
	}

	switch target.TagName() {
	case "textarea", "select":
		return true
	case "input":
		t, _ := target.Attribute("type")
		return !nonTextInputTypes[strings.ToLower(t)]
	}

	return false
}

func (e *Engine) canRun(event domain.KeyEvent, b *binding) bool {
	if b.options.When != nil && !b.options.When(event) {
		return false
	}
	if !b.options.AllowWhenTyping && e.isTyping(event) {
		return false
	}
	return true
}

func (e *Engine) isTyping(event domain.KeyEvent) bool {
	if e.typingGuard == nil {
		return DefaultTypingGuard(event)
	}
	return e.typingGuard(event)
}
