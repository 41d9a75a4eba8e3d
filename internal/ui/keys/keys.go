package keys

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	domain "github.com/inference-gateway/keychord/internal/domain"
	combo "github.com/inference-gateway/keychord/internal/keybinding/combo"
)

// InputHandlerKeys are keys that can be handled by text input components
var InputHandlerKeys = []string{
	"space", " ", "backspace", "delete",
	"left", "right", "home", "end",
	"ctrl+a", "ctrl+e", "ctrl+u", "ctrl+k", "ctrl+w",
}

// Element is a plain focus target
type Element struct {
	Tag             string
	ContentEditable bool
	Attrs           map[string]string
}

// TagName implements domain.Target
func (e *Element) TagName() string {
	return strings.ToLower(e.Tag)
}

// IsContentEditable implements domain.Target
func (e *Element) IsContentEditable() bool {
	return e.ContentEditable
}

// Attribute implements domain.Target
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// Event is a key press that records whether it was consumed
type Event struct {
	Name     string
	MetaKey  bool
	CtrlKey  bool
	AltKey   bool
	ShiftKey bool
	Origin   domain.Target

	DefaultPrevented   bool
	PropagationStopped bool
}

func (e *Event) Key() string { return e.Name }

func (e *Event) Meta() bool { return e.MetaKey }

func (e *Event) Ctrl() bool { return e.CtrlKey }

func (e *Event) Alt() bool { return e.AltKey }

func (e *Event) Shift() bool { return e.ShiftKey }

func (e *Event) PreventDefault() { e.DefaultPrevented = true }

func (e *Event) StopPropagation() { e.PropagationStopped = true }

// Target returns the originating element. A nil *Element is reported as a
// nil interface so guards can compare against nil.
func (e *Event) Target() domain.Target {
	if e.Origin == nil {
		return nil
	}
	if el, ok := e.Origin.(*Element); ok && el == nil {
		return nil
	}
	return e.Origin
}

// Consumed reports whether anything marked the event as handled
func (e *Event) Consumed() bool {
	return e.DefaultPrevented || e.PropagationStopped
}

// ParseEvent builds an event from a combo descriptor such as "ctrl+shift+k".
func ParseEvent(text string, target domain.Target) (*Event, error) {
	canonical, err := combo.Normalize(text)
	if err != nil {
		return nil, err
	}

	mods, key := combo.Split(canonical)
	ev := &Event{Name: key, Origin: target}
	for _, mod := range mods {
		switch mod {
		case combo.Meta:
			ev.MetaKey = true
		case combo.Ctrl:
			ev.CtrlKey = true
		case combo.Alt:
			ev.AltKey = true
		case combo.Shift:
			ev.ShiftKey = true
		}
	}

	return ev, nil
}

// FromTeaKey converts a bubbletea key message into an event delivered to target.
func FromTeaKey(msg tea.KeyMsg, target domain.Target) *Event {
	ev := &Event{Origin: target}
	s := msg.String()

	for {
		idx := strings.Index(s, "+")
		if idx <= 0 || idx == len(s)-1 {
			break
		}

		matched := true
		switch s[:idx] {
		case "ctrl":
			ev.CtrlKey = true
		case "alt":
			ev.AltKey = true
		case "shift":
			ev.ShiftKey = true
		case "meta", "super":
			ev.MetaKey = true
		default:
			matched = false
		}
		if !matched {
			break
		}
		s = s[idx+1:]
	}

	if msg.Alt && !ev.AltKey {
		ev.AltKey = true
	}

	ev.Name = s
	return ev
}

// IsPrintableCharacter checks if a key string represents a single printable character
func IsPrintableCharacter(keyStr string) bool {
	return len(keyStr) == 1 && keyStr[0] >= ' ' && keyStr[0] <= '~'
}

// CanInputHandle checks if a key can be handled by input components
func CanInputHandle(key tea.KeyMsg) bool {
	keyStr := key.String()

	if IsPrintableCharacter(keyStr) {
		return true
	}

	return slices.Contains(InputHandlerKeys, keyStr)
}
