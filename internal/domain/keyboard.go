package domain

//go:generate go tool counterfeiter -generate

// KeyEvent is a single physical key press delivered by the host input layer.
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_key_event.go . KeyEvent
type KeyEvent interface {
	// Key is the host's name for the pressed key ("k", "Enter", "ArrowUp").
	Key() string

	Meta() bool
	Ctrl() bool
	Alt() bool
	Shift() bool

	// PreventDefault suppresses the host's default behavior for the key.
	PreventDefault()
	// StopPropagation stops the host from delivering the key to other listeners.
	StopPropagation()

	// Target is the focused element the key was delivered to, or nil.
	Target() Target
}

// Target identifies the focused element that originated a key event
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_target.go . Target
type Target interface {
	// TagName is the lower-case element kind ("input", "textarea", "div").
	TagName() string
	IsContentEditable() bool
	Attribute(name string) (string, bool)
}

// TypingGuard reports whether an event was delivered to a text-editing surface
type TypingGuard func(event KeyEvent) bool
