package keybinding

import (
	"time"

	domain "github.com/inference-gateway/keychord/internal/domain"
)

// DefaultSequenceTimeout is how long a pending chord waits for its next step
const DefaultSequenceTimeout = 800 * time.Millisecond

// Handler runs when its binding matches. Returning nil means "handled, use
// the binding's option defaults".
type Handler func(event domain.KeyEvent) Result

// Result is what a handler reports back. It is either nil, Handled or Outcome.
type Result interface {
	isResult()
}

// Handled is the boolean result shape. Handled(false) declines the key and
// lets resolution keep searching.
type Handled bool

func (Handled) isResult() {}

// Outcome is the structured result shape. Nil fields fall back to the
// binding's options; Handled defaults to true.
type Outcome struct {
	Handled         *bool
	PreventDefault  *bool
	StopPropagation *bool
	Continue        *bool
}

func (Outcome) isResult() {}

// Flag returns a pointer to v, for filling Outcome and Options fields
func Flag(v bool) *bool {
	return &v
}

// Options tune how a binding participates in resolution
type Options struct {
	// When, if set, must return true for the binding to run.
	When func(event domain.KeyEvent) bool

	// PreventDefault defaults to true.
	PreventDefault *bool
	// StopPropagation defaults to true.
	StopPropagation *bool
	// Continue defaults to false.
	Continue *bool

	// AllowWhenTyping lets the binding run while a text-editing surface is focused.
	AllowWhenTyping bool

	// Action and Description are informational only.
	Action      string
	Description string
}

// ScopeOptions configure a scope on registration
type ScopeOptions struct {
	// Priority is left unchanged on an existing scope when nil.
	Priority *int
}

// Priority returns ScopeOptions with the given priority
func Priority(p int) ScopeOptions {
	return ScopeOptions{Priority: &p}
}

// Registration is returned by RegisterBinding
type Registration struct {
	ID string

	engine *Engine
}

// Dispose unregisters the binding. It is safe to call more than once.
func (r *Registration) Dispose() {
	if r == nil || r.engine == nil {
		return
	}
	r.engine.UnregisterBinding(r.ID)
}

// ScopeInfo describes a registered scope
type ScopeInfo struct {
	ID              string
	Priority        int
	Active          bool
	ActivationOrder uint64
	Bindings        int
}

// BindingInfo describes a registered binding
type BindingInfo struct {
	ID              string
	Scope           string
	Keys            string
	Sequence        bool
	Action          string
	Description     string
	AllowWhenTyping bool
	RegisteredOrder uint64
}

type bindingKind int

const (
	kindSingle bindingKind = iota
	kindSequence
)

type binding struct {
	id              string
	handler         Handler
	options         Options
	combo           string
	sequence        []string
	registeredOrder uint64
}

func (b *binding) kind() bindingKind {
	if b.sequence != nil {
		return kindSequence
	}
	return kindSingle
}

type scope struct {
	id              string
	priority        int
	active          bool
	activationOrder uint64
	singles         map[string][]*binding
	heads           map[string][]*binding
}

type indexEntry struct {
	scopeID string
	kind    bindingKind
	key     string
}

type candidate struct {
	scope   *scope
	binding *binding
	next    int
}

type chord struct {
	startedAt  time.Time
	candidates []candidate
}
