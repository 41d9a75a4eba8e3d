package keybinding

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	combo "github.com/inference-gateway/keychord/internal/keybinding/combo"
	zap "go.uber.org/zap"
)

// Registration errors
var (
	ErrNilHandler  = errors.New("binding handler cannot be nil")
	ErrDuplicateID = errors.New("binding id already registered")
)

// RegisterScope creates the scope if needed, applies the priority if one is
// given and marks the scope as the most recently activated.
func (e *Engine) RegisterScope(id string, opts ScopeOptions) {
	s, created := e.ensureScope(id)
	if !created {
		e.activationCounter++
		s.activationOrder = e.activationCounter
	}
	if opts.Priority != nil {
		s.priority = *opts.Priority
	}

	e.logger().Debug("scope registered",
		zap.String("scope", id),
		zap.Int("priority", s.priority),
		zap.Uint64("activation_order", s.activationOrder),
	)
}

// UnregisterScope removes the scope and every binding it owns. Unknown ids
// are ignored.
func (e *Engine) UnregisterScope(id string) {
	s, ok := e.scopes[id]
	if !ok {
		return
	}

	for _, list := range s.singles {
		for _, b := range list {
			delete(e.index, b.id)
		}
	}
	for _, list := range s.heads {
		for _, b := range list {
			delete(e.index, b.id)
		}
	}

	delete(e.scopes, id)
	e.ClearSequenceState()

	e.logger().Debug("scope unregistered", zap.String("scope", id))
}

// SetScopeActive toggles a scope, creating it if needed. Activation counts as
// the most recent activation; deactivation drops any pending chord.
func (e *Engine) SetScopeActive(id string, active bool) {
	s, _ := e.ensureScope(id)
	if s.active == active {
		return
	}

	s.active = active
	if active {
		e.activationCounter++
		s.activationOrder = e.activationCounter
	} else {
		e.ClearSequenceState()
	}

	e.logger().Debug("scope toggled", zap.String("scope", id), zap.Bool("active", active))
}

// RegisterBinding binds a combo ("ctrl+s") or sequence ("g g") to handler
// under scopeID, creating the scope if needed.
func (e *Engine) RegisterBinding(scopeID, text string, handler Handler, opts Options) (*Registration, error) {
	if handler == nil {
		return nil, fmt.Errorf("%w: %q in scope %q", ErrNilHandler, text, scopeID)
	}

	steps, err := combo.NormalizeSequence(text)
	if err != nil {
		return nil, err
	}

	id := e.newID()
	if _, exists := e.index[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	s, _ := e.ensureScope(scopeID)

	e.registrationCounter++
	b := &binding{
		id:              id,
		handler:         handler,
		options:         opts,
		registeredOrder: e.registrationCounter,
	}

	entry := indexEntry{scopeID: scopeID, key: steps[0]}
	if len(steps) == 1 {
		b.combo = steps[0]
		entry.kind = kindSingle
		s.singles[steps[0]] = append(s.singles[steps[0]], b)
	} else {
		b.sequence = steps
		entry.kind = kindSequence
		s.heads[steps[0]] = append(s.heads[steps[0]], b)
	}
	e.index[id] = entry

	e.logger().Debug("binding registered",
		zap.String("scope", scopeID),
		zap.String("binding", id),
		zap.Strings("steps", steps),
	)

	return &Registration{ID: id, engine: e}, nil
}

// UnregisterBinding removes a binding by id and drops any pending chord.
// Unknown ids are ignored.
func (e *Engine) UnregisterBinding(id string) {
	entry, ok := e.index[id]
	if !ok {
		return
	}
	delete(e.index, id)

	if s, ok := e.scopes[entry.scopeID]; ok {
		registry := s.singles
		if entry.kind == kindSequence {
			registry = s.heads
		}

		list := slices.DeleteFunc(registry[entry.key], func(b *binding) bool {
			return b.id == id
		})
		if len(list) == 0 {
			delete(registry, entry.key)
		} else {
			registry[entry.key] = list
		}
	}

	e.ClearSequenceState()
	e.logger().Debug("binding unregistered", zap.String("binding", id))
}

// Scopes lists every scope, active or not, in resolution order
func (e *Engine) Scopes() []ScopeInfo {
	all := make([]*scope, 0, len(e.scopes))
	for _, s := range e.scopes {
		all = append(all, s)
	}
	slices.SortFunc(all, func(a, b *scope) int {
		return -compareScopes(a, b)
	})

	infos := make([]ScopeInfo, 0, len(all))
	for _, s := range all {
		count := 0
		for _, list := range s.singles {
			count += len(list)
		}
		for _, list := range s.heads {
			count += len(list)
		}
		infos = append(infos, ScopeInfo{
			ID:              s.id,
			Priority:        s.priority,
			Active:          s.active,
			ActivationOrder: s.activationOrder,
			Bindings:        count,
		})
	}
	return infos
}

// Bindings lists a scope's bindings in registration order
func (e *Engine) Bindings(scopeID string) []BindingInfo {
	s, ok := e.scopes[scopeID]
	if !ok {
		return nil
	}

	var infos []BindingInfo
	collect := func(registry map[string][]*binding) {
		for _, list := range registry {
			for _, b := range list {
				keys := b.combo
				if b.kind() == kindSequence {
					keys = strings.Join(b.sequence, " ")
				}
				infos = append(infos, BindingInfo{
					ID:              b.id,
					Scope:           scopeID,
					Keys:            keys,
					Sequence:        b.kind() == kindSequence,
					Action:          b.options.Action,
					Description:     b.options.Description,
					AllowWhenTyping: b.options.AllowWhenTyping,
					RegisteredOrder: b.registeredOrder,
				})
			}
		}
	}
	collect(s.singles)
	collect(s.heads)

	slices.SortFunc(infos, func(a, b BindingInfo) int {
		return cmp.Compare(a.RegisteredOrder, b.RegisteredOrder)
	})
	return infos
}

// HasScope reports whether a scope with id is registered
func (e *Engine) HasScope(id string) bool {
	_, ok := e.scopes[id]
	return ok
}

func (e *Engine) ensureScope(id string) (*scope, bool) {
	if s, ok := e.scopes[id]; ok {
		return s, false
	}

	e.activationCounter++
	s := &scope{
		id:              id,
		active:          true,
		activationOrder: e.activationCounter,
		singles:         make(map[string][]*binding),
		heads:           make(map[string][]*binding),
	}
	e.scopes[id] = s
	return s, true
}
