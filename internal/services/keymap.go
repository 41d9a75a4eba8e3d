package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	config "github.com/inference-gateway/keychord/config"
	domain "github.com/inference-gateway/keychord/internal/domain"
	keybinding "github.com/inference-gateway/keychord/internal/keybinding"
	logger "github.com/inference-gateway/keychord/internal/logger"
	zap "go.uber.org/zap"
)

// ActionResolver maps a configured action name to the handler that runs it
type ActionResolver interface {
	Resolve(action string) (keybinding.Handler, bool)
}

// ActionMap is an ActionResolver backed by a fixed table
type ActionMap map[string]keybinding.Handler

// Resolve implements ActionResolver
func (m ActionMap) Resolve(action string) (keybinding.Handler, bool) {
	h, ok := m[action]
	return h, ok && h != nil
}

// ActionRecorder resolves every action to a handler that records its name.
// It backs the replay runner and the watch view.
type ActionRecorder struct {
	mu    sync.Mutex
	fired []string
}

// NewActionRecorder creates an empty recorder
func NewActionRecorder() *ActionRecorder {
	return &ActionRecorder{}
}

// Resolve implements ActionResolver
func (r *ActionRecorder) Resolve(action string) (keybinding.Handler, bool) {
	return func(domain.KeyEvent) keybinding.Result {
		r.mu.Lock()
		r.fired = append(r.fired, action)
		r.mu.Unlock()
		return nil
	}, true
}

// Drain returns the actions fired since the last call and resets the list
func (r *ActionRecorder) Drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	fired := r.fired
	r.fired = nil
	return fired
}

// KeymapService loads configured scopes and bindings into an engine
type KeymapService struct {
	engine   *keybinding.Engine
	resolver ActionResolver

	registrations []*keybinding.Registration
	// scopes created by Apply; scopes that already existed are left in place on Reset
	scopes []string
}

// NewKeymapService creates a keymap service for engine
func NewKeymapService(engine *keybinding.Engine, resolver ActionResolver) *KeymapService {
	return &KeymapService{
		engine:   engine,
		resolver: resolver,
	}
}

// Engine returns the engine the keymap is applied to
func (s *KeymapService) Engine() *keybinding.Engine {
	return s.engine
}

// Apply registers every scope of cfg and its enabled bindings. Bindings with
// an unknown action are skipped. Keys that fail to parse are collected and
// returned together; the remaining bindings are still registered.
func (s *KeymapService) Apply(ctx context.Context, cfg config.KeybindingsConfig) error {
	log := logger.Component(ctx, "keymap")
	var errs []error

	for _, sc := range cfg.Scopes {
		if !s.engine.HasScope(sc.ID) {
			s.scopes = append(s.scopes, sc.ID)
		}
		s.engine.RegisterScope(sc.ID, keybinding.Priority(sc.Priority))
		s.engine.SetScopeActive(sc.ID, sc.IsActive())

		for _, entry := range sc.Bindings {
			if !entry.IsEnabled() {
				log.Debug("binding disabled", zap.String("scope", sc.ID), zap.String("action", entry.Action))
				continue
			}

			handler, ok := s.resolver.Resolve(entry.Action)
			if !ok {
				log.Warn("unknown action, skipping binding",
					zap.String("scope", sc.ID),
					zap.String("action", entry.Action),
					zap.Strings("keys", entry.Keys),
				)
				continue
			}

			for _, keys := range entry.Keys {
				reg, err := s.engine.RegisterBinding(sc.ID, keys, handler, optionsFor(entry))
				if err != nil {
					errs = append(errs, fmt.Errorf("scope %q, action %q: %w", sc.ID, entry.Action, err))
					continue
				}
				s.registrations = append(s.registrations, reg)
			}
		}
	}

	log.Debug("keymap applied",
		zap.Int("scopes", len(cfg.Scopes)),
		zap.Int("bindings", len(s.registrations)),
		zap.Int("errors", len(errs)),
	)

	return errors.Join(errs...)
}

// Reload removes everything a previous Apply registered and applies cfg
func (s *KeymapService) Reload(ctx context.Context, cfg config.KeybindingsConfig) error {
	s.Reset()
	return s.Apply(ctx, cfg)
}

// Reset disposes the bindings this service registered and the scopes it
// created. Bindings registered elsewhere survive.
func (s *KeymapService) Reset() {
	for _, reg := range s.registrations {
		reg.Dispose()
	}
	for _, id := range s.scopes {
		s.engine.UnregisterScope(id)
	}
	s.registrations = nil
	s.scopes = nil
}

func optionsFor(entry config.KeyBindingEntry) keybinding.Options {
	return keybinding.Options{
		PreventDefault:  entry.PreventDefault,
		StopPropagation: entry.StopPropagation,
		Continue:        entry.Continue,
		AllowWhenTyping: entry.AllowWhenTyping,
		Action:          entry.Action,
		Description:     entry.Description,
	}
}
