package keybinding

import (
	"cmp"
	"slices"
	"time"

	uuid "github.com/google/uuid"
	domain "github.com/inference-gateway/keychord/internal/domain"
	combo "github.com/inference-gateway/keychord/internal/keybinding/combo"
	zap "go.uber.org/zap"
)

// Engine resolves key events against prioritized scopes of bindings.
//
// An Engine is not safe for concurrent use. HandleKeydown runs to completion
// before the next event, and registrations happen between events.
type Engine struct {
	scopes map[string]*scope
	index  map[string]indexEntry

	// chord is non-nil while a sequence is partially matched
	chord *chord

	activationCounter   uint64
	registrationCounter uint64

	sequenceTimeout time.Duration
	now             func() time.Time
	newID           func() string
	typingGuard     domain.TypingGuard
	log             *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithSequenceTimeout sets how long a pending chord waits for its next step
func WithSequenceTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.sequenceTimeout = d
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator replaces the binding id source
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// WithTypingGuard replaces DefaultTypingGuard
func WithTypingGuard(guard domain.TypingGuard) Option {
	return func(e *Engine) {
		e.typingGuard = guard
	}
}

// WithLogger sets the logger used for debug tracing
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New creates an engine with no scopes
func New(opts ...Option) *Engine {
	e := &Engine{
		scopes:          make(map[string]*scope),
		index:           make(map[string]indexEntry),
		sequenceTimeout: DefaultSequenceTimeout,
		now:             time.Now,
		newID:           uuid.NewString,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) logger() *zap.Logger {
	if e.log != nil {
		return e.log
	}
	return zap.L()
}

// HandleKeydown resolves one key press and reports whether it was handled.
func (e *Engine) HandleKeydown(event domain.KeyEvent) bool {
	step, err := combo.FromEvent(event)
	if err != nil {
		// lone modifier presses never take part in resolution
		e.logger().Debug("ignoring key without combo", zap.String("key", event.Key()))
		return false
	}

	now := e.now()
	if e.chord != nil && now.Sub(e.chord.startedAt) > e.sequenceTimeout {
		e.logger().Debug("chord expired", zap.Duration("age", now.Sub(e.chord.startedAt)))
		e.chord = nil
	}

	if e.chord != nil {
		if handled, done := e.advanceChord(event, step); done {
			return handled
		}
	}

	if e.startChord(event, step, now) {
		return true
	}

	return e.resolveSingle(event, step)
}

// advanceChord feeds step to the pending chord. done is false when the chord
// was abandoned and the step must be resolved as a fresh key.
func (e *Engine) advanceChord(event domain.KeyEvent, step string) (handled, done bool) {
	var advanced []candidate
	for _, c := range e.chord.candidates {
		if c.binding.sequence[c.next] != step || !e.canRun(event, c.binding) {
			continue
		}
		advanced = append(advanced, candidate{scope: c.scope, binding: c.binding, next: c.next + 1})
	}

	if len(advanced) == 0 {
		e.logger().Debug("chord abandoned", zap.String("step", step))
		e.chord = nil
		return false, false
	}

	var completed []candidate
	for _, c := range advanced {
		if c.next >= len(c.binding.sequence) {
			completed = append(completed, c)
		}
	}

	if len(completed) > 0 {
		winner := slices.MaxFunc(completed, compareCandidates)
		e.chord = nil

		e.logger().Debug("chord completed",
			zap.String("scope", winner.scope.id),
			zap.String("binding", winner.binding.id),
			zap.Strings("sequence", winner.binding.sequence),
		)

		d := interpret(winner.binding.handler(event), winner.binding.options)
		d.apply(event)
		return d.handled, true
	}

	e.chord.candidates = advanced
	e.logger().Debug("chord advanced", zap.String("step", step), zap.Int("candidates", len(advanced)))
	consume(event)
	return true, true
}

func (e *Engine) startChord(event domain.KeyEvent, step string, now time.Time) bool {
	var started []candidate
	for _, s := range e.activeScopes() {
		for _, b := range s.heads[step] {
			if e.canRun(event, b) {
				started = append(started, candidate{scope: s, binding: b, next: 1})
			}
		}
	}

	if len(started) == 0 {
		return false
	}

	e.chord = &chord{startedAt: now, candidates: started}
	e.logger().Debug("chord started", zap.String("step", step), zap.Int("candidates", len(started)))
	consume(event)
	return true
}

func (e *Engine) resolveSingle(event domain.KeyEvent, step string) bool {
	anyHandled := false

	for _, s := range e.activeScopes() {
		// an earlier handler may have deactivated or removed this scope
		if !s.active || e.scopes[s.id] != s {
			continue
		}
		list := slices.Clone(s.singles[step])
		for i := len(list) - 1; i >= 0; i-- {
			b := list[i]
			if _, live := e.index[b.id]; !live {
				continue
			}
			if !e.canRun(event, b) {
				continue
			}

			d := interpret(b.handler(event), b.options)
			d.apply(event)

			e.logger().Debug("binding fired",
				zap.String("scope", s.id),
				zap.String("binding", b.id),
				zap.String("combo", step),
				zap.Bool("handled", d.handled),
				zap.Bool("continue", d.proceed),
			)

			if !d.proceed {
				return true
			}
			anyHandled = anyHandled || d.handled
		}
	}

	return anyHandled
}

// activeScopes returns active scopes by descending priority, then most
// recent activation.
func (e *Engine) activeScopes() []*scope {
	active := make([]*scope, 0, len(e.scopes))
	for _, s := range e.scopes {
		if s.active {
			active = append(active, s)
		}
	}
	slices.SortFunc(active, func(a, b *scope) int {
		return -compareScopes(a, b)
	})
	return active
}

func compareScopes(a, b *scope) int {
	return cmp.Or(
		cmp.Compare(a.priority, b.priority),
		cmp.Compare(a.activationOrder, b.activationOrder),
	)
}

func compareCandidates(a, b candidate) int {
	return cmp.Or(
		compareScopes(a.scope, b.scope),
		cmp.Compare(a.binding.registeredOrder, b.binding.registeredOrder),
	)
}

// ClearSequenceState drops any pending chord. It is idempotent.
func (e *Engine) ClearSequenceState() {
	if e.chord != nil {
		e.logger().Debug("chord cleared")
	}
	e.chord = nil
}

// Pending reports whether a chord is waiting for its next step
func (e *Engine) Pending() bool {
	return e.chord != nil
}

// SetIsTypingTarget swaps the typing guard. Nil restores DefaultTypingGuard.
func (e *Engine) SetIsTypingTarget(guard domain.TypingGuard) {
	e.typingGuard = guard
	e.ClearSequenceState()
}

// NormalizeCombo returns the canonical form of a combo descriptor
func (e *Engine) NormalizeCombo(text string) (string, error) {
	return combo.Normalize(text)
}

// ComboFromEvent returns the canonical combo for a key event
func (e *Engine) ComboFromEvent(event domain.KeyEvent) (string, error) {
	return combo.FromEvent(event)
}
