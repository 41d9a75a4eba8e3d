package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	config "github.com/inference-gateway/keychord/config"
	keybinding "github.com/inference-gateway/keychord/internal/keybinding"
	logger "github.com/inference-gateway/keychord/internal/logger"
	keys "github.com/inference-gateway/keychord/internal/ui/keys"
	zap "go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// ErrInvalidStep is returned for script steps that do not name exactly one action
var ErrInvalidStep = errors.New("invalid replay step")

// ReplayScript is a recorded series of key presses and scope changes
type ReplayScript struct {
	Steps []ReplayStep `yaml:"steps"`
}

// ReplayStep performs exactly one of its fields
type ReplayStep struct {
	Press      string        `yaml:"press,omitempty"`
	Target     *ReplayTarget `yaml:"target,omitempty"`
	WaitMs     int           `yaml:"wait_ms,omitempty"`
	Activate   string        `yaml:"activate,omitempty"`
	Deactivate string        `yaml:"deactivate,omitempty"`
	Clear      bool          `yaml:"clear,omitempty"`
}

// ReplayTarget describes the element a press is delivered to
type ReplayTarget struct {
	Tag             string            `yaml:"tag"`
	ContentEditable bool              `yaml:"contenteditable,omitempty"`
	Attrs           map[string]string `yaml:"attrs,omitempty"`
}

// ReplayRecord is the observed result of one press
type ReplayRecord struct {
	Step     int
	Combo    string
	Handled  bool
	Consumed bool
	Stopped  bool
	Actions  []string
	Pending  bool
}

// ManualClock is a clock that only moves when told to
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock starting at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// LoadReplayScript reads a replay script from disk
func LoadReplayScript(path string) (*ReplayScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replay script: %w", err)
	}
	return ParseReplayScript(data)
}

// ParseReplayScript decodes and validates a replay script
func ParseReplayScript(data []byte) (*ReplayScript, error) {
	script := &ReplayScript{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(script); err != nil {
		return nil, fmt.Errorf("failed to parse replay script: %w", err)
	}

	var errs []error
	for i, step := range script.Steps {
		if err := step.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return script, nil
}

func (s ReplayStep) validate() error {
	n := 0
	for _, set := range []bool{s.Press != "", s.WaitMs > 0, s.Activate != "", s.Deactivate != "", s.Clear} {
		if set {
			n++
		}
	}

	switch {
	case n == 0:
		return fmt.Errorf("%w: nothing to do", ErrInvalidStep)
	case n > 1:
		return fmt.Errorf("%w: more than one action", ErrInvalidStep)
	case s.WaitMs < 0:
		return fmt.Errorf("%w: negative wait", ErrInvalidStep)
	case s.Target != nil && s.Press == "":
		return fmt.Errorf("%w: target without press", ErrInvalidStep)
	}
	return nil
}

// ReplayService drives an engine built from configuration with scripted input
// and a manual clock
type ReplayService struct {
	clock    *ManualClock
	recorder *ActionRecorder
	keymap   *KeymapService
}

// NewReplayService builds an engine for cfg and applies the keymap to it
func NewReplayService(ctx context.Context, cfg config.KeybindingsConfig) (*ReplayService, error) {
	clock := NewManualClock(time.Unix(0, 0))
	recorder := NewActionRecorder()

	engine := keybinding.New(
		keybinding.WithSequenceTimeout(cfg.SequenceTimeout()),
		keybinding.WithClock(clock.Now),
		keybinding.WithLogger(logger.Component(ctx, "engine")),
	)

	keymap := NewKeymapService(engine, recorder)
	if err := keymap.Apply(ctx, cfg); err != nil {
		return nil, err
	}

	return &ReplayService{
		clock:    clock,
		recorder: recorder,
		keymap:   keymap,
	}, nil
}

// Engine returns the engine the script is played against
func (r *ReplayService) Engine() *keybinding.Engine {
	return r.keymap.Engine()
}

// Run plays every step in order and returns one record per press
func (r *ReplayService) Run(ctx context.Context, script *ReplayScript) ([]ReplayRecord, error) {
	log := logger.Component(ctx, "replay")
	engine := r.Engine()
	var records []ReplayRecord

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		switch {
		case step.WaitMs > 0:
			r.clock.Advance(time.Duration(step.WaitMs) * time.Millisecond)
			log.Debug("clock advanced", zap.Int("step", i+1), zap.Int("wait_ms", step.WaitMs))
		case step.Activate != "":
			engine.SetScopeActive(step.Activate, true)
		case step.Deactivate != "":
			engine.SetScopeActive(step.Deactivate, false)
		case step.Clear:
			engine.ClearSequenceState()
		case step.Press != "":
			record, err := r.press(i+1, step)
			if err != nil {
				return records, err
			}
			log.Debug("key replayed",
				zap.Int("step", record.Step),
				zap.String("combo", record.Combo),
				zap.Bool("handled", record.Handled),
				zap.Strings("actions", record.Actions),
			)
			records = append(records, record)
		default:
			return records, fmt.Errorf("step %d: %w", i+1, ErrInvalidStep)
		}
	}

	return records, nil
}

func (r *ReplayService) press(n int, step ReplayStep) (ReplayRecord, error) {
	ev, err := keys.ParseEvent(step.Press, step.Target.element())
	if err != nil {
		return ReplayRecord{}, fmt.Errorf("step %d: %w", n, err)
	}

	engine := r.Engine()
	canonical, err := engine.ComboFromEvent(ev)
	if err != nil {
		return ReplayRecord{}, fmt.Errorf("step %d: %w", n, err)
	}

	handled := engine.HandleKeydown(ev)

	return ReplayRecord{
		Step:     n,
		Combo:    canonical,
		Handled:  handled,
		Consumed: ev.DefaultPrevented,
		Stopped:  ev.PropagationStopped,
		Actions:  r.recorder.Drain(),
		Pending:  engine.Pending(),
	}, nil
}

func (t *ReplayTarget) element() *keys.Element {
	if t == nil {
		return nil
	}
	return &keys.Element{
		Tag:             t.Tag,
		ContentEditable: t.ContentEditable,
		Attrs:           t.Attrs,
	}
}
