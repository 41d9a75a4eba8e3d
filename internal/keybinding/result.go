package keybinding

import domain "github.com/inference-gateway/keychord/internal/domain"

// decision is a handler result resolved against its binding's options
type decision struct {
	handled         bool
	preventDefault  bool
	stopPropagation bool
	proceed         bool
}

func interpret(result Result, opts Options) decision {
	defaults := decision{
		handled:         true,
		preventDefault:  valueOr(opts.PreventDefault, true),
		stopPropagation: valueOr(opts.StopPropagation, true),
		proceed:         valueOr(opts.Continue, false),
	}

	switch r := result.(type) {
	case nil:
		return defaults
	case Handled:
		if r {
			return defaults
		}
		return decision{proceed: true}
	case *Outcome:
		if r == nil {
			return defaults
		}
		return interpretOutcome(*r, defaults)
	case Outcome:
		return interpretOutcome(r, defaults)
	}

	return defaults
}

func interpretOutcome(o Outcome, d decision) decision {
	d.handled = valueOr(o.Handled, d.handled)
	d.preventDefault = valueOr(o.PreventDefault, d.preventDefault)
	d.stopPropagation = valueOr(o.StopPropagation, d.stopPropagation)
	d.proceed = valueOr(o.Continue, d.proceed)
	if !d.handled {
		d.proceed = true
	}
	return d
}

func (d decision) apply(event domain.KeyEvent) {
	if d.preventDefault {
		event.PreventDefault()
	}
	if d.stopPropagation {
		event.StopPropagation()
	}
}

func consume(event domain.KeyEvent) {
	event.PreventDefault()
	event.StopPropagation()
}

func valueOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
