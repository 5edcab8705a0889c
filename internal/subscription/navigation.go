package subscription

import "coffee-subscription/internal/domain"

// NextStep moves forward when the current step is complete. Leaving the
// accompaniments step requires the contact form; the summary is terminal.
type NextStep struct{}

func (NextStep) apply(s State) (State, error) {
	switch s.Step {
	case domain.StepMachines:
		if len(s.Selection.Machines) == 0 {
			return s, domain.ErrStepBlocked
		}
		s.Step = domain.StepCoffee
	case domain.StepCoffee:
		if len(s.Selection.Coffees) == 0 {
			return s, domain.ErrStepBlocked
		}
		s.Step = domain.StepAccompaniments
	case domain.StepAccompaniments:
		if s.Contact == nil {
			return s, domain.ErrContactRequired
		}
		s.Step = domain.StepSummary
	case domain.StepSummary:
	default:
		s.Step = domain.StepMachines
	}
	return s, nil
}

// PreviousStep moves back one step; the first step stays put.
type PreviousStep struct{}

func (PreviousStep) apply(s State) (State, error) {
	switch s.Step {
	case domain.StepCoffee:
		s.Step = domain.StepMachines
	case domain.StepAccompaniments:
		s.Step = domain.StepCoffee
	case domain.StepSummary:
		s.Step = domain.StepAccompaniments
	default:
		s.Step = domain.StepMachines
	}
	return s, nil
}

// GoToStep jumps directly to an already reachable step.
type GoToStep struct{ Step domain.Step }

func (a GoToStep) apply(s State) (State, error) {
	if !Reachable(s, a.Step) {
		return s, domain.ErrStepUnreachable
	}
	s.Step = a.Step
	return s, nil
}

// Reachable reports whether a direct jump to step is allowed from s.
func Reachable(s State, step domain.Step) bool {
	switch step {
	case domain.StepMachines:
		return true
	case domain.StepCoffee:
		return len(s.Selection.Machines) > 0
	case domain.StepAccompaniments:
		return len(s.Selection.Machines) > 0 && len(s.Selection.Coffees) > 0
	case domain.StepSummary:
		return s.Step == domain.StepSummary
	}
	return false
}

// CanProceed reports whether NextStep would succeed.
func CanProceed(s State) bool {
	_, err := NextStep{}.apply(s)
	return err == nil
}
