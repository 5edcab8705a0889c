// Package subscription is the wizard state container. State is a value and
// every transition goes through Apply, which never mutates its input.
package subscription

import (
	"coffee-subscription/internal/domain"
)

type State struct {
	Step      domain.Step             `json:"currentStep"`
	Selection domain.Selection        `json:"selection"`
	Duration  domain.ContractDuration `json:"contractDuration"`
	Contact   *domain.Contact         `json:"contact,omitempty"`
}

// New returns the state of a freshly opened wizard.
func New() State {
	return State{
		Step: domain.StepMachines,
		Selection: domain.Selection{
			Machines:       []domain.Machine{},
			Coffees:        []domain.CoffeeVariety{},
			Accompaniments: []domain.Accompaniment{},
			Accessories:    []domain.Accessory{},
		},
		Duration: domain.DefaultDuration,
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Selection = s.Selection.Clone()
	if s.Contact != nil {
		c := *s.Contact
		out.Contact = &c
	}
	return out
}

// Action is a single wizard transition.
type Action interface {
	apply(State) (State, error)
}

// Apply runs action against a copy of s. On error the returned state is s
// unchanged.
func Apply(s State, action Action) (State, error) {
	next, err := action.apply(s.Clone())
	if err != nil {
		return s, err
	}
	return next, nil
}

// ApplyAll runs actions in order and stops at the first error, returning the
// original state in that case.
func ApplyAll(s State, actions ...Action) (State, error) {
	cur := s
	for _, a := range actions {
		next, err := Apply(cur, a)
		if err != nil {
			return s, err
		}
		cur = next
	}
	return cur, nil
}

// removeFirst drops the first entry whose id matches. Unknown ids are ignored.
func removeFirst[T any](items []T, id func(T) string, want string) []T {
	for i, it := range items {
		if id(it) == want {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}
