package subscription

import (
	"strings"

	"coffee-subscription/internal/domain"
)

type AddMachine struct{ Machine domain.Machine }

func (a AddMachine) apply(s State) (State, error) {
	s.Selection.Machines = append(s.Selection.Machines, a.Machine)
	return s, nil
}

// RemoveMachine drops one unit of the machine.
type RemoveMachine struct{ ID string }

func (a RemoveMachine) apply(s State) (State, error) {
	s.Selection.Machines = removeFirst(s.Selection.Machines, func(m domain.Machine) string { return m.ID }, a.ID)
	return s, nil
}

type AddCoffee struct{ Coffee domain.CoffeeVariety }

func (a AddCoffee) apply(s State) (State, error) {
	s.Selection.Coffees = append(s.Selection.Coffees, a.Coffee)
	return s, nil
}

// RemoveCoffee drops one unit (one kilogram) of the variety.
type RemoveCoffee struct{ ID string }

func (a RemoveCoffee) apply(s State) (State, error) {
	s.Selection.Coffees = removeFirst(s.Selection.Coffees, func(c domain.CoffeeVariety) string { return c.ID }, a.ID)
	return s, nil
}

type AddAccompaniment struct{ Accompaniment domain.Accompaniment }

func (a AddAccompaniment) apply(s State) (State, error) {
	s.Selection.Accompaniments = append(s.Selection.Accompaniments, a.Accompaniment)
	return s, nil
}

type RemoveAccompaniment struct{ ID string }

func (a RemoveAccompaniment) apply(s State) (State, error) {
	s.Selection.Accompaniments = removeFirst(s.Selection.Accompaniments, func(x domain.Accompaniment) string { return x.ID }, a.ID)
	return s, nil
}

type AddAccessory struct{ Accessory domain.Accessory }

func (a AddAccessory) apply(s State) (State, error) {
	s.Selection.Accessories = append(s.Selection.Accessories, a.Accessory)
	return s, nil
}

type RemoveAccessory struct{ ID string }

func (a RemoveAccessory) apply(s State) (State, error) {
	s.Selection.Accessories = removeFirst(s.Selection.Accessories, func(x domain.Accessory) string { return x.ID }, a.ID)
	return s, nil
}

type SetDuration struct{ Duration domain.ContractDuration }

func (a SetDuration) apply(s State) (State, error) {
	if !a.Duration.Valid() {
		return s, domain.ErrInvalidDuration
	}
	s.Duration = a.Duration
	return s, nil
}

// SetContact records the prospect details that unlock the summary.
type SetContact struct{ Contact domain.Contact }

func (a SetContact) apply(s State) (State, error) {
	c := domain.Contact{
		CompanyName: strings.TrimSpace(a.Contact.CompanyName),
		Email:       strings.TrimSpace(a.Contact.Email),
		Phone:       strings.TrimSpace(a.Contact.Phone),
	}
	s.Contact = &c
	return s, nil
}
