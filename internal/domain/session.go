package domain

import (
	"strings"
	"time"
)

type ContractDuration int

const (
	Duration24 ContractDuration = 24
	Duration36 ContractDuration = 36
	Duration48 ContractDuration = 48

	DefaultDuration = Duration36
)

// Durations lists the contract lengths on offer, shortest first.
var Durations = []ContractDuration{Duration24, Duration36, Duration48}

func (d ContractDuration) Valid() bool {
	switch d {
	case Duration24, Duration36, Duration48:
		return true
	}
	return false
}

// Step is a page of the subscription wizard.
type Step string

const (
	StepMachines       Step = "machines"
	StepCoffee         Step = "coffee"
	StepAccompaniments Step = "accompaniments"
	StepSummary        Step = "summary"
)

// ParseStep accepts a step name case-insensitively.
func ParseStep(s string) (Step, bool) {
	switch Step(strings.ToLower(strings.TrimSpace(s))) {
	case StepMachines:
		return StepMachines, true
	case StepCoffee:
		return StepCoffee, true
	case StepAccompaniments:
		return StepAccompaniments, true
	case StepSummary:
		return StepSummary, true
	}
	return "", false
}

// Selection holds repeated catalog references; two entries with the same id
// mean a quantity of two.
type Selection struct {
	Machines       []Machine       `json:"machines"`
	Coffees        []CoffeeVariety `json:"coffees"`
	Accompaniments []Accompaniment `json:"accompaniments"`
	Accessories    []Accessory     `json:"accessories"`
}

// Clone returns a copy that shares no backing arrays with s.
func (s Selection) Clone() Selection {
	return Selection{
		Machines:       append([]Machine(nil), s.Machines...),
		Coffees:        append([]CoffeeVariety(nil), s.Coffees...),
		Accompaniments: append([]Accompaniment(nil), s.Accompaniments...),
		Accessories:    append([]Accessory(nil), s.Accessories...),
	}
}

func (s Selection) Empty() bool {
	return len(s.Machines) == 0 && len(s.Coffees) == 0 && len(s.Accompaniments) == 0 && len(s.Accessories) == 0
}

// Contact is the prospect record collected before the summary. It is passed
// through untouched to downstream dispatch.
type Contact struct {
	CompanyName string `json:"companyName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
}

// SurveyAnswer is one answer of the advisor questionnaire.
type SurveyAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// Recommendation is a scored machine proposed by the advisor.
type Recommendation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	MatchScore  int      `json:"matchScore"`
	Reasons     []string `json:"reasons"`
	Features    []string `json:"features"`
}

// Session is a stored wizard session.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
