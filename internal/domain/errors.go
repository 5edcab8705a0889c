package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	ErrUnknownProduct    = errors.New("unknown catalog product")
	ErrInvalidDuration   = errors.New("contract duration must be 24, 36 or 48 months")
	ErrUnsupportedAction = errors.New("unsupported action")

	// Wizard navigation refusals.
	ErrStepUnreachable = errors.New("step not reachable yet")
	ErrUnknownStep     = errors.New("unknown wizard step")
	ErrStepBlocked     = errors.New("current step is not complete")
	ErrContactRequired = errors.New("contact details required before the summary")
	ErrInvalidContact  = errors.New("invalid contact details")

	// Advisor survey.
	ErrEmptyAnswer      = errors.New("answer required")
	ErrInvalidOption    = errors.New("answer is not one of the proposed options")
	ErrSurveyComplete   = errors.New("survey already complete")
	ErrSurveyNotStarted = errors.New("survey not started")
)
