package subscription

import (
	"context"
	"fmt"
	"strings"

	"coffee-subscription/internal/catalog"
	"coffee-subscription/internal/domain"
	"coffee-subscription/internal/metrics"
	"coffee-subscription/internal/pricing"
	"coffee-subscription/internal/recommend"
	sessionrepo "coffee-subscription/internal/repository/session"
	"coffee-subscription/internal/subscription"
	"coffee-subscription/internal/validation"
)

type Service struct {
	sessions sessionrepo.Repository
	catalogs catalogSource
}

type catalogSource interface {
	Catalog(ctx context.Context) (*catalog.Catalog, error)
}

func New(sessions sessionrepo.Repository, catalogs catalogSource) *Service {
	return &Service{sessions: sessions, catalogs: catalogs}
}

// View is the client facing shape of a session.
type View struct {
	domain.Session
	subscription.State
	CanProceed bool              `json:"canProceed"`
	Advisor    *recommend.Survey `json:"advisor,omitempty"`
}

func NewView(rec sessionrepo.Record) View {
	return View{
		Session:    rec.Session,
		State:      rec.State,
		CanProceed: subscription.CanProceed(rec.State),
		Advisor:    rec.Survey,
	}
}

type UpdateInput struct {
	Actions []UpdateAction `json:"actions"`
}

// UpdateAction names one wizard action. ID references a catalog entry for
// the add and remove actions.
type UpdateAction struct {
	Action   string          `json:"action"`
	ID       string          `json:"id,omitempty"`
	Duration int             `json:"duration,omitempty"`
	Step     string          `json:"step,omitempty"`
	Contact  *domain.Contact `json:"contact,omitempty"`
}

func (s *Service) Create(ctx context.Context) (View, error) {
	rec, err := s.sessions.Create(ctx, subscription.New())
	if err != nil {
		return View{}, err
	}
	return NewView(rec), nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	rec, err := s.sessions.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	return NewView(rec), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// Update applies the actions in order. Either all of them succeed or the
// session is left as it was.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (View, error) {
	if len(in.Actions) == 0 {
		return View{}, fmt.Errorf("%w: at least one action required", domain.ErrUnsupportedAction)
	}
	cat, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return View{}, err
	}

	actions := make([]subscription.Action, 0, len(in.Actions))
	for i, a := range in.Actions {
		action, err := resolve(cat, a)
		if err != nil {
			metrics.RecordAction(actionName(a), false)
			return View{}, fmt.Errorf("action %d (%s): %w", i, a.Action, err)
		}
		actions = append(actions, action)
	}

	rec, err := s.sessions.Update(ctx, id, func(r sessionrepo.Record) (sessionrepo.Record, error) {
		next, err := subscription.ApplyAll(r.State, actions...)
		if err != nil {
			return r, err
		}
		r.State = next
		return r, nil
	})
	for _, a := range in.Actions {
		metrics.RecordAction(actionName(a), err == nil)
	}
	if err != nil {
		return View{}, err
	}
	return NewView(rec), nil
}

const (
	actionAddMachine          = "addmachine"
	actionRemoveMachine       = "removemachine"
	actionAddCoffee           = "addcoffee"
	actionRemoveCoffee        = "removecoffee"
	actionAddAccompaniment    = "addaccompaniment"
	actionRemoveAccompaniment = "removeaccompaniment"
	actionAddAccessory        = "addaccessory"
	actionRemoveAccessory     = "removeaccessory"
	actionSetDuration         = "setcontractduration"
	actionSetContact          = "setcontact"
	actionNextStep            = "nextstep"
	actionPreviousStep        = "previousstep"
	actionGoToStep            = "gotostep"

	// actionUnsupported labels every name outside the set above in metrics.
	actionUnsupported = "unsupported"
)

var knownActions = map[string]bool{
	actionAddMachine:          true,
	actionRemoveMachine:       true,
	actionAddCoffee:           true,
	actionRemoveCoffee:        true,
	actionAddAccompaniment:    true,
	actionRemoveAccompaniment: true,
	actionAddAccessory:        true,
	actionRemoveAccessory:     true,
	actionSetDuration:         true,
	actionSetContact:          true,
	actionNextStep:            true,
	actionPreviousStep:        true,
	actionGoToStep:            true,
}

// actionName normalises the client supplied name. Unknown names collapse to
// a single value so they cannot mint new metric series.
func actionName(a UpdateAction) string {
	name := strings.ToLower(strings.TrimSpace(a.Action))
	if !knownActions[name] {
		return actionUnsupported
	}
	return name
}

func resolve(cat *catalog.Catalog, a UpdateAction) (subscription.Action, error) {
	id := strings.TrimSpace(a.ID)
	switch actionName(a) {
	case actionAddMachine:
		m, ok := cat.Machine(id)
		if !ok {
			return nil, unknown("machine", id)
		}
		return subscription.AddMachine{Machine: m}, nil
	case actionRemoveMachine:
		return subscription.RemoveMachine{ID: id}, nil
	case actionAddCoffee:
		c, ok := cat.Coffee(id)
		if !ok {
			return nil, unknown("coffee", id)
		}
		return subscription.AddCoffee{Coffee: c}, nil
	case actionRemoveCoffee:
		return subscription.RemoveCoffee{ID: id}, nil
	case actionAddAccompaniment:
		x, ok := cat.Accompaniment(id)
		if !ok {
			return nil, unknown("accompaniment", id)
		}
		return subscription.AddAccompaniment{Accompaniment: x}, nil
	case actionRemoveAccompaniment:
		return subscription.RemoveAccompaniment{ID: id}, nil
	case actionAddAccessory:
		x, ok := cat.Accessory(id)
		if !ok {
			return nil, unknown("accessory", id)
		}
		return subscription.AddAccessory{Accessory: x}, nil
	case actionRemoveAccessory:
		return subscription.RemoveAccessory{ID: id}, nil
	case actionSetDuration:
		return subscription.SetDuration{Duration: domain.ContractDuration(a.Duration)}, nil
	case actionSetContact:
		if a.Contact == nil {
			return nil, fmt.Errorf("%w: contact required", domain.ErrInvalidContact)
		}
		if err := validation.Struct(*a.Contact); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidContact, err)
		}
		return subscription.SetContact{Contact: *a.Contact}, nil
	case actionNextStep:
		return subscription.NextStep{}, nil
	case actionPreviousStep:
		return subscription.PreviousStep{}, nil
	case actionGoToStep:
		step, ok := domain.ParseStep(a.Step)
		if !ok {
			return nil, fmt.Errorf("%w %q", domain.ErrUnknownStep, a.Step)
		}
		return subscription.GoToStep{Step: step}, nil
	default:
		return nil, fmt.Errorf("%w %q", domain.ErrUnsupportedAction, a.Action)
	}
}

func unknown(kind, id string) error {
	return fmt.Errorf("%w: %s %q", domain.ErrUnknownProduct, kind, id)
}

// SummaryView is the quote snapshot of a session.
type SummaryView struct {
	SessionID string `json:"sessionId"`
	pricing.Summary
	Savings *pricing.SavingsHint `json:"savings,omitempty"`
	Contact *domain.Contact      `json:"contact,omitempty"`
}

func (s *Service) Summary(ctx context.Context, id string) (SummaryView, error) {
	rec, err := s.sessions.Get(ctx, id)
	if err != nil {
		return SummaryView{}, err
	}
	cat, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return SummaryView{}, err
	}

	view := SummaryView{
		SessionID: rec.Session.ID,
		Summary:   pricing.Summarize(rec.State.Selection, rec.State.Duration),
		Contact:   rec.State.Contact,
	}
	if hint, ok := pricing.SavingsHints(rec.State.Selection, cat); ok {
		view.Savings = &hint
	}
	metrics.Summaries.Inc()
	return view, nil
}
