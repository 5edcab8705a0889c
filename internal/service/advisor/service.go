package advisor

import (
	"context"
	"fmt"
	"strings"

	"coffee-subscription/internal/catalog"
	"coffee-subscription/internal/domain"
	"coffee-subscription/internal/metrics"
	"coffee-subscription/internal/recommend"
	sessionrepo "coffee-subscription/internal/repository/session"
	"coffee-subscription/internal/subscription"
)

// Service runs the help chat survey attached to a wizard session.
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

// View is the survey plus the question to show next.
type View struct {
	recommend.Survey
	NextQuestion *recommend.Question `json:"nextQuestion,omitempty"`
}

func newView(s recommend.Survey) View {
	v := View{Survey: s}
	if q, ok := s.Next(); ok {
		v.NextQuestion = &q
	}
	return v
}

func (s *Service) Questions() []recommend.Question {
	return recommend.Questions()
}

// Open starts a fresh survey, discarding any previous one.
func (s *Service) Open(ctx context.Context, sessionID string) (View, error) {
	rec, err := s.sessions.Update(ctx, sessionID, func(r sessionrepo.Record) (sessionrepo.Record, error) {
		r.Survey = &recommend.Survey{}
		return r, nil
	})
	if err != nil {
		return View{}, err
	}
	return newView(*rec.Survey), nil
}

func (s *Service) Answer(ctx context.Context, sessionID, answer string) (View, error) {
	cat, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return View{}, err
	}
	rec, err := s.sessions.Update(ctx, sessionID, func(r sessionrepo.Record) (sessionrepo.Record, error) {
		if r.Survey == nil {
			return r, domain.ErrSurveyNotStarted
		}
		next, err := r.Survey.Answer(answer, cat.Machines)
		if err != nil {
			return r, err
		}
		r.Survey = &next
		return r, nil
	})
	if err != nil {
		return View{}, err
	}
	if rec.Survey.Complete {
		metrics.RecordRecommendation(fellBack(rec.Survey.Recommendations))
	}
	return newView(*rec.Survey), nil
}

// Close drops the survey. Closing a session without survey is a no-op.
func (s *Service) Close(ctx context.Context, sessionID string) error {
	_, err := s.sessions.Update(ctx, sessionID, func(r sessionrepo.Record) (sessionrepo.Record, error) {
		r.Survey = nil
		return r, nil
	})
	return err
}

// Choose adds a recommended machine to the selection, sends the wizard back
// to the machines step and closes the survey.
func (s *Service) Choose(ctx context.Context, sessionID, machineID string) (sessionrepo.Record, error) {
	machineID = strings.TrimSpace(machineID)
	cat, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return sessionrepo.Record{}, err
	}
	m, ok := cat.Machine(machineID)
	if !ok {
		return sessionrepo.Record{}, fmt.Errorf("%w: machine %q", domain.ErrUnknownProduct, machineID)
	}

	return s.sessions.Update(ctx, sessionID, func(r sessionrepo.Record) (sessionrepo.Record, error) {
		if r.Survey == nil {
			return r, domain.ErrSurveyNotStarted
		}
		if !r.Survey.Recommended(m.ID) {
			return r, fmt.Errorf("%w: %q was not recommended", domain.ErrInvalidOption, m.ID)
		}
		next, err := subscription.ApplyAll(r.State,
			subscription.AddMachine{Machine: m},
			subscription.GoToStep{Step: domain.StepMachines},
		)
		if err != nil {
			return r, err
		}
		r.State = next
		r.Survey = nil
		return r, nil
	})
}

// Recommend scores the catalog against a full set of answers without
// touching any session. Every question must be answered exactly once.
func (s *Service) Recommend(ctx context.Context, answers []domain.SurveyAnswer) ([]domain.Recommendation, error) {
	if err := recommend.CheckAnswers(answers); err != nil {
		return nil, err
	}
	cat, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	recs := recommend.Recommend(cat.Machines, answers)
	metrics.RecordRecommendation(fellBack(recs))
	return recs, nil
}

func fellBack(recs []domain.Recommendation) bool {
	return len(recs) > 0 && recs[0].MatchScore < recommend.MinimumScore
}
