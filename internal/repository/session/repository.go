package session

import (
	"context"

	"coffee-subscription/internal/domain"
	"coffee-subscription/internal/recommend"
	"coffee-subscription/internal/subscription"
)

// Record is everything held for one wizard session. Survey is nil while the
// help chat is closed.
type Record struct {
	Session domain.Session
	State   subscription.State
	Survey  *recommend.Survey
}

func (r Record) clone() Record {
	out := r
	out.State = r.State.Clone()
	if r.Survey != nil {
		s := *r.Survey
		s.Answers = append([]domain.SurveyAnswer(nil), r.Survey.Answers...)
		s.Recommendations = append([]domain.Recommendation(nil), r.Survey.Recommendations...)
		out.Survey = &s
	}
	return out
}

// UpdateFunc receives a copy of the stored record and returns its
// replacement. Returning an error leaves the stored record untouched.
type UpdateFunc func(Record) (Record, error)

type Repository interface {
	Create(ctx context.Context, state subscription.State) (Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, id string, fn UpdateFunc) (Record, error)
	Delete(ctx context.Context, id string) error
}
