package recommend

import (
	"strings"

	"coffee-subscription/internal/domain"
)

// Survey is the advisor conversation: one answer per question, in order.
// It is a value; Answer returns an updated copy.
type Survey struct {
	Answers         []domain.SurveyAnswer   `json:"answers"`
	Complete        bool                    `json:"complete"`
	Recommendations []domain.Recommendation `json:"recommendations,omitempty"`
}

// Next returns the question awaiting an answer, or false once complete.
func (s Survey) Next() (Question, bool) {
	if s.Complete || len(s.Answers) >= len(questions) {
		return Question{}, false
	}
	return Questions()[len(s.Answers)], true
}

// Answer records the answer to the current question. The last answer
// completes the survey and ranks machines.
func (s Survey) Answer(text string, machines []domain.Machine) (Survey, error) {
	q, ok := s.Next()
	if !ok {
		return s, domain.ErrSurveyComplete
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return s, domain.ErrEmptyAnswer
	}
	if !q.Accepts(text) {
		return s, domain.ErrInvalidOption
	}

	next := Survey{
		Answers: append(append([]domain.SurveyAnswer(nil), s.Answers...), domain.SurveyAnswer{QuestionID: q.ID, Answer: text}),
	}
	if len(next.Answers) == len(questions) {
		next.Complete = true
		next.Recommendations = Recommend(machines, next.Answers)
	}
	return next, nil
}

// Recommended reports whether machineID is among the survey results.
func (s Survey) Recommended(machineID string) bool {
	for _, r := range s.Recommendations {
		if r.ID == machineID {
			return true
		}
	}
	return false
}
