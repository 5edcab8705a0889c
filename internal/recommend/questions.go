// Package recommend scores catalog machines against the advisor survey and
// runs the survey conversation itself.
package recommend

import (
	"fmt"
	"strings"

	"coffee-subscription/internal/domain"
)

const (
	QuestionCollaborators = "collaborators"
	QuestionMilk          = "milk"
	QuestionPayment       = "payment"

	AnswerYes = "Oui"
	AnswerNo  = "Non"
)

type QuestionType string

const (
	QuestionTypeNumber QuestionType = "number"
	QuestionTypeSelect QuestionType = "select"
)

type Question struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Type        QuestionType `json:"type"`
	Options     []string     `json:"options,omitempty"`
	Description string       `json:"description,omitempty"`
}

// Accepts reports whether answer is allowed for a select question. Number
// questions take any text; it is parsed leniently when scoring.
func (q Question) Accepts(answer string) bool {
	if q.Type != QuestionTypeSelect {
		return true
	}
	for _, o := range q.Options {
		if o == answer {
			return true
		}
	}
	return false
}

var questions = []Question{
	{
		ID:          QuestionCollaborators,
		Text:        "Quel est votre nombre de collaborateur ?",
		Type:        QuestionTypeNumber,
		Description: "Cette information nous aide à déterminer la taille de machine adaptée à votre entreprise.",
	},
	{
		ID:          QuestionMilk,
		Text:        "Souhaitez-vous des boissons lactées ?",
		Type:        QuestionTypeSelect,
		Options:     []string{AnswerYes, AnswerNo},
		Description: "Cappuccinos, lattes et autres boissons à base de lait nécessitent des fonctionnalités spécifiques.",
	},
	{
		ID:          QuestionPayment,
		Text:        "Souhaitez-vous un module de paiement sur la machine ?",
		Type:        QuestionTypeSelect,
		Options:     []string{AnswerYes, AnswerNo},
		Description: "Un module de paiement permet de facturer les consommations aux utilisateurs.",
	},
}

// Questions returns the survey questions in the order they are asked.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

func questionByID(id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// CheckAnswers requires exactly one accepted answer for each question, in
// any order.
func CheckAnswers(answers []domain.SurveyAnswer) error {
	if len(answers) != len(questions) {
		return fmt.Errorf("%w: expected %d answers, got %d", domain.ErrInvalidOption, len(questions), len(answers))
	}
	seen := make(map[string]bool, len(answers))
	for _, a := range answers {
		q, ok := questionByID(a.QuestionID)
		if !ok {
			return fmt.Errorf("%w: unknown question %q", domain.ErrInvalidOption, a.QuestionID)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: question %q answered twice", domain.ErrInvalidOption, q.ID)
		}
		seen[q.ID] = true

		if strings.TrimSpace(a.Answer) == "" {
			return fmt.Errorf("%w: question %q", domain.ErrEmptyAnswer, q.ID)
		}
		if !q.Accepts(a.Answer) {
			return fmt.Errorf("%w: %q for question %q", domain.ErrInvalidOption, a.Answer, q.ID)
		}
	}
	return nil
}
