package recommend

import (
	"fmt"
	"slices"
	"strings"

	"coffee-subscription/internal/domain"
)

const (
	// CupsPerCollaborator is the assumed daily consumption of one person.
	CupsPerCollaborator = 2
	// MinimumScore filters out poor matches unless nothing passes.
	MinimumScore = 20
	// MaxRecommendations bounds the returned list.
	MaxRecommendations = 3

	paymentDisplayLabel = "Module de paiement intégré"
)

// Profile is the interpreted survey.
type Profile struct {
	Collaborators int
	WantsMilk     bool
	WantsPayment  bool
}

func (p Profile) EstimatedCupsPerDay() int {
	return p.Collaborators * CupsPerCollaborator
}

// ParseProfile reads the survey answers. Missing answers count as 0 or "Non";
// a collaborator count that does not parse counts as 0.
func ParseProfile(answers []domain.SurveyAnswer) Profile {
	var p Profile
	for _, a := range answers {
		switch a.QuestionID {
		case QuestionCollaborators:
			p.Collaborators = parseCount(a.Answer)
		case QuestionMilk:
			p.WantsMilk = a.Answer == AnswerYes
		case QuestionPayment:
			p.WantsPayment = a.Answer == AnswerYes
		}
	}
	return p
}

// parseCount reads the leading integer of s. "12 personnes" gives 12,
// "abc" and negative values give 0.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1_000_000 {
			n = 1_000_000
		}
	}
	if neg {
		return 0
	}
	return n
}

// Score evaluates one machine against the profile. The result is clamped to [0, 100].
func Score(m domain.Machine, p Profile) domain.Recommendation {
	score := 0
	var reasons []string
	var features []string
	addFeature := func(label string) {
		if !slices.Contains(features, label) {
			features = append(features, label)
		}
	}

	cups := p.EstimatedCupsPerDay()
	minCups, maxCups := m.MinCupsPerDay, m.MaxCupsPerDay
	if m.HasCapacity() {
		addFeature(m.CapacityLabel())
	}

	switch {
	case cups >= minCups && cups <= maxCups:
		score += 40
		reasons = append(reasons, fmt.Sprintf("Capacité idéale pour votre consommation estimée (%d tasses/jour)", cups))
	case cups < minCups:
		ratio := float64(cups) / float64(minCups)
		switch {
		case ratio >= 0.8:
			score += 25
			reasons = append(reasons, fmt.Sprintf("Capacité légèrement surdimensionnée mais adaptée à votre consommation (%d tasses/jour)", cups))
		case ratio >= 0.5:
			score += 10
			reasons = append(reasons, "Capacité surdimensionnée pour votre consommation actuelle, mais offre une marge de croissance")
		default:
			score -= 10
			reasons = append(reasons, "Capacité largement surdimensionnée pour votre consommation actuelle")
		}
	default:
		ratio := float64(maxCups) / float64(cups)
		switch {
		case ratio >= 0.8:
			score += 15
			reasons = append(reasons, fmt.Sprintf("Capacité légèrement sous-dimensionnée mais pourrait convenir (%d tasses/jour vs %d max)", cups, maxCups))
		case ratio >= 0.6:
			score -= 5
			reasons = append(reasons, "Capacité insuffisante pour votre consommation estimée")
		default:
			score -= 30
			reasons = append(reasons, "Capacité nettement insuffisante pour votre consommation estimée")
		}
	}

	milk, hasMilk := m.Feature(domain.FeatureLait)
	if hasMilk {
		addFeature(milk.Label)
	}
	switch {
	case p.WantsMilk && hasMilk:
		score += 35
		reasons = append(reasons, "Compatible avec les boissons lactées que vous souhaitez")
	case p.WantsMilk:
		score -= 50
		reasons = append(reasons, "Ne propose pas de fonctionnalité pour boissons lactées (critère important)")
	case !hasMilk:
		score += 15
		reasons = append(reasons, "Machine sans système lait, idéale pour vos besoins")
	}

	hasPayment := m.HasFeature(domain.FeaturePaiement)
	if hasPayment {
		addFeature(paymentDisplayLabel)
	}
	if p.WantsPayment {
		if hasPayment {
			score += 35
			reasons = append(reasons, "Équipée d'un module de paiement intégré comme demandé")
		} else {
			score -= 50
			reasons = append(reasons, "Ne dispose pas de module de paiement (critère important)")
		}
	}

	for _, f := range m.Features {
		if f.Type == domain.FeatureCompact {
			addFeature(f.Label)
		}
	}

	return domain.Recommendation{
		ID:          m.ID,
		Name:        m.Name,
		Image:       m.Image,
		Description: m.Description,
		MatchScore:  clamp(score, 0, 100),
		Reasons:     reasons,
		Features:    features,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// Rank scores every machine, drops those under MinimumScore (unless that
// would leave nothing) and returns the best MaxRecommendations. Ties keep
// catalog order.
func Rank(machines []domain.Machine, p Profile) []domain.Recommendation {
	all := make([]domain.Recommendation, 0, len(machines))
	for _, m := range machines {
		all = append(all, Score(m, p))
	}

	kept := make([]domain.Recommendation, 0, len(all))
	for _, r := range all {
		if r.MatchScore >= MinimumScore {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		kept = all
	}

	slices.SortStableFunc(kept, func(a, b domain.Recommendation) int {
		return b.MatchScore - a.MatchScore
	})
	if len(kept) > MaxRecommendations {
		kept = kept[:MaxRecommendations]
	}
	return kept
}

// Recommend is ParseProfile followed by Rank.
func Recommend(machines []domain.Machine, answers []domain.SurveyAnswer) []domain.Recommendation {
	return Rank(machines, ParseProfile(answers))
}
