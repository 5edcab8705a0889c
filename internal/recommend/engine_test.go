package recommend

import (
	"reflect"
	"testing"

	"coffee-subscription/internal/catalog"
	"coffee-subscription/internal/domain"
)

func answers(collaborators, milk, payment string) []domain.SurveyAnswer {
	return []domain.SurveyAnswer{
		{QuestionID: QuestionCollaborators, Answer: collaborators},
		{QuestionID: QuestionMilk, Answer: milk},
		{QuestionID: QuestionPayment, Answer: payment},
	}
}

func testMachine(id string, minCups, maxCups int, extra ...domain.Feature) domain.Machine {
	return domain.Machine{
		ID:            id,
		Name:          id,
		MinCupsPerDay: minCups,
		MaxCupsPerDay: maxCups,
		Features:      append([]domain.Feature{domain.CapacityFeature(minCups, maxCups)}, extra...),
	}
}

var (
	milkFeature    = domain.Feature{Type: domain.FeatureLait, Label: "Boissons lactées"}
	paymentFeature = domain.Feature{Type: domain.FeaturePaiement, Label: "Module de paiement"}
	compactFeature = domain.Feature{Type: domain.FeatureCompact, Label: "Compact"}
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name string
		in   []domain.SurveyAnswer
		want Profile
	}{
		{"plain", answers("10", "Oui", "Non"), Profile{Collaborators: 10, WantsMilk: true}},
		{"spaces", answers(" 12 ", "Non", "Oui"), Profile{Collaborators: 12, WantsPayment: true}},
		{"trailing text", answers("12abc", "Non", "Non"), Profile{Collaborators: 12}},
		{"not a number", answers("abc", "Oui", "Oui"), Profile{WantsMilk: true, WantsPayment: true}},
		{"empty", answers("", "Non", "Non"), Profile{}},
		{"negative", answers("-4", "Non", "Non"), Profile{}},
		{"lowercase yes is not yes", answers("3", "oui", "OUI"), Profile{Collaborators: 3}},
		{"missing answers", nil, Profile{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseProfile(tt.in); got != tt.want {
				t.Fatalf("ParseProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScoreIdealCapacityWithMilk(t *testing.T) {
	m := testMachine("m", 20, 50, milkFeature)
	got := Score(m, ParseProfile(answers("10", "Oui", "Non")))
	if got.MatchScore != 75 {
		t.Fatalf("expected 75, got %d (%v)", got.MatchScore, got.Reasons)
	}
	if len(got.Reasons) != 2 {
		t.Fatalf("expected capacity and milk reasons, got %v", got.Reasons)
	}
}

func TestScoreMissingMilkClampsToZero(t *testing.T) {
	m := testMachine("m", 20, 50)
	got := Score(m, ParseProfile(answers("10", "Oui", "Non")))
	if got.MatchScore != 0 {
		t.Fatalf("expected 0, got %d", got.MatchScore)
	}
}

func TestScoreCapacityTiers(t *testing.T) {
	m := testMachine("m", 100, 200)
	tests := []struct {
		collaborators string
		want          int
	}{
		{"75", 55},  // 150 cups, ideal +40
		{"50", 55},  // 100 cups, lower bound is ideal
		{"100", 55}, // 200 cups, upper bound is ideal
		{"40", 40},  // 80 cups, ratio 0.8 +25
		{"25", 25},  // 50 cups, ratio 0.5 +10
		{"20", 5},   // 40 cups, ratio 0.4 -10
		{"125", 30}, // 250 cups, ratio 0.8 +15
		{"150", 10}, // 300 cups, ratio 0.67 -5
		{"200", 0},  // 400 cups, ratio 0.5 -30
	}
	for _, tt := range tests {
		got := Score(m, ParseProfile(answers(tt.collaborators, "Non", "Non")))
		if got.MatchScore != tt.want {
			t.Fatalf("collaborators=%s: expected %d, got %d (%v)", tt.collaborators, tt.want, got.MatchScore, got.Reasons)
		}
	}
}

func TestScoreUnknownCapacity(t *testing.T) {
	m := domain.Machine{ID: "bare", Name: "bare"}
	if got := Score(m, ParseProfile(answers("0", "Non", "Non"))); got.MatchScore != 55 {
		t.Fatalf("zero demand on unknown capacity: expected 55, got %d", got.MatchScore)
	}
	got := Score(m, ParseProfile(answers("10", "Non", "Non")))
	if got.MatchScore != 0 {
		t.Fatalf("positive demand on unknown capacity: expected 0, got %d", got.MatchScore)
	}
	if len(got.Features) != 0 {
		t.Fatalf("unknown capacity should not be displayed, got %v", got.Features)
	}
}

func TestScorePaymentModule(t *testing.T) {
	with := testMachine("with", 20, 50, paymentFeature)
	without := testMachine("without", 20, 50)
	p := ParseProfile(answers("10", "Non", "Oui"))
	if got := Score(with, p).MatchScore; got != 90 {
		t.Fatalf("expected 40+15+35=90, got %d", got)
	}
	if got := Score(without, p).MatchScore; got != 5 {
		t.Fatalf("expected 40+15-50=5, got %d", got)
	}
	noPayment := ParseProfile(answers("10", "Non", "Non"))
	if Score(with, noPayment).MatchScore != Score(without, noPayment).MatchScore {
		t.Fatalf("payment module must not score when not requested")
	}
}

func TestScoreClampsToHundred(t *testing.T) {
	m := testMachine("krea", 80, 120, paymentFeature, milkFeature)
	got := Score(m, ParseProfile(answers("45", "Oui", "Oui")))
	if got.MatchScore != 100 {
		t.Fatalf("expected 110 clamped to 100, got %d", got.MatchScore)
	}
}

func TestScoreFeatureLabels(t *testing.T) {
	m := testMachine("m", 20, 50, compactFeature, milkFeature, paymentFeature, compactFeature)
	got := Score(m, ParseProfile(answers("10", "Oui", "Oui")))
	want := []string{"20 à 50 tasses/jour", "Boissons lactées", "Module de paiement intégré", "Compact"}
	if !reflect.DeepEqual(got.Features, want) {
		t.Fatalf("features = %v, want %v", got.Features, want)
	}
}

func TestScoreAlwaysWithinBounds(t *testing.T) {
	machines := catalog.Default().Machines
	machines = append(machines, domain.Machine{ID: "bare"})
	for _, c := range []string{"", "0", "1", "5", "10", "25", "40", "45", "75", "100", "150", "200", "5000"} {
		for _, milk := range []string{AnswerYes, AnswerNo} {
			for _, pay := range []string{AnswerYes, AnswerNo} {
				p := ParseProfile(answers(c, milk, pay))
				for _, m := range machines {
					s := Score(m, p).MatchScore
					if s < 0 || s > 100 {
						t.Fatalf("score %d out of bounds for %s with %+v", s, m.ID, p)
					}
				}
			}
		}
	}
}

func TestRecommendDefaultCatalog(t *testing.T) {
	got := Recommend(catalog.Default().Machines, answers("10", "Oui", "Non"))
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	want := []string{"JURA W8", "JURA X10", "JURA GIGA X3"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("recommendations = %v, want %v", ids, want)
	}
	if got[0].MatchScore != 75 || got[1].MatchScore != 25 || got[2].MatchScore != 25 {
		t.Fatalf("unexpected scores %d/%d/%d", got[0].MatchScore, got[1].MatchScore, got[2].MatchScore)
	}
}

func TestRecommendFallsBackWhenAllScoresLow(t *testing.T) {
	got := Recommend(catalog.Default().Machines, answers("abc", "Non", "Non"))
	if len(got) != 3 {
		t.Fatalf("expected 3 fallback recommendations, got %d", len(got))
	}
	want := []string{"JURA W4", "JURA X4", "JURA W8"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
		if got[i].MatchScore >= MinimumScore {
			t.Fatalf("fallback scores should all be under the threshold, got %d", got[i].MatchScore)
		}
	}
}

func TestRecommendBounds(t *testing.T) {
	if got := Recommend(nil, answers("10", "Oui", "Oui")); len(got) != 0 {
		t.Fatalf("empty catalog should give no recommendations, got %v", got)
	}
	one := []domain.Machine{testMachine("solo", 20, 50)}
	got := Recommend(one, answers("10", "Oui", "Oui"))
	if len(got) != 1 || got[0].ID != "solo" {
		t.Fatalf("single machine catalog should return it, got %v", got)
	}
}

func TestRecommendIsIdempotent(t *testing.T) {
	machines := catalog.Default().Machines
	in := answers("60", "Oui", "Oui")
	first := Recommend(machines, in)
	second := Recommend(machines, in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recommendations differ between runs:\n%v\n%v", first, second)
	}
}
