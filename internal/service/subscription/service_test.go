package subscription

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"coffee-subscription/internal/catalog"
	"coffee-subscription/internal/domain"
	"coffee-subscription/internal/metrics"
	sessionrepo "coffee-subscription/internal/repository/session"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type stubCatalog struct {
	catalog *catalog.Catalog
}

func (s stubCatalog) Catalog(context.Context) (*catalog.Catalog, error) {
	return s.catalog, nil
}

func newService() *Service {
	return New(sessionrepo.NewMemory(time.Hour, zerolog.Nop()), stubCatalog{catalog: catalog.Default()})
}

func actions(list ...UpdateAction) UpdateInput {
	return UpdateInput{Actions: list}
}

func TestService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	view, err := svc.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if view.ID == "" || view.Step != domain.StepMachines || view.CanProceed {
		t.Fatalf("unexpected new session %+v", view)
	}

	view, err = svc.Update(ctx, view.ID, actions(
		UpdateAction{Action: "addMachine", ID: "JURA W4"},
		UpdateAction{Action: "ADDMACHINE", ID: "JURA W4"},
		UpdateAction{Action: "setContractDuration", Duration: 24},
		UpdateAction{Action: "nextStep"},
		UpdateAction{Action: "addCoffee", ID: "coffee-2"},
	))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(view.Selection.Machines) != 2 || view.Duration != domain.Duration24 || view.Step != domain.StepCoffee || !view.CanProceed {
		t.Fatalf("unexpected view %+v", view)
	}

	view, err = svc.Update(ctx, view.ID, actions(UpdateAction{Action: "removeMachine", ID: "JURA W4"}))
	if err != nil || len(view.Selection.Machines) != 1 {
		t.Fatalf("remove should drop one unit, got %d (err %v)", len(view.Selection.Machines), err)
	}
}

func TestService_UpdateIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	view, _ := svc.Create(ctx)

	_, err := svc.Update(ctx, view.ID, actions(
		UpdateAction{Action: "addMachine", ID: "JURA W8"},
		UpdateAction{Action: "addCoffee", ID: "coffee-99"},
	))
	if !errors.Is(err, domain.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}

	_, err = svc.Update(ctx, view.ID, actions(
		UpdateAction{Action: "addMachine", ID: "JURA W8"},
		UpdateAction{Action: "goToStep", Step: "summary"},
	))
	if !errors.Is(err, domain.ErrStepUnreachable) {
		t.Fatalf("expected ErrStepUnreachable, got %v", err)
	}

	got, _ := svc.Get(ctx, view.ID)
	if len(got.Selection.Machines) != 0 {
		t.Fatalf("rejected batch leaked into session: %+v", got.Selection.Machines)
	}
}

func TestService_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	view, _ := svc.Create(ctx)

	tests := []struct {
		name   string
		action UpdateAction
		want   error
	}{
		{"unsupported", UpdateAction{Action: "explode"}, domain.ErrUnsupportedAction},
		{"duration", UpdateAction{Action: "setContractDuration", Duration: 12}, domain.ErrInvalidDuration},
		{"blocked", UpdateAction{Action: "nextStep"}, domain.ErrStepBlocked},
		{"contact missing", UpdateAction{Action: "setContact"}, domain.ErrInvalidContact},
		{"contact email", UpdateAction{Action: "setContact", Contact: &domain.Contact{CompanyName: "Acme", Email: "nope", Phone: "01"}}, domain.ErrInvalidContact},
		{"unknown step", UpdateAction{Action: "goToStep", Step: "checkout"}, domain.ErrUnknownStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Update(ctx, view.ID, actions(tt.action)); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := svc.Update(ctx, view.ID, UpdateInput{}); err == nil {
		t.Fatalf("expected error for empty actions")
	}
	if _, err := svc.Update(ctx, "missing", actions(UpdateAction{Action: "nextStep"})); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_FullFlowAndSummary(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	view, _ := svc.Create(ctx)

	view, err := svc.Update(ctx, view.ID, actions(
		UpdateAction{Action: "addMachine", ID: "JURA W4"},
		UpdateAction{Action: "addMachine", ID: "JURA W4"},
		UpdateAction{Action: "nextStep"},
		UpdateAction{Action: "addCoffee", ID: "coffee-2"},
		UpdateAction{Action: "addCoffee", ID: "coffee-1"},
		UpdateAction{Action: "addCoffee", ID: "coffee-2"},
		UpdateAction{Action: "nextStep"},
		UpdateAction{Action: "addAccompaniment", ID: "accompaniment-1"},
		UpdateAction{Action: "addAccessory", ID: "accessory-4"},
		UpdateAction{Action: "setContact", Contact: &domain.Contact{CompanyName: "Acme", Email: "achat@acme.fr", Phone: "0102030405"}},
		UpdateAction{Action: "nextStep"},
	))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if view.Step != domain.StepSummary {
		t.Fatalf("expected summary step, got %s", view.Step)
	}

	sum, err := svc.Summary(ctx, view.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !sum.Total.Equal(decimal.RequireFromString("4174.38")) || !sum.MonthlyTotal.Equal(decimal.RequireFromString("294.78")) {
		t.Fatalf("unexpected totals %s / %s", sum.Total, sum.MonthlyTotal)
	}
	if sum.Savings == nil || sum.Savings.MachineID != "JURA W4" || sum.Savings.From24To36 != 22 {
		t.Fatalf("unexpected savings %+v", sum.Savings)
	}
	if sum.Contact == nil || sum.Contact.CompanyName != "Acme" {
		t.Fatalf("contact missing from summary")
	}
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	view, _ := svc.Create(ctx)
	if err := svc.Delete(ctx, view.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, view.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Summary(ctx, view.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for summary, got %v", err)
	}
}

func TestService_ActionMetricLabelsAreBounded(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	view, _ := svc.Create(ctx)

	before := testutil.CollectAndCount(metrics.SessionActions)
	for i := 0; i < 200; i++ {
		name := fmt.Sprintf("junk-%d", i)
		if _, err := svc.Update(ctx, view.ID, actions(UpdateAction{Action: name})); !errors.Is(err, domain.ErrUnsupportedAction) {
			t.Fatalf("%s: expected ErrUnsupportedAction, got %v", name, err)
		}
	}
	if after := testutil.CollectAndCount(metrics.SessionActions); after-before > 1 {
		t.Fatalf("unsupported names created %d new series", after-before)
	}

	tests := map[string]string{
		" AddMachine ": "addmachine",
		"goToStep":     "gotostep",
		"checkout":     "unsupported",
		"":             "unsupported",
	}
	for in, want := range tests {
		if got := actionName(UpdateAction{Action: in}); got != want {
			t.Fatalf("actionName(%q) = %q, want %q", in, got, want)
		}
	}
}
