package validation

import (
	"errors"
	"testing"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Count int    `json:"count" validate:"min=1,max=10"`
	Name  string `validate:"required"`
}

func TestFields(t *testing.T) {
	err := Struct(sample{Email: "nope", Count: 11})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	fields := Fields(err)
	if len(fields) != 3 {
		t.Fatalf("expected 3 field errors, got %+v", fields)
	}
	want := map[string]string{
		"email": "email must be a valid e-mail address",
		"count": "count must be at most 10",
		"Name":  "Name is required",
	}
	for _, f := range fields {
		if want[f.Field] != f.Message {
			t.Fatalf("unexpected message for %s: %q", f.Field, f.Message)
		}
	}
}

func TestFieldsIgnoresOtherErrors(t *testing.T) {
	if Fields(errors.New("boom")) != nil {
		t.Fatalf("expected nil for non validation error")
	}
	if err := Struct(sample{Email: "a@b.fr", Count: 2, Name: "x"}); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}
}
