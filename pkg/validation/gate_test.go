package validation_test

import (
	"testing"

	"customer-intake/pkg/models"
	"customer-intake/pkg/validation"
)

func TestCanAdvanceFromScreenOne(t *testing.T) {
	if f := validation.CanAdvanceFromScreenOne(models.FormData{FirstName: "Ada"}); f != nil {
		t.Fatalf("expected ok, got %+v", f)
	}

	// email is not part of the first screen
	f := validation.CanAdvanceFromScreenOne(models.FormData{})
	if f == nil {
		t.Fatal("expected failure for empty first name")
	}
	if f.Field != "firstName" || f.Reason != validation.MissingFirstName {
		t.Errorf("unexpected failure %+v", f)
	}
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name   string
		data   models.FormData
		reason validation.Reason
		ok     bool
	}{
		{"empty form", models.FormData{}, validation.MissingFirstName, false},
		{"email only", models.FormData{Email: "a@b.c", City: "Reno"}, validation.MissingFirstName, false},
		{"first name only", models.FormData{FirstName: "Ada", LastName: "L"}, validation.MissingEmail, false},
		{"both present", models.FormData{FirstName: "Ada", Email: "a@b.c"}, "", true},
		{"no format checks", models.FormData{FirstName: "Ada", Email: "not-an-email", Zip: "abc"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validation.CanSubmit(tt.data)
			if tt.ok {
				if f != nil {
					t.Fatalf("expected ok, got %+v", f)
				}
				return
			}
			if f == nil {
				t.Fatalf("expected %s, got ok", tt.reason)
			}
			if f.Reason != tt.reason {
				t.Errorf("expected %s, got %s", tt.reason, f.Reason)
			}
			if f.Message == "" {
				t.Error("expected a message")
			}
		})
	}
}
