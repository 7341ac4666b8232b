package form_test

import (
	"errors"
	"testing"

	"customer-intake/pkg/form"
	"customer-intake/pkg/models"
)

func str(s string) *string { return &s }

func TestUpdatesMergeWithoutLoss(t *testing.T) {
	s := form.New()

	s.UpdateFirstScreen(models.ContactPatch{FirstName: str("Ada"), City: str("Reno")})
	s.UpdateSecondScreen(models.PreferencesPatch{Email: str("ada@example.com")})
	// a later contact update touching other fields keeps both screens intact
	snap := s.UpdateFirstScreen(models.ContactPatch{LastName: str("Lovelace")})

	want := models.FormData{
		FirstName: "Ada",
		LastName:  "Lovelace",
		City:      "Reno",
		Email:     "ada@example.com",
	}
	if snap.Data != want {
		t.Fatalf("got %+v, want %+v", snap.Data, want)
	}
}

func TestSecondScreenDoesNotEraseFirst(t *testing.T) {
	s := form.New()
	s.UpdateFirstScreen(models.ContactPatch{FirstName: str("Ada"), Zip: str("89501")})

	method := models.ContactSMS
	optIn := true
	s.UpdateSecondScreen(models.PreferencesPatch{PrefContactMethod: &method, SMSOptIn: &optIn})

	d := s.Data()
	if d.FirstName != "Ada" || d.Zip != "89501" {
		t.Errorf("contact fields lost: %+v", d)
	}
	if d.PrefContactMethod != models.ContactSMS || !d.SMSOptIn {
		t.Errorf("preference fields not applied: %+v", d)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := form.New()
	s.UpdateFirstScreen(models.ContactPatch{FirstName: str("Ada")})
	gen := s.Generation()

	snap, err := s.BeginSubmit()
	if err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	s.FinishSubmit(snap.Generation, true)

	s.Reset()

	if s.Data() != (models.FormData{}) {
		t.Errorf("expected empty form, got %+v", s.Data())
	}
	if s.Phase() != form.PhaseEditing {
		t.Errorf("expected editing, got %s", s.Phase())
	}
	if s.Generation() == gen {
		t.Error("expected generation to change on reset")
	}
}

func TestSubmitPhases(t *testing.T) {
	s := form.New()

	snap, err := s.BeginSubmit()
	if err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	if _, err := s.BeginSubmit(); !errors.Is(err, form.ErrSubmitInProgress) {
		t.Fatalf("expected ErrSubmitInProgress, got %v", err)
	}

	// failed attempt returns to editing
	if !s.FinishSubmit(snap.Generation, false) {
		t.Fatal("expected FinishSubmit to apply")
	}
	if s.Phase() != form.PhaseEditing {
		t.Fatalf("expected editing, got %s", s.Phase())
	}

	snap, _ = s.BeginSubmit()
	s.FinishSubmit(snap.Generation, true)
	if _, err := s.BeginSubmit(); !errors.Is(err, form.ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
}

func TestFinishSubmitAfterResetIsDropped(t *testing.T) {
	s := form.New()
	snap, _ := s.BeginSubmit()
	s.Reset()

	if s.FinishSubmit(snap.Generation, true) {
		t.Fatal("expected stale finish to be ignored")
	}
	if s.Phase() != form.PhaseEditing {
		t.Errorf("expected editing, got %s", s.Phase())
	}
}

func TestSubscribe(t *testing.T) {
	s := form.New()
	var got []form.Snapshot
	unsubscribe := s.Subscribe(func(snap form.Snapshot) { got = append(got, snap) })

	s.UpdateFirstScreen(models.ContactPatch{FirstName: str("Ada")})
	s.Reset()
	unsubscribe()
	s.UpdateFirstScreen(models.ContactPatch{FirstName: str("Bob")})

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Data.FirstName != "Ada" || got[1].Data.FirstName != "" {
		t.Errorf("unexpected notifications %+v", got)
	}
}
