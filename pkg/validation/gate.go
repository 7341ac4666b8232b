// Package validation gates screen transitions and submission on required fields.
// Only presence is checked; shape of emails, phones and zips is left to the server.
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"customer-intake/pkg/models"
)

// Reason names the check that failed.
type Reason string

const (
	MissingFirstName Reason = "MissingFirstName"
	MissingEmail     Reason = "MissingEmail"
)

// Failure describes the first field that blocked a transition.
type Failure struct {
	Field   string `json:"field"`
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}

func (f *Failure) Error() string {
	return f.Field + ": " + f.Message
}

var validate = validator.New()

// field checks in the order they are reported
var checks = []struct {
	structField string
	field       string
	reason      Reason
	message     string
}{
	{"FirstName", "firstName", MissingFirstName, "First name is required"},
	{"Email", "email", MissingEmail, "Email is required"},
}

// CanAdvanceFromScreenOne guards the move from the contact screen to the
// preferences screen.
func CanAdvanceFromScreenOne(data models.FormData) *Failure {
	return firstFailure(validate.StructPartial(data, "FirstName"))
}

// CanSubmit is re-run at submission time regardless of earlier screen checks.
func CanSubmit(data models.FormData) *Failure {
	return firstFailure(validate.Struct(data))
}

func firstFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Failure{Field: "form", Message: err.Error()}
	}
	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = true
	}
	for _, c := range checks {
		if failed[c.structField] {
			return &Failure{Field: c.field, Reason: c.reason, Message: c.message}
		}
	}
	fe := verrs[0]
	return &Failure{Field: fe.Field(), Message: fe.Error()}
}
