package services

import (
	"errors"

	"customer-intake/pkg/clients/graphql"
	"customer-intake/pkg/models"
	"customer-intake/pkg/validation"
)

// OutcomeKind tags the result of a workflow operation.
type OutcomeKind string

const (
	OutcomeSuccess          OutcomeKind = "success"
	OutcomeDuplicate        OutcomeKind = "duplicate"
	OutcomeValidationFailed OutcomeKind = "validation_failed"
	OutcomeNetworkError     OutcomeKind = "network_error"
	OutcomeServerError      OutcomeKind = "server_error"
	// OutcomeIgnored means the call did nothing: the form was already
	// submitted, a request was in flight, or the reply arrived after a reset.
	OutcomeIgnored OutcomeKind = "ignored"
)

// Ignore reasons.
const (
	ReasonAlreadySubmitted = "already_submitted"
	ReasonInFlight         = "in_flight"
	ReasonStale            = "stale"
	ReasonNotPending       = "not_pending"
)

// Outcome is returned by every workflow operation. Only the fields relevant
// to Kind are set.
type Outcome struct {
	Kind             OutcomeKind         `json:"kind"`
	Message          string              `json:"message,omitempty"`
	Customer         *models.Customer    `json:"customer,omitempty"`
	ExistingCustomer *models.Customer    `json:"existingCustomer,omitempty"`
	Validation       *validation.Failure `json:"validation,omitempty"`
	Errors           []string            `json:"errors,omitempty"`
	Reason           string              `json:"reason,omitempty"`
	Err              error               `json:"-"`
}

func ignored(reason string) Outcome {
	return Outcome{Kind: OutcomeIgnored, Reason: reason}
}

// OutcomeFromError classifies a client error as ServerError or NetworkError.
func OutcomeFromError(err error) Outcome {
	var rerr *graphql.ResponseError
	if errors.As(err, &rerr) {
		return Outcome{Kind: OutcomeServerError, Errors: rerr.Messages, Err: err}
	}
	return Outcome{Kind: OutcomeNetworkError, Err: err}
}
