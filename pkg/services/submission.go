package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"customer-intake/pkg/clients/customerapi"
	"customer-intake/pkg/config"
	"customer-intake/pkg/form"
	"customer-intake/pkg/models"
	"customer-intake/pkg/utils"
	"customer-intake/pkg/validation"
)

// Navigator is sent back to the entry screen once a successful submission
// has been on screen long enough.
type Navigator interface {
	ReturnToEntry()
}

// SubmissionWorkflow defines the interface for submitting a collected form
type SubmissionWorkflow interface {
	Submit(ctx context.Context, state *form.State, nav Navigator) Outcome
}

type submissionWorkflowImpl struct {
	client     customerapi.Client
	resetDelay time.Duration
	logger     *slog.Logger
}

// NewSubmissionWorkflow creates a new submission workflow
func NewSubmissionWorkflow(client customerapi.Client, cfg *config.Config, logger *slog.Logger) SubmissionWorkflow {
	return &submissionWorkflowImpl{
		client:     client,
		resetDelay: cfg.ResetDelay,
		logger:     logger,
	}
}

// Submit validates the form, sends a single addCustomer request and
// interprets the reply. It never retries.
func (w *submissionWorkflowImpl) Submit(ctx context.Context, state *form.State, nav Navigator) Outcome {
	snap, err := state.BeginSubmit()
	switch {
	case errors.Is(err, form.ErrAlreadySubmitted):
		return ignored(ReasonAlreadySubmitted)
	case errors.Is(err, form.ErrSubmitInProgress):
		return ignored(ReasonInFlight)
	}

	if failure := validation.CanSubmit(snap.Data); failure != nil {
		state.FinishSubmit(snap.Generation, false)
		return Outcome{Kind: OutcomeValidationFailed, Validation: failure, Message: failure.Message}
	}

	emailHash := utils.HashString(snap.Data.Email)
	w.logger.Info("submitting customer", "email_hash", emailHash, "generation", snap.Generation)

	res, err := w.client.AddCustomer(ctx, models.InputFromForm(snap.Data))
	outcome := w.interpret(res, err)

	if !state.FinishSubmit(snap.Generation, outcome.Kind == OutcomeSuccess) {
		w.logger.Info("dropping reply for a reset form", "email_hash", emailHash, "kind", outcome.Kind)
		return ignored(ReasonStale)
	}

	switch outcome.Kind {
	case OutcomeSuccess:
		if outcome.Customer == nil {
			w.logger.Warn("customer saved but reply carried no customer", "email_hash", emailHash)
		} else {
			w.logger.Info("customer saved", "email_hash", emailHash, "id", outcome.Customer.ID)
		}
		w.scheduleReset(state, snap.Generation, nav)
	case OutcomeDuplicate:
		w.logger.Info("customer already exists", "email_hash", emailHash)
	default:
		w.logger.Warn("submission failed", "email_hash", emailHash, "kind", outcome.Kind, "error", outcome.Err)
	}
	return outcome
}

func (w *submissionWorkflowImpl) interpret(res *customerapi.AddResult, err error) Outcome {
	if err != nil {
		return OutcomeFromError(err)
	}

	switch res.Status {
	case customerapi.StatusExists:
		return Outcome{Kind: OutcomeDuplicate, Message: res.Message, ExistingCustomer: res.ExistingCustomer}
	case customerapi.StatusSuccess:
		// the record exists server-side even when the reply omits it
		return Outcome{Kind: OutcomeSuccess, Message: res.Message, Customer: res.Customer}
	}
	msg := fmt.Sprintf("unexpected addCustomer status %q", res.Status)
	return Outcome{Kind: OutcomeServerError, Errors: []string{msg}, Message: res.Message}
}

// scheduleReset waits for the success banner to be read, then clears the form
// and returns to the entry screen. A reset that already happened in the
// meantime wins and the timer does nothing.
func (w *submissionWorkflowImpl) scheduleReset(state *form.State, generation uint64, nav Navigator) {
	time.AfterFunc(w.resetDelay, func() {
		if state.Generation() != generation {
			return
		}
		state.Reset()
		if nav != nil {
			nav.ReturnToEntry()
		}
		w.logger.Debug("form reset after submission", "generation", generation)
	})
}
