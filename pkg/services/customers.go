package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"customer-intake/pkg/clients/customerapi"
	"customer-intake/pkg/models"
	"customer-intake/pkg/validation"
)

var ErrFetchInProgress = errors.New("customer fetch already in progress")

// RecordListWorkflow keeps the most recently fetched customer list.
type RecordListWorkflow struct {
	client  customerapi.Client
	logger  *slog.Logger
	loading atomic.Bool

	mu        sync.RWMutex
	customers []models.Customer
}

func NewRecordListWorkflow(client customerapi.Client, logger *slog.Logger) *RecordListWorkflow {
	return &RecordListWorkflow{client: client, logger: logger}
}

// FetchAll replaces the cached list with the server's, in server order. On
// failure the previous list is kept.
func (w *RecordListWorkflow) FetchAll(ctx context.Context) ([]models.Customer, error) {
	if !w.loading.CompareAndSwap(false, true) {
		return nil, ErrFetchInProgress
	}
	defer w.loading.Store(false)

	customers, err := w.client.Customers(ctx)
	if err != nil {
		w.logger.Warn("customer fetch failed, keeping previous list", "error", err)
		return nil, err
	}
	if customers == nil {
		customers = []models.Customer{}
	}

	w.mu.Lock()
	w.customers = customers
	w.mu.Unlock()

	return clone(customers), nil
}

// Customers returns a copy of the cached list.
func (w *RecordListWorkflow) Customers() []models.Customer {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return clone(w.customers)
}

// Find looks a customer up in the cached list.
func (w *RecordListWorkflow) Find(id string) (models.Customer, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, c := range w.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (w *RecordListWorkflow) Loading() bool {
	return w.loading.Load()
}

func clone(in []models.Customer) []models.Customer {
	if in == nil {
		return nil
	}
	out := make([]models.Customer, len(in))
	copy(out, in)
	return out
}

// Draft is an editable copy of a listed customer. Changes stay local until
// saved.
type Draft struct {
	Customer models.Customer
}

// EditWorkflow saves and deletes existing customers. It is shared by all
// sessions; at most one save per customer is in flight.
type EditWorkflow struct {
	client customerapi.Client
	logger *slog.Logger

	mu     sync.Mutex
	saving map[string]struct{}
}

func NewEditWorkflow(client customerapi.Client, logger *slog.Logger) *EditWorkflow {
	return &EditWorkflow{client: client, logger: logger, saving: make(map[string]struct{})}
}

func (w *EditWorkflow) beginSave(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, busy := w.saving[id]; busy {
		return false
	}
	w.saving[id] = struct{}{}
	return true
}

func (w *EditWorkflow) endSave(id string) {
	w.mu.Lock()
	delete(w.saving, id)
	w.mu.Unlock()
}

// Load copies c into a new draft.
func (w *EditWorkflow) Load(c models.Customer) *Draft {
	return &Draft{Customer: c}
}

// Save sends the draft as an editCustomer mutation. Callers refetch the list
// on success instead of patching it.
func (w *EditWorkflow) Save(ctx context.Context, d *Draft) Outcome {
	if d.Customer.ID == "" {
		f := &validation.Failure{Field: "id", Message: "customer has no server id"}
		return Outcome{Kind: OutcomeValidationFailed, Validation: f, Message: f.Message}
	}
	id := d.Customer.ID
	if !w.beginSave(id) {
		return ignored(ReasonInFlight)
	}
	defer w.endSave(id)

	updated, err := w.client.EditCustomer(ctx, d.Customer.ID, models.InputFromCustomer(d.Customer))
	if err != nil {
		w.logger.Warn("customer update failed", "id", d.Customer.ID, "error", err)
		return OutcomeFromError(err)
	}
	return Outcome{Kind: OutcomeSuccess, Customer: updated}
}

const (
	deletePending int32 = iota
	deleteConfirmed
	deleteAborted
)

// DeleteRequest is the first half of a delete. Nothing is sent until Confirm.
type DeleteRequest struct {
	w     *EditWorkflow
	id    string
	state atomic.Int32
}

// RequestDelete starts a delete that must be confirmed or aborted.
func (w *EditWorkflow) RequestDelete(id string) *DeleteRequest {
	return &DeleteRequest{w: w, id: id}
}

func (r *DeleteRequest) ID() string {
	return r.id
}

// Pending reports whether the request can still be confirmed or aborted.
func (r *DeleteRequest) Pending() bool {
	return r.state.Load() == deletePending
}

// Abort cancels a pending delete. It reports false if the request was
// already confirmed or aborted.
func (r *DeleteRequest) Abort() bool {
	return r.state.CompareAndSwap(deletePending, deleteAborted)
}

// Confirm sends the deleteCustomer mutation. It runs at most once per request
// and there is no undo.
func (r *DeleteRequest) Confirm(ctx context.Context) Outcome {
	if !r.state.CompareAndSwap(deletePending, deleteConfirmed) {
		return ignored(ReasonNotPending)
	}

	res, err := r.w.client.DeleteCustomer(ctx, r.id)
	if err != nil {
		r.w.logger.Warn("customer delete failed", "id", r.id, "error", err)
		return OutcomeFromError(err)
	}
	if !res.Success {
		return Outcome{Kind: OutcomeServerError, Errors: []string{res.Message}, Message: res.Message}
	}

	r.w.logger.Info("customer deleted", "id", r.id)
	return Outcome{Kind: OutcomeSuccess, Message: res.Message}
}
