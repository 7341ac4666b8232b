package services_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"customer-intake/pkg/clients/customerapi"
	"customer-intake/pkg/models"
)

// MockCustomerAPI records calls and returns canned replies.
type MockCustomerAPI struct {
	mu sync.Mutex

	customers    []models.Customer
	customersErr error

	addResult *customerapi.AddResult
	addErr    error
	addCalls  int
	lastAdd   models.CustomerInput
	// addGate, when set, blocks AddCustomer until it is closed.
	addGate chan struct{}

	editResult *models.Customer
	editErr    error
	editCalls  int
	lastEditID string
	// editGates block EditCustomer for the keyed customer until closed.
	editGates map[string]chan struct{}

	deleteResult *customerapi.DeleteResult
	deleteErr    error
	deleteCalls  int
}

func (m *MockCustomerAPI) Customers(ctx context.Context) ([]models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.customers, m.customersErr
}

func (m *MockCustomerAPI) AddCustomer(ctx context.Context, in models.CustomerInput) (*customerapi.AddResult, error) {
	m.mu.Lock()
	m.addCalls++
	m.lastAdd = in
	gate := m.addGate
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return m.addResult, m.addErr
}

func (m *MockCustomerAPI) EditCustomer(ctx context.Context, id string, in models.CustomerInput) (*models.Customer, error) {
	m.mu.Lock()
	m.editCalls++
	m.lastEditID = id
	gate := m.editGates[id]
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editResult, m.editErr
}

func (m *MockCustomerAPI) DeleteCustomer(ctx context.Context, id string) (*customerapi.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	return m.deleteResult, m.deleteErr
}

func (m *MockCustomerAPI) AddCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addCalls
}

func (m *MockCustomerAPI) EditCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editCalls
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
