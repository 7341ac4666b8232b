package customerapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"customer-intake/pkg/clients/customerapi"
	"customer-intake/pkg/clients/graphql"
	"customer-intake/pkg/models"
)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newClient(t *testing.T, h func(req gqlRequest) string) customerapi.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(h(req)))
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return customerapi.NewClient(graphql.NewClient(srv.URL, 2*time.Second, logger), logger)
}

func TestAddCustomerSendsFormVariables(t *testing.T) {
	c := newClient(t, func(req gqlRequest) string {
		if !strings.Contains(req.Query, "addCustomer(") {
			t.Errorf("expected addCustomer mutation, got %s", req.Query)
		}
		if req.Variables["firstName"] != "Ada" || req.Variables["homeZip"] != "89501" {
			t.Errorf("unexpected variables %v", req.Variables)
		}
		if req.Variables["subscribedToSms"] != true {
			t.Errorf("expected subscribedToSms true, got %v", req.Variables["subscribedToSms"])
		}
		return `{"data":{"addCustomer":{"status":"SUCCESS","message":"saved","customer":{"id":"1","first_name":"Ada","email":"ada@example.com"}}}}`
	})

	in := models.InputFromForm(models.FormData{FirstName: "Ada", Email: "ada@example.com", Zip: "89501", SMSOptIn: true})
	res, err := c.AddCustomer(context.Background(), in)
	if err != nil {
		t.Fatalf("AddCustomer: %v", err)
	}
	if res.Status != customerapi.StatusSuccess || res.Customer == nil || res.Customer.ID != "1" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestCustomersPreservesServerOrder(t *testing.T) {
	c := newClient(t, func(req gqlRequest) string {
		return `{"data":{"customers":[{"id":"b","first_name":"Bo","full_name":"Bo Diddley"},{"id":"a","first_name":"Al"}]}}`
	})

	got, err := c.Customers(context.Background())
	if err != nil {
		t.Fatalf("Customers: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("unexpected customers %+v", got)
	}
	if got[0].DisplayName() != "Bo Diddley" || got[1].DisplayName() != "Al" {
		t.Errorf("unexpected display names %q %q", got[0].DisplayName(), got[1].DisplayName())
	}
}

func TestEditAndDelete(t *testing.T) {
	c := newClient(t, func(req gqlRequest) string {
		switch {
		case strings.Contains(req.Query, "editCustomer("):
			if req.Variables["id"] != "9" {
				t.Errorf("expected id 9, got %v", req.Variables["id"])
			}
			return `{"data":{"editCustomer":{"id":"9","first_name":"New","email":"n@example.com"}}}`
		case strings.Contains(req.Query, "deleteCustomer("):
			return `{"data":{"deleteCustomer":{"success":true,"message":"gone"}}}`
		}
		return `{"errors":[{"message":"unknown operation"}]}`
	})

	updated, err := c.EditCustomer(context.Background(), "9", models.CustomerInput{FirstName: "New", Email: "n@example.com"})
	if err != nil {
		t.Fatalf("EditCustomer: %v", err)
	}
	if updated.FirstName != "New" {
		t.Errorf("unexpected customer %+v", updated)
	}

	del, err := c.DeleteCustomer(context.Background(), "9")
	if err != nil {
		t.Fatalf("DeleteCustomer: %v", err)
	}
	if !del.Success || del.Message != "gone" {
		t.Errorf("unexpected delete result %+v", del)
	}
}

func TestServerErrorsAreWrapped(t *testing.T) {
	c := newClient(t, func(req gqlRequest) string {
		return `{"errors":[{"message":"email is invalid"}]}`
	})

	_, err := c.EditCustomer(context.Background(), "9", models.CustomerInput{})
	var rerr *graphql.ResponseError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected ResponseError, got %v", err)
	}
}
