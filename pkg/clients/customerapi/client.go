package customerapi

import (
	"context"
	"fmt"
	"log/slog"

	"customer-intake/pkg/clients/graphql"
	"customer-intake/pkg/models"
	"customer-intake/pkg/utils"
)

// AddStatus is the outcome reported by addCustomer.
type AddStatus string

const (
	StatusSuccess AddStatus = "SUCCESS"
	StatusExists  AddStatus = "EXISTS"
)

// AddResult is the addCustomer payload.
type AddResult struct {
	Status           AddStatus        `json:"status"`
	Message          string           `json:"message"`
	Customer         *models.Customer `json:"customer"`
	ExistingCustomer *models.Customer `json:"existingCustomer"`
}

// DeleteResult is the deleteCustomer payload.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client defines the interface for the remote customer API
type Client interface {
	Customers(ctx context.Context) ([]models.Customer, error)
	AddCustomer(ctx context.Context, in models.CustomerInput) (*AddResult, error)
	EditCustomer(ctx context.Context, id string, in models.CustomerInput) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) (*DeleteResult, error)
}

type clientImpl struct {
	gql    graphql.Client
	logger *slog.Logger
}

// NewClient creates a new customer API client on top of a GraphQL transport
func NewClient(gql graphql.Client, logger *slog.Logger) Client {
	return &clientImpl{
		gql:    gql,
		logger: logger,
	}
}

func (c *clientImpl) Customers(ctx context.Context) ([]models.Customer, error) {
	var data struct {
		Customers []models.Customer `json:"customers"`
	}
	if err := c.gql.Do(ctx, customersQuery, nil, &data); err != nil {
		return nil, fmt.Errorf("error fetching customers: %w", err)
	}

	c.logger.Debug("fetched customers", "count", len(data.Customers))
	return data.Customers, nil
}

func (c *clientImpl) AddCustomer(ctx context.Context, in models.CustomerInput) (*AddResult, error) {
	var data struct {
		AddCustomer *AddResult `json:"addCustomer"`
	}
	if err := c.gql.Do(ctx, addCustomerMutation, variables(in), &data); err != nil {
		return nil, fmt.Errorf("error adding customer: %w", err)
	}
	if data.AddCustomer == nil {
		return nil, fmt.Errorf("error adding customer: %w", graphql.ErrTransport)
	}

	c.logger.Info("addCustomer answered",
		"status", data.AddCustomer.Status,
		"email_hash", utils.HashString(in.Email))
	return data.AddCustomer, nil
}

func (c *clientImpl) EditCustomer(ctx context.Context, id string, in models.CustomerInput) (*models.Customer, error) {
	vars := variables(in)
	vars["id"] = id

	var data struct {
		EditCustomer *models.Customer `json:"editCustomer"`
	}
	if err := c.gql.Do(ctx, editCustomerMutation, vars, &data); err != nil {
		return nil, fmt.Errorf("error editing customer %s: %w", id, err)
	}
	if data.EditCustomer == nil {
		return nil, fmt.Errorf("error editing customer %s: %w", id, graphql.ErrTransport)
	}

	c.logger.Info("customer updated", "id", id)
	return data.EditCustomer, nil
}

func (c *clientImpl) DeleteCustomer(ctx context.Context, id string) (*DeleteResult, error) {
	var data struct {
		DeleteCustomer *DeleteResult `json:"deleteCustomer"`
	}
	if err := c.gql.Do(ctx, deleteCustomerMutation, map[string]any{"id": id}, &data); err != nil {
		return nil, fmt.Errorf("error deleting customer %s: %w", id, err)
	}
	if data.DeleteCustomer == nil {
		return nil, fmt.Errorf("error deleting customer %s: %w", id, graphql.ErrTransport)
	}

	c.logger.Info("deleteCustomer answered", "id", id, "success", data.DeleteCustomer.Success)
	return data.DeleteCustomer, nil
}

func variables(in models.CustomerInput) map[string]any {
	return map[string]any{
		"email":                  in.Email,
		"firstName":              in.FirstName,
		"homeAddress1":           in.HomeAddress1,
		"homeAddress2":           in.HomeAddress2,
		"homeCity":               in.HomeCity,
		"homeState":              in.HomeState,
		"homePhone":              in.HomePhone,
		"homeZip":                in.HomeZip,
		"lastName":               in.LastName,
		"mobilePhone":            in.MobilePhone,
		"preferredContactMethod": string(in.PreferredContactMethod),
		"preferredContactTime":   string(in.PreferredContactTime),
		"subscribedToEmail":      in.SubscribedToEmail,
		"subscribedToSms":        in.SubscribedToSMS,
	}
}
