// Package messages holds the user-visible banner texts.
package messages

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	FirstNameRequired = "first_name_required"
	EmailRequired     = "email_required"
	SaveFailed        = "save_failed"
	UpdateFailed      = "update_failed"
	DeleteFailed      = "delete_failed"
	FetchFailed       = "fetch_failed"
	NetworkError      = "network_error"
	AlreadySubmitted  = "already_submitted"
	RequestInFlight   = "request_in_flight"
	CustomerSaved     = "customer_saved"
	CustomerUpdated   = "customer_updated"
	CustomerDeleted   = "customer_deleted"
	CustomerExists    = "customer_exists"
	ConfirmDelete     = "confirm_delete"
)

var defaultMessages = []*i18n.Message{
	{ID: FirstNameRequired, Other: "First name is required"},
	{ID: EmailRequired, Other: "Email is required"},
	{ID: SaveFailed, Other: "An error occurred while saving the customer. Please try again."},
	{ID: UpdateFailed, Other: "An error occurred while updating the customer. Please try again."},
	{ID: DeleteFailed, Other: "An error occurred while deleting the customer. Please try again."},
	{ID: FetchFailed, Other: "Could not load customers. Please try again."},
	{ID: NetworkError, Other: "Network error occurred"},
	{ID: AlreadySubmitted, Other: "This customer has already been submitted."},
	{ID: RequestInFlight, Other: "Please wait, a request is already in progress."},
	{ID: CustomerSaved, Other: "Customer saved."},
	{ID: CustomerUpdated, Other: "Customer updated."},
	{ID: CustomerDeleted, Other: "Customer deleted."},
	{ID: CustomerExists, Other: "A customer with these details already exists."},
	{ID: ConfirmDelete, Other: "Are you sure you want to delete this customer? This action cannot be undone."},
}

// Catalog looks message IDs up for one language.
type Catalog struct {
	localizer *i18n.Localizer
}

// NewCatalog builds a catalog for lang. English texts are built in; any
// *.toml translation files in dir (for example active.es.toml) are loaded on
// top. dir may be empty.
func NewCatalog(lang, dir string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if err := bundle.AddMessages(language.English, defaultMessages...); err != nil {
		return nil, fmt.Errorf("error adding default messages: %w", err)
	}

	if dir != "" {
		files, err := filepath.Glob(filepath.Join(dir, "*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error listing message files: %w", err)
		}
		for _, f := range files {
			if _, err := bundle.LoadMessageFile(f); err != nil {
				return nil, fmt.Errorf("error loading message file %s: %w", f, err)
			}
		}
		if len(files) == 0 {
			if _, err := os.Stat(dir); err != nil {
				return nil, fmt.Errorf("error reading messages dir: %w", err)
			}
		}
	}

	return &Catalog{localizer: i18n.NewLocalizer(bundle, lang)}, nil
}

// Text returns the message for id, or id itself when it is unknown.
func (c *Catalog) Text(id string) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
