package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"customer-intake/pkg/form"
	"customer-intake/pkg/messages"
	"customer-intake/pkg/middleware"
	"customer-intake/pkg/models"
	"customer-intake/pkg/services"
	"customer-intake/pkg/session"
	"customer-intake/pkg/validation"
)

// Handlers contains all HTTP handlers for the screen API
type Handlers struct {
	sessions   *session.Store
	submission services.SubmissionWorkflow
	edit       *services.EditWorkflow
	catalog    *messages.Catalog
	logger     *slog.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	sessions *session.Store,
	submission services.SubmissionWorkflow,
	edit *services.EditWorkflow,
	catalog *messages.Catalog,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		sessions:   sessions,
		submission: submission,
		edit:       edit,
		catalog:    catalog,
		logger:     logger,
	}
}

// Banner is the message strip shown at the top of a screen.
type Banner struct {
	IsShown bool   `json:"isShown"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type sessionView struct {
	ID     string         `json:"id"`
	Screen session.Screen `json:"screen"`
	Form   form.Snapshot  `json:"form"`
}

func viewOf(s *session.Session) sessionView {
	return sessionView{ID: s.ID, Screen: s.Screen(), Form: s.Form.Snapshot()}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Options serves the picker values for the form screens
func (h *Handlers) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states":         models.RegionOptions,
		"contactMethods": models.ContactMethodOptions,
		"contactTimes":   models.ContactTimeOptions,
	})
}

func (h *Handlers) CreateSession(c *gin.Context) {
	s := h.sessions.Create()
	c.JSON(http.StatusCreated, viewOf(s))
}

func (h *Handlers) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, viewOf(middleware.Session(c)))
}

func (h *Handlers) EndSession(c *gin.Context) {
	h.sessions.Delete(middleware.Session(c).ID)
	c.Status(http.StatusNoContent)
}

func (h *Handlers) Navigate(c *gin.Context) {
	var body struct {
		Screen string `json:"screen" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}
	to, ok := session.ParseScreen(body.Screen)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown screen " + body.Screen})
		return
	}

	s := middleware.Session(c)
	if err := s.Navigate(to); err != nil {
		h.refuseMove(c, s, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(s))
}

// UpdateContact merges fields typed on the contact screen
func (h *Handlers) UpdateContact(c *gin.Context) {
	var patch models.ContactPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}
	s := middleware.Session(c)
	c.JSON(http.StatusOK, gin.H{"form": s.Form.UpdateFirstScreen(patch)})
}

// UpdatePreferences merges fields set on the preferences screen
func (h *Handlers) UpdatePreferences(c *gin.Context) {
	var patch models.PreferencesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}
	s := middleware.Session(c)
	c.JSON(http.StatusOK, gin.H{"form": s.Form.UpdateSecondScreen(patch)})
}

func (h *Handlers) Next(c *gin.Context) {
	s := middleware.Session(c)
	if err := s.Next(); err != nil {
		h.refuseMove(c, s, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": viewOf(s)})
}

// refuseMove reports a screen change the session did not make.
func (h *Handlers) refuseMove(c *gin.Context, s *session.Session, err error) {
	var failure *validation.Failure
	if errors.As(err, &failure) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"session":    viewOf(s),
			"validation": failure,
			"banner":     h.validationBanner(failure),
		})
		return
	}
	c.JSON(http.StatusConflict, gin.H{
		"session": viewOf(s),
		"error":   err.Error(),
	})
}

func (h *Handlers) Back(c *gin.Context) {
	s := middleware.Session(c)
	s.Back()
	c.JSON(http.StatusOK, gin.H{"session": viewOf(s)})
}

// Submit sends the collected form to the customer API
func (h *Handlers) Submit(c *gin.Context) {
	s := middleware.Session(c)

	// the request outlives a client that hangs up
	ctx := context.WithoutCancel(c.Request.Context())
	outcome := h.submission.Submit(ctx, s.Form, s)

	c.JSON(statusFor(outcome), gin.H{
		"outcome": outcome,
		"banner":  h.submitBanner(outcome),
		"session": viewOf(s),
	})
}

// ListCustomers returns the cached list, fetching first when asked to or
// when nothing has been fetched yet
func (h *Handlers) ListCustomers(c *gin.Context) {
	s := middleware.Session(c)
	customers := s.List.Customers()

	if customers == nil || c.Query("refresh") == "true" {
		h.fetchCustomers(c, s)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "loading": s.List.Loading()})
}

func (h *Handlers) RefreshCustomers(c *gin.Context) {
	h.fetchCustomers(c, middleware.Session(c))
}

func (h *Handlers) fetchCustomers(c *gin.Context, s *session.Session) {
	customers, err := s.List.FetchAll(c.Request.Context())
	if errors.Is(err, services.ErrFetchInProgress) {
		c.JSON(http.StatusConflict, gin.H{
			"customers": s.List.Customers(),
			"loading":   true,
			"banner":    Banner{IsShown: true, Message: h.catalog.Text(messages.RequestInFlight)},
		})
		return
	}
	if err != nil {
		outcome := services.OutcomeFromError(err)
		banner := Banner{IsShown: true, Message: h.catalog.Text(messages.FetchFailed)}
		if outcome.Kind == services.OutcomeNetworkError {
			banner.Message = h.catalog.Text(messages.NetworkError)
		}
		c.JSON(statusFor(outcome), gin.H{
			"customers": s.List.Customers(),
			"outcome":   outcome,
			"banner":    banner,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "loading": false})
}

// SaveCustomer applies the posted fields to a copy of the listed customer
// and saves it
func (h *Handlers) SaveCustomer(c *gin.Context) {
	s := middleware.Session(c)
	id := c.Param("customerID")

	existing, ok := s.List.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not in list"})
		return
	}

	draft := h.edit.Load(existing)
	if err := c.ShouldBindJSON(&draft.Customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}
	// ids only ever come from the server
	draft.Customer.ID = id

	ctx := context.WithoutCancel(c.Request.Context())
	outcome := h.edit.Save(ctx, draft)
	h.respondAfterChange(c, s, outcome, messages.CustomerUpdated, messages.UpdateFailed)
}

// RequestDelete is the first step of a delete. It returns the token the
// confirm and abort calls need.
func (h *Handlers) RequestDelete(c *gin.Context) {
	s := middleware.Session(c)
	id := c.Param("customerID")

	if _, ok := s.List.Find(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not in list"})
		return
	}

	token := s.HoldDelete(h.edit.RequestDelete(id))
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": h.catalog.Text(messages.ConfirmDelete),
	})
}

func (h *Handlers) ConfirmDelete(c *gin.Context) {
	s := middleware.Session(c)
	req, ok := s.TakeDelete(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pending delete for token"})
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	outcome := req.Confirm(ctx)
	h.respondAfterChange(c, s, outcome, messages.CustomerDeleted, messages.DeleteFailed)
}

func (h *Handlers) AbortDelete(c *gin.Context) {
	s := middleware.Session(c)
	req, ok := s.TakeDelete(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pending delete for token"})
		return
	}
	req.Abort()
	c.Status(http.StatusNoContent)
}

// respondAfterChange refetches the list after a successful save or delete.
// The change itself stands even if the refetch fails.
func (h *Handlers) respondAfterChange(c *gin.Context, s *session.Session, outcome services.Outcome, okID, failID string) {
	banner := Banner{IsShown: true, Success: outcome.Kind == services.OutcomeSuccess}
	switch outcome.Kind {
	case services.OutcomeSuccess:
		banner.Message = h.catalog.Text(okID)
		if _, err := s.List.FetchAll(c.Request.Context()); err != nil {
			h.logger.Warn("refetch after change failed", "session", s.ID, "error", err)
		}
	case services.OutcomeNetworkError:
		banner.Message = h.catalog.Text(messages.NetworkError)
	case services.OutcomeIgnored:
		banner.Message = h.catalog.Text(messages.RequestInFlight)
	default:
		banner.Message = h.catalog.Text(failID)
	}
	if outcome.Kind == services.OutcomeServerError && outcome.Message != "" {
		banner.Message = outcome.Message
	}

	c.JSON(statusFor(outcome), gin.H{
		"outcome":   outcome,
		"banner":    banner,
		"customers": s.List.Customers(),
	})
}

func (h *Handlers) submitBanner(o services.Outcome) Banner {
	switch o.Kind {
	case services.OutcomeSuccess:
		return Banner{IsShown: true, Success: true, Message: h.orDefault(o.Message, messages.CustomerSaved)}
	case services.OutcomeDuplicate:
		return Banner{IsShown: true, Message: h.orDefault(o.Message, messages.CustomerExists)}
	case services.OutcomeValidationFailed:
		return h.validationBanner(o.Validation)
	case services.OutcomeServerError:
		return Banner{IsShown: true, Message: h.catalog.Text(messages.SaveFailed)}
	case services.OutcomeNetworkError:
		return Banner{IsShown: true, Message: h.catalog.Text(messages.NetworkError)}
	}

	switch o.Reason {
	case services.ReasonAlreadySubmitted:
		return Banner{IsShown: true, Success: true, Message: h.catalog.Text(messages.AlreadySubmitted)}
	case services.ReasonInFlight:
		return Banner{IsShown: true, Message: h.catalog.Text(messages.RequestInFlight)}
	}
	return Banner{}
}

func (h *Handlers) validationBanner(f *validation.Failure) Banner {
	msg := f.Message
	switch f.Reason {
	case validation.MissingFirstName:
		msg = h.catalog.Text(messages.FirstNameRequired)
	case validation.MissingEmail:
		msg = h.catalog.Text(messages.EmailRequired)
	}
	return Banner{IsShown: true, Message: msg}
}

func (h *Handlers) orDefault(serverMsg, id string) string {
	if serverMsg != "" {
		return serverMsg
	}
	return h.catalog.Text(id)
}

func statusFor(o services.Outcome) int {
	switch o.Kind {
	case services.OutcomeSuccess:
		return http.StatusOK
	case services.OutcomeDuplicate:
		return http.StatusConflict
	case services.OutcomeValidationFailed:
		return http.StatusUnprocessableEntity
	case services.OutcomeServerError:
		return http.StatusBadGateway
	case services.OutcomeNetworkError:
		return http.StatusServiceUnavailable
	case services.OutcomeIgnored:
		if o.Reason == services.ReasonStale {
			return http.StatusOK
		}
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
