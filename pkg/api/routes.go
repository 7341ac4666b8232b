package api

import (
	"github.com/gin-gonic/gin"

	"customer-intake/pkg/middleware"
)

// Register mounts the screen API on r
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/options", h.Options)
	r.POST("/sessions", h.CreateSession)

	s := r.Group("/sessions/:id", middleware.LoadSession(h.sessions))
	s.GET("", h.GetSession)
	s.DELETE("", h.EndSession)
	s.POST("/navigate", h.Navigate)

	s.PATCH("/form/contact", h.UpdateContact)
	s.PATCH("/form/preferences", h.UpdatePreferences)
	s.POST("/form/next", h.Next)
	s.POST("/form/back", h.Back)
	s.POST("/form/submit", h.Submit)

	s.GET("/customers", h.ListCustomers)
	s.POST("/customers/refresh", h.RefreshCustomers)
	s.PUT("/customers/:customerID", h.SaveCustomer)
	s.POST("/customers/:customerID/delete", h.RequestDelete)
	s.POST("/deletes/:token/confirm", h.ConfirmDelete)
	s.DELETE("/deletes/:token", h.AbortDelete)
}
