package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"customer-intake/pkg/session"
)

const sessionKey = "session"

// LoadSession resolves the :id path parameter to a live session.
func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := store.Get(c.Param("id"))
		switch {
		case errors.Is(err, session.ErrSessionExpired):
			c.AbortWithStatusJSON(http.StatusGone, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// Session returns the session set by LoadSession.
func Session(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
