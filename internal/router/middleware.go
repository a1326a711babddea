package router

import (
	"net/http"

	"healthscope/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLoaderMiddleware checks for a userID in the session. If found, it
// loads the profile from the store and adds it to the context. This
// ensures we don't have "zombie" sessions for profiles that no longer
// exist (the store is wiped on logout and account deletion).
func UserLoaderMiddleware(log *zap.Logger, users *repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get("userID").(int)
		if !ok {
			// No user ID in session, proceed as a guest.
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			// The session points at a deleted profile. Clear it and
			// treat the request as a guest.
			session.Clear()
			session.Options(sessions.Options{Path: "/", MaxAge: -1})
			if err := session.Save(); err != nil {
				log.Warn("Failed to clear stale session", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AuthRequired rejects requests that did not load a valid profile.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user"); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
