package router

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Keys for storing the token in the session, context and header.
const (
	csrfTokenSessionKey = "csrf_token"
	csrfTokenContextKey = "csrf_token"
	csrfTokenHeaderKey  = "X-CSRF-Token"
)

// newCSRFToken generates a random per-session token.
func newCSRFToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// CSRFProtection is a custom middleware to protect against CSRF attacks.
// The per-session token is echoed in a response header on safe requests
// and must come back in the same header on unsafe ones.
func CSRFProtection() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		// 1. Get or create the real CSRF token for the session.
		var token string
		sessionToken := session.Get(csrfTokenSessionKey)

		if sessionToken == nil {
			newToken, err := newCSRFToken()
			if err != nil {
				// Handle the unlikely event of a token generation failure.
				c.AbortWithError(http.StatusInternalServerError, errors.New("failed to generate CSRF token"))
				return
			}
			token = newToken
			session.Set(csrfTokenSessionKey, token)
			if err := session.Save(); err != nil {
				c.AbortWithError(http.StatusInternalServerError, errors.New("failed to save session"))
				return
			}
		} else {
			token = sessionToken.(string)
		}

		// 2. Make the token available to handlers and to the client.
		c.Set(csrfTokenContextKey, token)
		c.Header(csrfTokenHeaderKey, token)

		// 3. Validate the token on unsafe methods (POST, etc.).
		if c.Request.Method == "POST" || c.Request.Method == "PUT" || c.Request.Method == "DELETE" {
			submittedToken := c.GetHeader(csrfTokenHeaderKey)
			if submittedToken == "" || submittedToken != token {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid CSRF token"})
				return
			}
		}

		// If everything is okay, proceed to the next handler.
		c.Next()
	}
}
