package handlers

import (
	"healthscope/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser returns the profile the user-loader middleware attached to
// the context. Routes calling this sit behind AuthRequired, so the value
// is always present.
func currentUser(c *gin.Context) *models.User {
	user, _ := c.Get("user")
	return user.(*models.User)
}
