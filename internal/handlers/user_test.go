package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthscope/internal/models"
	"healthscope/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func deleteAccountRouter(t *testing.T, users *repository.UserStore, profile *models.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewUserHandler(zap.NewNop(), users)
	r := gin.New()
	r.Use(sessions.Sessions("healthscope_session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/profile/delete", func(c *gin.Context) { c.Set("user", profile) }, h.DeleteAccount)
	return r
}

func postDelete(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/profile/delete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteAccount(t *testing.T) {
	users := repository.NewUserStore()
	ctx := context.Background()
	profile, err := users.Create(ctx, "jane@example.com", "Str0ng!pass", "Jane", "Doe")
	require.NoError(t, err)
	r := deleteAccountRouter(t, users, profile)

	w := postDelete(r, `{"password":"Str0ng!pass","confirmation":"DELETE"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	_, err = users.GetByID(ctx, profile.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteAccountRequiresConfirmation(t *testing.T) {
	users := repository.NewUserStore()
	ctx := context.Background()
	profile, err := users.Create(ctx, "jane@example.com", "Str0ng!pass", "Jane", "Doe")
	require.NoError(t, err)
	r := deleteAccountRouter(t, users, profile)

	w := postDelete(r, `{"password":"Str0ng!pass","confirmation":"delete"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postDelete(r, `{"password":"wrong","confirmation":"DELETE"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Both rejections leave the profile intact.
	_, err = users.GetByID(ctx, profile.ID)
	assert.NoError(t, err)
}
