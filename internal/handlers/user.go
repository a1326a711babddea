package handlers

import (
	"net/http"

	"healthscope/internal/repository"
	"healthscope/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	log   *zap.Logger
	users *repository.UserStore
}

func NewUserHandler(log *zap.Logger, users *repository.UserStore) *UserHandler {
	return &UserHandler{log: log, users: users}
}

func (h *UserHandler) Show(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}

type updateInfoRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"dateOfBirth"`
	EmergencyContact string `json:"emergencyContact"`
	MedicalID        string `json:"medicalId"`
}

func (h *UserHandler) UpdateInfo(c *gin.Context) {
	user := currentUser(c)

	var req updateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	err := h.users.UpdateInfo(c.Request.Context(), user.ID, req.FirstName, req.LastName, req.Phone, req.DateOfBirth, req.EmergencyContact, req.MedicalID)
	if err != nil {
		h.log.Error("Failed to update user info", zap.Int("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "profile updated"})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	user := currentUser(c)

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid password payload"})
		return
	}

	if !user.CheckPassword(req.CurrentPassword) {
		c.JSON(http.StatusForbidden, gin.H{"error": "incorrect current password"})
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new passwords do not match"})
		return
	}
	if !utils.IsComplexPassword(req.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters with upper, lower, digit and symbol"})
		return
	}

	if err := h.users.UpdatePassword(c.Request.Context(), user.ID, req.NewPassword); err != nil {
		h.log.Error("Failed to update password", zap.Int("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

type notificationSettingsRequest struct {
	EmailNotifications bool `json:"emailNotifications"`
}

func (h *UserHandler) UpdateNotificationSettings(c *gin.Context) {
	user := currentUser(c)

	var req notificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload"})
		return
	}

	if err := h.users.UpdateNotificationPreferences(c.Request.Context(), user.ID, req.EmailNotifications); err != nil {
		h.log.Error("Failed to update notification preferences", zap.Int("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save notification settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "notification settings saved"})
}

type deleteAccountRequest struct {
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	user := currentUser(c)

	var req deleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if req.Confirmation != "DELETE" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type DELETE to confirm"})
		return
	}
	if !user.CheckPassword(req.Password) {
		c.JSON(http.StatusForbidden, gin.H{"error": "incorrect password"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), user.ID); err != nil {
		h.log.Error("Failed to delete account", zap.Int("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		// The account is already gone; the stale cookie cannot resolve
		// to a profile, so log and carry on.
		h.log.Warn("Failed to clear session after account deletion", zap.Int("userID", user.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"status": "account deleted"})
}
