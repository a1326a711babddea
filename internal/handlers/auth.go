package handlers

import (
	"net/http"

	"healthscope/internal/repository"
	"healthscope/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	log          *zap.Logger
	users        *repository.UserStore
	assessments  *repository.AssessmentStore
	appointments *repository.AppointmentStore
	readings     *repository.TrackerStore
}

func NewAuthHandler(log *zap.Logger, users *repository.UserStore, assessments *repository.AssessmentStore, appointments *repository.AppointmentStore, readings *repository.TrackerStore) *AuthHandler {
	return &AuthHandler{
		log:          log,
		users:        users,
		assessments:  assessments,
		appointments: appointments,
		readings:     readings,
	}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	if !utils.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
		return
	}
	if !utils.IsComplexPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters with upper, lower, digit and symbol"})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err == repository.ErrEmailTaken {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	if err != nil {
		h.log.Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	// Registration signs the user in immediately; the profile is session
	// scoped and there is nothing to confirm.
	session := sessions.Default(c)
	session.Set("userID", user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	session := sessions.Default(c)
	session.Set("userID", user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout ends the session and destroys everything scoped to it: the
// profile, questionnaire state, appointments and tracker readings. There
// is no persistence across sessions.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)

	if userID, ok := session.Get("userID").(int); ok {
		ctx := c.Request.Context()
		h.assessments.DeleteForUser(ctx, userID)
		h.appointments.DeleteForUser(ctx, userID)
		h.readings.DeleteForUser(ctx, userID)
		if err := h.users.Delete(ctx, userID); err != nil && err != repository.ErrNotFound {
			h.log.Error("Failed to delete profile on logout", zap.Int("userID", userID), zap.Error(err))
		}
	}

	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
