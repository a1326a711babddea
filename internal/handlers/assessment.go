package handlers

import (
	"net/http"

	"healthscope/internal/models"
	"healthscope/internal/repository"
	"healthscope/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AssessmentHandler struct {
	log           *zap.Logger
	questionnaire *models.Questionnaire
	users         *repository.UserStore
	assessments   *repository.AssessmentStore
	service       *services.AssessmentService
}

func NewAssessmentHandler(log *zap.Logger, questionnaire *models.Questionnaire, users *repository.UserStore, assessments *repository.AssessmentStore, service *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		log:           log,
		questionnaire: questionnaire,
		users:         users,
		assessments:   assessments,
		service:       service,
	}
}

type stepResponse struct {
	Step       models.Step `json:"step"`
	StepIndex  int         `json:"stepIndex"`
	TotalSteps int         `json:"totalSteps"`
}

// Start returns the current step of the questionnaire, resuming an
// in-progress assessment or opening a fresh one.
func (h *AssessmentHandler) Start(c *gin.Context) {
	user := currentUser(c)

	state, err := h.assessments.GetOrCreate(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to get assessment state", zap.Int("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start or resume assessment"})
		return
	}

	c.JSON(http.StatusOK, stepResponse{
		Step:       h.questionnaire.Steps[state.StepIndex],
		StepIndex:  state.StepIndex,
		TotalSteps: len(h.questionnaire.Steps),
	})
}

type nextStepRequest struct {
	Answers map[string]string `json:"answers"`
}

// Next saves the current step's answers and advances. Advancing past the
// final step completes the questionnaire and submits it for scoring.
func (h *AssessmentHandler) Next(c *gin.Context) {
	user := currentUser(c)
	ctx := c.Request.Context()

	var req nextStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid answers payload"})
		return
	}

	state, err := h.assessments.GetOrCreate(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get assessment state"})
		return
	}

	nextIndex := state.StepIndex + 1
	state, err = h.assessments.SaveStep(ctx, user.ID, req.Answers, nextIndex)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save answers"})
		return
	}

	if nextIndex < len(h.questionnaire.Steps) {
		c.JSON(http.StatusOK, stepResponse{
			Step:       h.questionnaire.Steps[nextIndex],
			StepIndex:  nextIndex,
			TotalSteps: len(h.questionnaire.Steps),
		})
		return
	}

	// Final step answered: complete and submit.
	state, err = h.assessments.Complete(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not complete assessment"})
		return
	}

	answers := models.ParseIntakeAnswers(state.Answers)
	result, updated := h.service.Submit(ctx, answers, user)

	if updated != nil {
		err = h.users.ApplyAssessment(ctx, user.ID, updated.RiskMetrics, updated.RiskTrends, updated.RiskLevel, updated.LastAssessmentDate)
		if err != nil {
			h.log.Error("Failed to record assessment on profile", zap.Int("userID", user.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "profile": updated})
}

// Previous moves back one step without discarding saved answers.
func (h *AssessmentHandler) Previous(c *gin.Context) {
	user := currentUser(c)

	state, err := h.assessments.Regress(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update state"})
		return
	}

	c.JSON(http.StatusOK, stepResponse{
		Step:       h.questionnaire.Steps[state.StepIndex],
		StepIndex:  state.StepIndex,
		TotalSteps: len(h.questionnaire.Steps),
	})
}
