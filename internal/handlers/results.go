package handlers

import (
	"net/http"
	"time"

	"healthscope/internal/models"
	"healthscope/internal/risk"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ResultsHandler struct {
	log *zap.Logger
}

func NewResultsHandler(log *zap.Logger) *ResultsHandler {
	return &ResultsHandler{log: log}
}

type categoryReport struct {
	Score int    `json:"score"`
	Level string `json:"level"`
	Trend string `json:"trend"`
}

type riskReport struct {
	AssessmentRequired bool                      `json:"assessmentRequired"`
	OverallLevel       string                    `json:"overallLevel,omitempty"`
	LastAssessment     string                    `json:"lastAssessment,omitempty"`
	Categories         map[string]categoryReport `json:"categories"`
	Recommendations    []string                  `json:"recommendations,omitempty"`
}

var recommendations = []string{
	"Schedule a follow-up consultation with your assigned specialist.",
	"Aim for at least 150 minutes of moderate exercise per week.",
	"Review your diet with attention to processed food and added sugar.",
	"Track your sleep and stress levels in the health tracker.",
}

// Show renders the risk report for the signed-in profile. Before the
// first completed assessment every category reads zero; stored metrics
// are only surfaced once they have been earned.
func (h *ResultsHandler) Show(c *gin.Context) {
	user := currentUser(c)

	if !user.HasCompletedAssessment {
		c.JSON(http.StatusOK, riskReport{
			AssessmentRequired: true,
			Categories:         categorize(models.RiskScoreSet{}, models.TrendSet{}),
		})
		return
	}

	c.JSON(http.StatusOK, riskReport{
		OverallLevel:    user.RiskLevel,
		LastAssessment:  user.LastAssessmentDate.Format(time.RFC3339),
		Categories:      categorize(user.Metrics(), user.RiskTrends),
		Recommendations: recommendations,
	})
}

func categorize(scores models.RiskScoreSet, trends models.TrendSet) map[string]categoryReport {
	return map[string]categoryReport{
		"cardiovascular": {Score: scores.Cardiovascular, Level: risk.LevelFor(scores.Cardiovascular), Trend: trends.Cardiovascular},
		"diabetes":       {Score: scores.Diabetes, Level: risk.LevelFor(scores.Diabetes), Trend: trends.Diabetes},
		"cancer":         {Score: scores.Cancer, Level: risk.LevelFor(scores.Cancer), Trend: trends.Cancer},
		"mental":         {Score: scores.Mental, Level: risk.LevelFor(scores.Mental), Trend: trends.Mental},
	}
}
