package handlers

import (
	"net/http"
	"time"

	"healthscope/internal/models"
	"healthscope/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TrackerHandler struct {
	log      *zap.Logger
	readings *repository.TrackerStore
}

func NewTrackerHandler(log *zap.Logger, readings *repository.TrackerStore) *TrackerHandler {
	return &TrackerHandler{log: log, readings: readings}
}

type readingRequest struct {
	Weight        float64 `json:"weight"`
	BloodPressure string  `json:"bloodPressure"`
	HeartRate     int     `json:"heartRate"`
	BloodSugar    float64 `json:"bloodSugar"`
	Steps         int     `json:"steps"`
	Sleep         float64 `json:"sleep"`
	Water         float64 `json:"water"`
}

// Save records one day's readings.
func (h *TrackerHandler) Save(c *gin.Context) {
	user := currentUser(c)

	var req readingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reading payload"})
		return
	}

	reading := models.Reading{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		WeightKg:      req.Weight,
		BloodPressure: req.BloodPressure,
		HeartRate:     req.HeartRate,
		BloodSugar:    req.BloodSugar,
		Steps:         req.Steps,
		SleepHours:    req.Sleep,
		WaterLiters:   req.Water,
		RecordedAt:    time.Now(),
	}

	if err := h.readings.Append(c.Request.Context(), reading); err != nil {
		h.log.Error("Failed to save reading", zap.Int("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save reading"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reading": reading})
}

func (h *TrackerHandler) History(c *gin.Context) {
	user := currentUser(c)

	readings, err := h.readings.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list readings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"readings": readings})
}

// Summary compares the two most recent readings per numeric metric.
func (h *TrackerHandler) Summary(c *gin.Context) {
	user := currentUser(c)

	latest, previous, ok := h.readings.LastTwo(c.Request.Context(), user.ID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"trends": []models.MetricTrend{}})
		return
	}

	trends := []models.MetricTrend{
		trendOf("weight", latest.WeightKg, previous.WeightKg),
		trendOf("heartRate", float64(latest.HeartRate), float64(previous.HeartRate)),
		trendOf("bloodSugar", latest.BloodSugar, previous.BloodSugar),
		trendOf("steps", float64(latest.Steps), float64(previous.Steps)),
		trendOf("sleep", latest.SleepHours, previous.SleepHours),
		trendOf("water", latest.WaterLiters, previous.WaterLiters),
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

func trendOf(metric string, latest, previous float64) models.MetricTrend {
	t := models.MetricTrend{Metric: metric, Latest: latest, Previous: previous, Direction: "steady"}
	switch {
	case latest > previous:
		t.Direction = "up"
	case latest < previous:
		t.Direction = "down"
	}
	return t
}
