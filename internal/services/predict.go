package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"healthscope/internal/config"
	"healthscope/internal/models"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// PredictionUnavailable is what callers surface when the prediction
// service cannot be reached or returns garbage.
const PredictionUnavailable = "Error fetching prediction"

// predictRequest mirrors the payload the prediction service expects: the
// intake record with the family history flattened to a comma-joined list
// of the checked condition names.
type predictRequest struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	FamilyHistory string  `json:"familyHistory"`
	Smoking       string  `json:"smoking"`
	Alcohol       string  `json:"alcohol"`
	Exercise      string  `json:"exercise"`
	Diet          string  `json:"diet"`
	Stress        string  `json:"stress"`
	Sleep         string  `json:"sleep"`
	Conditions    string  `json:"conditions"`
	Medications   string  `json:"medications"`
	Allergies     string  `json:"allergies"`
}

type predictResponse struct {
	Prediction string `json:"prediction"`
}

// PredictClient calls the external prediction service. A circuit breaker
// sits in front of it so a flapping upstream degrades requests quickly
// instead of holding every submission for the full timeout.
type PredictClient struct {
	url        string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *zap.Logger
}

func NewPredictClient(cfg config.ExternalConfig, log *zap.Logger) *PredictClient {
	settings := gobreaker.Settings{
		Name:    "predict",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Prediction circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &PredictClient{
		url:        cfg.PredictURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		log:        log,
	}
}

// Predict submits the answers and returns the upstream's prediction
// string. Any transport, status or parse failure is returned as an error;
// the caller decides how to degrade.
func (c *PredictClient) Predict(ctx context.Context, a models.IntakeAnswers) (string, error) {
	payload := predictRequest{
		Age:           a.Age,
		Gender:        a.Gender,
		Height:        a.HeightCm,
		Weight:        a.WeightKg,
		FamilyHistory: strings.Join(a.FamilyHistory.Flagged(), ","),
		Smoking:       a.Smoking,
		Alcohol:       a.Alcohol,
		Exercise:      a.Exercise,
		Diet:          a.Diet,
		Stress:        a.Stress,
		Sleep:         a.Sleep,
		Conditions:    a.Conditions,
		Medications:   a.Medications,
		Allergies:     a.Allergies,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode prediction request: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("prediction service returned status %d", resp.StatusCode)
		}

		var parsed predictResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return nil, fmt.Errorf("failed to decode prediction response: %w", err)
		}
		return parsed.Prediction, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}
