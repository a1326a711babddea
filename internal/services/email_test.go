package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthscope/internal/config"
	"healthscope/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEmailClient(url string) *EmailClient {
	return NewEmailClient(config.ExternalConfig{
		EmailURL: url,
		Timeout:  time.Second,
	}, zap.NewNop())
}

func TestSendReceipt(t *testing.T) {
	var got emailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	answers := models.IntakeAnswers{
		Age:           55,
		Gender:        "male",
		HeightCm:      175.5,
		WeightKg:      95,
		FamilyHistory: models.FamilyHistory{HeartDisease: true, Diabetes: true},
		Smoking:       models.SmokingCurrent,
		Conditions:    "asthma",
	}

	err := newEmailClient(server.URL).SendReceipt(context.Background(), "jane@example.com", answers)
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", got.Recipient)
	assert.Equal(t, "Your Health Risk Assessment Submission", got.Subject)
	assert.Contains(t, got.Body, "Thank you for completing your health risk assessment.")
	assert.Contains(t, got.Body, "age: 55\n")
	assert.Contains(t, got.Body, "height: 175.5\n")
	assert.Contains(t, got.Body, "familyHistory: heartDisease,diabetes\n")
	assert.Contains(t, got.Body, "smoking: current\n")
	assert.Contains(t, got.Body, "conditions: asthma\n")
	assert.Contains(t, got.Body, "A doctor will contact you soon to discuss your results.")
}

func TestSendReceiptNonOKStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := newEmailClient(server.URL).SendReceipt(context.Background(), "jane@example.com", models.IntakeAnswers{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
