package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"healthscope/internal/config"
	"healthscope/internal/models"

	"go.uber.org/zap"
)

const receiptSubject = "Your Health Risk Assessment Submission"

// EmailClient dispatches the submission receipt through the external
// email relay.
type EmailClient struct {
	url        string
	httpClient *http.Client
	log        *zap.Logger
}

func NewEmailClient(cfg config.ExternalConfig, log *zap.Logger) *EmailClient {
	return &EmailClient{
		url:        cfg.EmailURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

type emailRequest struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// SendReceipt emails the user a plain-text copy of everything they
// submitted. The error is returned, not swallowed; the orchestrator
// records the outcome without letting it affect the assessment result.
func (c *EmailClient) SendReceipt(ctx context.Context, recipient string, a models.IntakeAnswers) error {
	payload := emailRequest{
		Recipient: recipient,
		Subject:   receiptSubject,
		Body:      receiptBody(a),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}
	return nil
}

// receiptBody renders every submitted field as a "key: value" line between
// the fixed greeting and sign-off.
func receiptBody(a models.IntakeAnswers) string {
	var b strings.Builder
	b.WriteString("Thank you for completing your health risk assessment.\n\nYour responses:\n")

	fmt.Fprintf(&b, "age: %d\n", a.Age)
	fmt.Fprintf(&b, "gender: %s\n", a.Gender)
	fmt.Fprintf(&b, "height: %g\n", a.HeightCm)
	fmt.Fprintf(&b, "weight: %g\n", a.WeightKg)
	fmt.Fprintf(&b, "familyHistory: %s\n", strings.Join(a.FamilyHistory.Flagged(), ","))
	fmt.Fprintf(&b, "smoking: %s\n", a.Smoking)
	fmt.Fprintf(&b, "alcohol: %s\n", a.Alcohol)
	fmt.Fprintf(&b, "exercise: %s\n", a.Exercise)
	fmt.Fprintf(&b, "diet: %s\n", a.Diet)
	fmt.Fprintf(&b, "stress: %s\n", a.Stress)
	fmt.Fprintf(&b, "sleep: %s\n", a.Sleep)
	fmt.Fprintf(&b, "conditions: %s\n", a.Conditions)
	fmt.Fprintf(&b, "medications: %s\n", a.Medications)
	fmt.Fprintf(&b, "allergies: %s\n", a.Allergies)

	b.WriteString("\nA doctor will contact you soon to discuss your results.")
	return b.String()
}
