package services

import (
	"context"
	"sync"
	"time"

	"healthscope/internal/models"
	"healthscope/internal/risk"

	"go.uber.org/zap"
)

// Notification dispatch outcomes.
const (
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationSkipped = "skipped"
)

// SubmissionResult is everything one assessment submission produces. The
// locally computed scores and the external prediction are deliberately
// separate fields: the two numbers come from different models and are
// never reconciled.
type SubmissionResult struct {
	Scores             models.RiskScoreSet `json:"scores"`
	RiskLevel          string              `json:"riskLevel"`
	Trends             models.TrendSet     `json:"trends"`
	Specialist         risk.Specialist     `json:"specialist"`
	DeliveryETA        string              `json:"deliveryEta"`
	ExternalPrediction string              `json:"externalPrediction"`
	NotificationStatus string              `json:"notificationStatus"`
	SubmittedAt        time.Time           `json:"submittedAt"`
}

// Predictor and Notifier are the outbound collaborators, declared as
// interfaces so tests can stand in for the real clients.
type Predictor interface {
	Predict(ctx context.Context, a models.IntakeAnswers) (string, error)
}

type Notifier interface {
	SendReceipt(ctx context.Context, recipient string, a models.IntakeAnswers) error
}

// AssessmentService sequences scoring, specialist assignment and the
// delivery estimate, then fans out to the prediction and email services.
type AssessmentService struct {
	predictor Predictor
	notifier  Notifier
	log       *zap.Logger
	timeout   time.Duration
	now       func() time.Time
}

func NewAssessmentService(predictor Predictor, notifier Notifier, timeout time.Duration, log *zap.Logger) *AssessmentService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AssessmentService{
		predictor: predictor,
		notifier:  notifier,
		log:       log,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Submit runs one assessment. The scoring path is synchronous and cannot
// fail; the two outbound calls run concurrently under the configured
// deadline, and either failure degrades exactly one field of the result.
// The profile is updated as a copy and returned; the caller persists it.
func (s *AssessmentService) Submit(ctx context.Context, answers models.IntakeAnswers, profile *models.User) (SubmissionResult, *models.User) {
	submittedAt := s.now()

	result := SubmissionResult{
		Scores:             risk.Score(answers),
		Trends:             risk.Trends(answers),
		Specialist:         risk.AssignSpecialist(answers),
		DeliveryETA:        risk.DeliveryEstimate(submittedAt),
		NotificationStatus: NotificationSkipped,
		SubmittedAt:        submittedAt,
	}
	result.RiskLevel = risk.OverallLevel(result.Scores)

	var updated *models.User
	if profile != nil {
		p := *profile
		p.IsNewUser = false
		p.HasCompletedAssessment = true
		p.RiskMetrics = result.Scores
		p.RiskTrends = result.Trends
		p.RiskLevel = result.RiskLevel
		p.LastAssessmentDate = submittedAt
		updated = &p
	}

	outCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		prediction, err := s.predictor.Predict(outCtx, answers)
		if err != nil {
			s.log.Warn("External prediction unavailable", zap.Error(err))
			result.ExternalPrediction = PredictionUnavailable
			return
		}
		result.ExternalPrediction = prediction
	}()

	if profile != nil && profile.Email != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.notifier.SendReceipt(outCtx, profile.Email, answers); err != nil {
				s.log.Warn("Failed to send submission receipt",
					zap.String("recipient", profile.Email),
					zap.Error(err),
				)
				result.NotificationStatus = NotificationFailed
				return
			}
			result.NotificationStatus = NotificationSent
		}()
	}

	wg.Wait()
	return result, updated
}
