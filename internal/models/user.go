package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is the session-scoped profile record. It lives only in process
// memory: created at registration, mutated once per completed assessment,
// deleted at logout.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`

	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"dateOfBirth"`
	EmergencyContact string `json:"emergencyContact"`
	MedicalID        string `json:"medicalId"`

	EmailNotifications bool `json:"emailNotifications"`

	IsNewUser              bool         `json:"isNewUser"`
	HasCompletedAssessment bool         `json:"hasCompletedAssessment"`
	LastAssessmentDate     time.Time    `json:"lastAssessmentDate"`
	RiskLevel              string       `json:"riskLevel"`
	RiskMetrics            RiskScoreSet `json:"riskMetrics"`
	RiskTrends             TrendSet     `json:"riskTrends"`

	CreatedAt time.Time `json:"createdAt"`
}

// SetPassword hashes and stores the given plain-text password.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares a plain-text password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Metrics returns the risk scores a caller may present for this profile.
// Until an assessment has been completed this is always the zero set; a
// profile must never surface scores it has not earned.
func (u *User) Metrics() RiskScoreSet {
	if !u.HasCompletedAssessment {
		return RiskScoreSet{}
	}
	return u.RiskMetrics
}
