package repository

import (
	"context"
	"testing"
	"time"

	"healthscope/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreCreate(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	user, err := store.Create(ctx, "jane@example.com", "Str0ng!pass", "Jane", "Doe")
	require.NoError(t, err)

	assert.Equal(t, 1, user.ID)
	assert.True(t, user.IsNewUser)
	assert.False(t, user.HasCompletedAssessment)
	assert.True(t, user.Metrics().IsZero())
	assert.True(t, user.CheckPassword("Str0ng!pass"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestUserStoreCreateRejectsDuplicateEmail(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	_, err := store.Create(ctx, "jane@example.com", "Str0ng!pass", "Jane", "Doe")
	require.NoError(t, err)

	_, err = store.Create(ctx, "jane@example.com", "Other1!pass", "Janet", "Doe")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserStoreGetReturnsCopies(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	created, err := store.Create(ctx, "jane@example.com", "Str0ng!pass", "Jane", "Doe")
	require.NoError(t, err)

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	got.FirstName = "mutated"

	again, err := store.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", again.FirstName)
}

func TestUserStoreApplyAssessment(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	user, err := store.Create(ctx, "jane@example.com", "Str0ng!pass", "Jane", "Doe")
	require.NoError(t, err)

	scores := models.RiskScoreSet{Cardiovascular: 40, Diabetes: 25, Cancer: 30, Mental: 15}
	trends := models.TrendSet{Cardiovascular: "worsening", Diabetes: "stable", Cancer: "stable", Mental: "stable"}
	completedAt := time.Now()

	err = store.ApplyAssessment(ctx, user.ID, scores, trends, "Moderate", completedAt)
	require.NoError(t, err)

	got, err := store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, got.IsNewUser)
	assert.True(t, got.HasCompletedAssessment)
	assert.Equal(t, scores, got.Metrics())
	assert.Equal(t, trends, got.RiskTrends)
	assert.Equal(t, "Moderate", got.RiskLevel)
	assert.Equal(t, completedAt, got.LastAssessmentDate)
}

func TestUserStoreUpdateInfo(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	user, err := store.Create(ctx, "jane@example.com", "Str0ng!pass", "Jane", "Doe")
	require.NoError(t, err)

	err = store.UpdateInfo(ctx, user.ID, "Janet", "Smith", "555-0100", "1990-04-01", "John Smith", "MED-42")
	require.NoError(t, err)

	got, err := store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Janet", got.FirstName)
	assert.Equal(t, "Smith", got.LastName)
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, "MED-42", got.MedicalID)
}

func TestUserStoreUpdatePassword(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	user, err := store.Create(ctx, "jane@example.com", "Str0ng!pass", "Jane", "Doe")
	require.NoError(t, err)

	require.NoError(t, store.UpdatePassword(ctx, user.ID, "N3w!password"))

	got, err := store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.CheckPassword("N3w!password"))
	assert.False(t, got.CheckPassword("Str0ng!pass"))
}

func TestUserStoreDelete(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	user, err := store.Create(ctx, "jane@example.com", "Str0ng!pass", "Jane", "Doe")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, user.ID))

	_, err = store.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The email becomes available again after deletion.
	_, err = store.Create(ctx, "jane@example.com", "Str0ng!pass", "Jane", "Doe")
	assert.NoError(t, err)
}

func TestUserStoreMissingID(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	_, err := store.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.UpdateNotificationPreferences(ctx, 99, true), ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, 99), ErrNotFound)
}
