package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentStoreGetOrCreate(t *testing.T) {
	store := NewAssessmentStore()
	ctx := context.Background()

	first, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 0, first.StepIndex)
	assert.Empty(t, first.Answers)

	// A second call resumes the same state.
	second, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestAssessmentStoreStepping(t *testing.T) {
	store := NewAssessmentStore()
	ctx := context.Background()

	_, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)

	state, err := store.SaveStep(ctx, 1, map[string]string{"age": "40", "gender": "male"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, state.StepIndex)
	assert.Equal(t, "40", state.Answers["age"])

	// Later steps merge; earlier answers survive.
	state, err = store.SaveStep(ctx, 1, map[string]string{"smoking": "never"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, state.StepIndex)
	assert.Equal(t, "40", state.Answers["age"])
	assert.Equal(t, "never", state.Answers["smoking"])
}

func TestAssessmentStoreRegress(t *testing.T) {
	store := NewAssessmentStore()
	ctx := context.Background()

	_, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	_, err = store.SaveStep(ctx, 1, map[string]string{"age": "40"}, 2)
	require.NoError(t, err)

	state, err := store.Regress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, state.StepIndex)
	assert.Equal(t, "40", state.Answers["age"])

	// Regressing at step zero stays at zero.
	_, err = store.Regress(ctx, 1)
	require.NoError(t, err)
	state, err = store.Regress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, state.StepIndex)
}

func TestAssessmentStoreComplete(t *testing.T) {
	store := NewAssessmentStore()
	ctx := context.Background()

	_, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	_, err = store.SaveStep(ctx, 1, map[string]string{"age": "40"}, 1)
	require.NoError(t, err)

	done, err := store.Complete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, done.IsComplete)
	assert.False(t, done.CompletedAt.IsZero())
	assert.Equal(t, "40", done.Answers["age"])

	// A completed state cannot be stepped or completed again.
	_, err = store.SaveStep(ctx, 1, map[string]string{"age": "41"}, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Complete(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	// Starting over yields a fresh state with new identity.
	fresh, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, done.ID, fresh.ID)
	assert.Empty(t, fresh.Answers)
}

func TestAssessmentStoreReturnsCopies(t *testing.T) {
	store := NewAssessmentStore()
	ctx := context.Background()

	_, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	state, err := store.SaveStep(ctx, 1, map[string]string{"age": "40"}, 1)
	require.NoError(t, err)

	state.Answers["age"] = "tampered"

	again, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "40", again.Answers["age"])
}

func TestAssessmentStoreDeleteForUser(t *testing.T) {
	store := NewAssessmentStore()
	ctx := context.Background()

	first, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)

	store.DeleteForUser(ctx, 1)

	fresh, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, fresh.ID)
}
