package workflow

import (
	"testing"
	"time"

	"vehicle_acquisition/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewCase(t *testing.T) {
	c := NewCase("case-1", t0)

	assert.Equal(t, entities.StageIntake, c.CurrentStage)
	assert.Equal(t, entities.StageStatusActive, c.StatusOf(entities.StageIntake))
	for _, s := range entities.Stages()[1:] {
		assert.Equal(t, entities.StageStatusPending, c.StatusOf(s), "stage %d", s)
	}
	assert.Equal(t, entities.CaseStatusNew, c.Status)
	assert.Equal(t, t0, c.StageStartedAt[entities.StageIntake])
	require.NoError(t, Validate(c))
}

func TestAdvanceTo_NextStage(t *testing.T) {
	for n := entities.FirstStage; n < entities.LastStage; n++ {
		c := NewCase("case-1", t0)
		_, err := AdvanceTo(&c, n, t0)
		require.NoError(t, err)

		later := t0.Add(time.Hour)
		tr, err := AdvanceTo(&c, n+1, later)
		require.NoError(t, err)

		assert.Equal(t, entities.StageStatusComplete, c.StatusOf(n))
		assert.Equal(t, entities.StageStatusActive, c.StatusOf(n+1))
		assert.Equal(t, n+1, c.CurrentStage)
		assert.Equal(t, n, tr.Closed)
		assert.True(t, tr.Changed)
		assert.Equal(t, later, c.LastActivity.Timestamp)
		require.NoError(t, Validate(c))
	}
}

func TestAdvanceTo_JumpBackward(t *testing.T) {
	c := NewCase("case-1", t0)
	_, err := AdvanceTo(&c, entities.StagePaperwork, t0)
	require.NoError(t, err)

	tr, err := AdvanceTo(&c, entities.StageInspection, t0.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, entities.StagePaperwork, tr.Closed)
	assert.Equal(t, entities.StageStatusComplete, c.StatusOf(entities.StageIntake))
	assert.Equal(t, entities.StageStatusComplete, c.StatusOf(entities.StageScheduleInspection))
	assert.Equal(t, entities.StageStatusActive, c.StatusOf(entities.StageInspection))
	assert.Equal(t, entities.StageStatusPending, c.StatusOf(entities.StagePaperwork))
	assert.Equal(t, entities.StageStatusPending, c.StatusOf(entities.StageCompletion))
	require.NoError(t, Validate(c))
}

func TestAdvanceTo_SameStageOnlyTouchesActivity(t *testing.T) {
	c := NewCase("case-1", t0)
	_, err := AdvanceTo(&c, entities.StageInspection, t0)
	require.NoError(t, err)
	before := make(map[entities.Stage]entities.StageStatus, len(c.StageStatuses))
	for k, v := range c.StageStatuses {
		before[k] = v
	}
	started := c.StageStartedAt[entities.StageInspection]

	later := t0.Add(2 * time.Hour)
	tr, err := AdvanceTo(&c, entities.StageInspection, later)
	require.NoError(t, err)

	assert.False(t, tr.Changed)
	assert.Zero(t, tr.Closed)
	assert.Equal(t, before, c.StageStatuses)
	assert.Equal(t, started, c.StageStartedAt[entities.StageInspection])
	assert.Equal(t, later, c.LastActivity.Timestamp)
}

func TestAdvanceTo_InvalidStage(t *testing.T) {
	for _, target := range []entities.Stage{0, -1, 8, 42} {
		c := NewCase("case-1", t0)
		_, err := AdvanceTo(&c, target, t0)
		assert.ErrorIs(t, err, ErrInvalidStage)
		assert.Equal(t, entities.StageIntake, c.CurrentStage)
	}
}

func TestComplete(t *testing.T) {
	c := NewCase("case-1", t0)
	_, err := AdvanceTo(&c, entities.StageCompletion, t0)
	require.NoError(t, err)

	tr := Complete(&c, t0.Add(time.Hour))

	assert.True(t, tr.Changed)
	assert.Equal(t, entities.StageCompletion, tr.Closed)
	assert.True(t, c.IsComplete())
	assert.Equal(t, entities.CaseStatusCompleted, c.Status)
	assert.Equal(t, entities.StageCompletion, c.CurrentStage)
	require.NoError(t, Validate(c))

	again := Complete(&c, t0.Add(2*time.Hour))
	assert.False(t, again.Changed)
	assert.Zero(t, again.Closed)
}

func TestAdvanceTo_ReopensCompletedCase(t *testing.T) {
	c := NewCase("case-1", t0)
	Complete(&c, t0)

	tr, err := AdvanceTo(&c, entities.StagePaperwork, t0.Add(time.Minute))
	require.NoError(t, err)

	assert.Zero(t, tr.Closed)
	assert.Equal(t, entities.CaseStatusInProgress, c.Status)
	assert.Equal(t, entities.StageStatusActive, c.StatusOf(entities.StagePaperwork))
	require.NoError(t, Validate(c))
}

func TestAdvanceTo_LastStageKeepsCompletedCase(t *testing.T) {
	c := NewCase("case-1", t0)
	Complete(&c, t0)

	tr, err := AdvanceTo(&c, entities.StageCompletion, t0.Add(time.Minute))
	require.NoError(t, err)

	assert.False(t, tr.Changed)
	assert.Zero(t, tr.Closed)
	assert.Equal(t, entities.CaseStatusCompleted, c.Status)
	assert.True(t, c.IsComplete())
	assert.Equal(t, t0.Add(time.Minute), c.LastActivity.Timestamp)
	require.NoError(t, Validate(c))
}

func TestValidate_DetectsTwoActiveStages(t *testing.T) {
	c := NewCase("case-1", t0)
	c.StageStatuses[entities.StageQuotePreparation] = entities.StageStatusActive

	assert.ErrorIs(t, Validate(c), ErrInconsistentCase)
}
