// Package workflow holds the case stage state machine.
package workflow

import (
	"errors"
	"fmt"
	"time"

	"vehicle_acquisition/internal/domain/entities"
)

var (
	ErrInvalidStage     = errors.New("invalid stage")
	ErrInconsistentCase = errors.New("inconsistent stage statuses")
)

// Transition describes the effect of a stage write.
type Transition struct {
	From    entities.Stage
	To      entities.Stage
	Changed bool
	// Closed is the stage whose time should be recorded, zero when none.
	Closed entities.Stage
}

// NewCase returns a case at stage 1 with every other stage pending.
func NewCase(id string, now time.Time) entities.Case {
	c := entities.Case{
		ID:             id,
		Status:         entities.CaseStatusNew,
		StageStartedAt: map[entities.Stage]time.Time{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	applyStatuses(&c, entities.FirstStage)
	c.StageStartedAt[entities.FirstStage] = now
	c.LastActivity = entities.LastActivity{Description: "Case created", Timestamp: now}
	return c
}

// AdvanceTo moves the case to target: every earlier stage becomes complete,
// target becomes active and every later stage pending. Out of order jumps are
// allowed. Reapplying the current stage leaves the statuses untouched but still
// refreshes LastActivity.
func AdvanceTo(c *entities.Case, target entities.Stage, now time.Time) (Transition, error) {
	if !target.Valid() {
		return Transition{}, fmt.Errorf("%w: %d", ErrInvalidStage, int(target))
	}

	from := c.CurrentStage
	t := Transition{From: from, To: target}

	// A completed case stays completed when its last stage is sent again.
	if from == target && (c.StatusOf(target) == entities.StageStatusActive || isCompleted(*c)) {
		c.LastActivity = entities.LastActivity{
			Description: fmt.Sprintf("Stage %s confirmed", target.Title()),
			Timestamp:   now,
		}
		c.UpdatedAt = now
		return t, nil
	}

	if from.Valid() && from != target && c.StatusOf(from) == entities.StageStatusActive {
		t.Closed = from
	}

	applyStatuses(c, target)
	if c.StageStartedAt == nil {
		c.StageStartedAt = map[entities.Stage]time.Time{}
	}
	c.StageStartedAt[target] = now
	c.Status = entities.CaseStatusInProgress
	c.LastActivity = entities.LastActivity{
		Description: fmt.Sprintf("Moved to stage %s", target.Title()),
		Timestamp:   now,
	}
	c.UpdatedAt = now
	t.Changed = true
	return t, nil
}

// Complete marks every stage complete and the case completed. The active
// stage, if any, is reported as closed.
func Complete(c *entities.Case, now time.Time) Transition {
	t := Transition{From: c.CurrentStage, To: entities.LastStage}
	if c.CurrentStage.Valid() && c.StatusOf(c.CurrentStage) == entities.StageStatusActive {
		t.Closed = c.CurrentStage
	}
	if isCompleted(*c) {
		return t
	}

	statuses := make(map[entities.Stage]entities.StageStatus, int(entities.LastStage))
	for _, s := range entities.Stages() {
		statuses[s] = entities.StageStatusComplete
	}
	c.StageStatuses = statuses
	c.CurrentStage = entities.LastStage
	c.Status = entities.CaseStatusCompleted
	c.LastActivity = entities.LastActivity{Description: "Case completed", Timestamp: now}
	c.UpdatedAt = now
	t.Changed = true
	return t
}

func isCompleted(c entities.Case) bool {
	return c.Status == entities.CaseStatusCompleted && c.IsComplete()
}

// Validate checks the single-active-stage invariant.
func Validate(c entities.Case) error {
	if c.IsComplete() {
		return nil
	}
	if !c.CurrentStage.Valid() {
		return fmt.Errorf("%w: current stage %d", ErrInvalidStage, int(c.CurrentStage))
	}
	active := 0
	for _, s := range entities.Stages() {
		if c.StatusOf(s) == entities.StageStatusActive {
			active++
			if s != c.CurrentStage {
				return fmt.Errorf("%w: stage %d active, current stage %d", ErrInconsistentCase, int(s), int(c.CurrentStage))
			}
		}
	}
	if active != 1 {
		return fmt.Errorf("%w: %d active stages", ErrInconsistentCase, active)
	}
	return nil
}

func applyStatuses(c *entities.Case, target entities.Stage) {
	statuses := make(map[entities.Stage]entities.StageStatus, int(entities.LastStage))
	for _, s := range entities.Stages() {
		switch {
		case s < target:
			statuses[s] = entities.StageStatusComplete
		case s == target:
			statuses[s] = entities.StageStatusActive
		default:
			statuses[s] = entities.StageStatusPending
		}
	}
	c.StageStatuses = statuses
	c.CurrentStage = target
}
