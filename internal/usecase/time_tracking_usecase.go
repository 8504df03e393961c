package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/usecase/interfaces"
)

const DefaultTimeTrackingRetries = 5

var (
	ErrInvalidStageName     = errors.New("invalid stage name")
	ErrInvalidTimeRange     = errors.New("invalid time range")
	ErrTimeTrackingConflict = errors.New("time tracking update kept conflicting")
)

// RecordStageTimeInput describes one timing submission for a stage.
// TotalTime, when set, overrides EndTime - StartTime (milliseconds).
type RecordStageTimeInput struct {
	CaseID    string
	StageName string
	StartTime time.Time
	EndTime   time.Time
	TotalTime *int64
	Extra     map[string]any
}

// ITimeTrackingUseCase keeps the per-stage timings of a case and the
// reconciled case total.
//
// A stage recorded more than once replaces its previous total, so the case
// total is always the sum of the latest per-stage totals.

type ITimeTrackingUseCase interface {
	RecordStageTime(ctx context.Context, in RecordStageTimeInput) (entities.TimeTracking, error)
	GetByCaseID(ctx context.Context, caseID string) (entities.TimeTracking, error)
}

type TimeTrackingUseCase struct {
	repo       interfaces.ITimeTrackingRepository
	maxRetries int
	now        func() time.Time
}

var _ ITimeTrackingUseCase = (*TimeTrackingUseCase)(nil)

func NewTimeTrackingUseCase(repo interfaces.ITimeTrackingRepository, maxRetries int) *TimeTrackingUseCase {
	if maxRetries <= 0 {
		maxRetries = DefaultTimeTrackingRetries
	}
	return &TimeTrackingUseCase{repo: repo, maxRetries: maxRetries, now: func() time.Time { return time.Now().UTC() }}
}

// RecordStageTime upserts the stage timing with a read-modify-write guarded by
// the record version. Concurrent writers for the same case retry on conflict.
func (u *TimeTrackingUseCase) RecordStageTime(ctx context.Context, in RecordStageTimeInput) (entities.TimeTracking, error) {
	caseID := strings.TrimSpace(in.CaseID)
	if caseID == "" {
		return entities.TimeTracking{}, ErrInvalidCaseID
	}
	stage := strings.TrimSpace(in.StageName)
	if stage == "" {
		return entities.TimeTracking{}, ErrInvalidStageName
	}

	var total int64
	if in.TotalTime != nil {
		total = *in.TotalTime
	} else {
		total = in.EndTime.Sub(in.StartTime).Milliseconds()
	}
	if total < 0 {
		return entities.TimeTracking{}, fmt.Errorf("%w: total %dms", ErrInvalidTimeRange, total)
	}

	entry := entities.StageTime{
		StartTime: in.StartTime.UTC(),
		EndTime:   in.EndTime.UTC(),
		TotalTime: total,
		Extra:     in.Extra,
	}

	for attempt := 1; attempt <= u.maxRetries; attempt++ {
		existing, err := u.repo.GetByCaseID(ctx, caseID)
		if err != nil {
			log.Printf("[time][usecase] load failed case_id=%s err=%v", caseID, err)
			return entities.TimeTracking{}, err
		}

		next := applyStageTime(existing, caseID, stage, entry, u.now())
		err = u.repo.Save(ctx, next, existing.Version)
		if err == nil {
			log.Printf("[time][usecase] recorded case_id=%s stage=%s stage_total=%d total=%d", caseID, stage, total, next.TotalTime)
			return next, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[time][usecase] save failed case_id=%s stage=%s err=%v", caseID, stage, err)
			return entities.TimeTracking{}, err
		}
		log.Printf("[time][usecase] version conflict case_id=%s stage=%s attempt=%d", caseID, stage, attempt)
	}

	log.Printf("[time][usecase] giving up case_id=%s stage=%s retries=%d", caseID, stage, u.maxRetries)
	return entities.TimeTracking{}, ErrTimeTrackingConflict
}

func (u *TimeTrackingUseCase) GetByCaseID(ctx context.Context, caseID string) (entities.TimeTracking, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.TimeTracking{}, ErrInvalidCaseID
	}
	return u.repo.GetByCaseID(ctx, caseID)
}

// applyStageTime returns the record that results from replacing the stage
// entry of existing. existing is not modified.
func applyStageTime(existing entities.TimeTracking, caseID, stage string, entry entities.StageTime, now time.Time) entities.TimeTracking {
	next := entities.TimeTracking{
		CaseID:      caseID,
		StageTimes:  make(map[string]entities.StageTime, len(existing.StageTimes)+1),
		Version:     existing.Version + 1,
		LastUpdated: now,
	}
	for k, v := range existing.StageTimes {
		next.StageTimes[k] = v
	}

	if existing.CaseID == "" {
		next.TotalTime = entry.TotalTime
	} else {
		next.TotalTime = existing.TotalTime - existing.StageTimes[stage].TotalTime + entry.TotalTime
	}
	next.StageTimes[stage] = entry
	return next
}
