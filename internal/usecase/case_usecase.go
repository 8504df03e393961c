package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/domain/risk"
	"vehicle_acquisition/internal/domain/workflow"
	"vehicle_acquisition/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCaseNotFound     = errors.New("case not found")
	ErrInvalidCaseID    = errors.New("invalid case id")
	ErrInvalidStage     = errors.New("invalid stage")
	ErrInvalidCaseInput = errors.New("invalid case input")
)

// CreateCaseInput carries the collaborator snapshots captured at intake.
type CreateCaseInput struct {
	Customer    *entities.Customer
	Vehicle     *entities.Vehicle
	Inspection  *entities.Inspection
	Quote       *entities.Quote
	Transaction *entities.Transaction
	AssignedTo  string
}

// ICaseUseCase exposes the case workflow operations.
//
//   - POST  /cases                 => CreateCase()
//   - GET   /cases/{id}            => GetCase()
//   - PATCH /cases/{id}/stage      => AdvanceStage()
//   - POST  /cases/{id}/complete   => CompleteCase()
//   - GET   /cases/{id}/risk       => AssessRisk()
//
// Stage writes close the previously active stage and hand its elapsed time to
// the stage time tracker. Tracking failures never fail the stage write.

type ICaseUseCase interface {
	CreateCase(ctx context.Context, in CreateCaseInput) (entities.CaseAggregate, error)
	GetCase(ctx context.Context, id string) (entities.CaseAggregate, error)
	AdvanceStage(ctx context.Context, id string, stage int) (entities.Case, error)
	CompleteCase(ctx context.Context, id string, completedBy string) (entities.Case, error)
	AssessRisk(ctx context.Context, id string) (risk.Assessment, error)
}

type CaseUseCase struct {
	repo    interfaces.ICaseRepository
	tracker ITimeTrackingUseCase
	now     func() time.Time
}

var _ ICaseUseCase = (*CaseUseCase)(nil)

func NewCaseUseCase(repo interfaces.ICaseRepository, tracker ITimeTrackingUseCase) *CaseUseCase {
	return &CaseUseCase{repo: repo, tracker: tracker, now: func() time.Time { return time.Now().UTC() }}
}

func (u *CaseUseCase) CreateCase(ctx context.Context, in CreateCaseInput) (entities.CaseAggregate, error) {
	if in.Customer == nil || in.Vehicle == nil {
		return entities.CaseAggregate{}, fmt.Errorf("%w: customer and vehicle are required", ErrInvalidCaseInput)
	}

	now := u.now()
	c := workflow.NewCase(uuid.NewString(), now)
	c.AssignedTo = strings.TrimSpace(in.AssignedTo)

	agg := entities.CaseAggregate{
		Case:        c,
		Customer:    in.Customer,
		Vehicle:     in.Vehicle,
		Inspection:  in.Inspection,
		Quote:       in.Quote,
		Transaction: in.Transaction,
	}
	created, err := u.repo.Create(ctx, agg)
	if err != nil {
		return entities.CaseAggregate{}, err
	}
	log.Printf("[case][usecase] created case_id=%s", created.Case.ID)
	return created, nil
}

func (u *CaseUseCase) GetCase(ctx context.Context, id string) (entities.CaseAggregate, error) {
	agg, err := u.load(ctx, id)
	if err != nil {
		return entities.CaseAggregate{}, err
	}
	if u.tracker == nil {
		return agg, nil
	}
	tt, err := u.tracker.GetByCaseID(ctx, agg.Case.ID)
	if err != nil {
		return entities.CaseAggregate{}, err
	}
	if tt.CaseID != "" {
		agg.Tracking = &tt
	}
	return agg, nil
}

func (u *CaseUseCase) AdvanceStage(ctx context.Context, id string, stage int) (entities.Case, error) {
	target := entities.Stage(stage)
	if !target.Valid() {
		return entities.Case{}, ErrInvalidStage
	}

	agg, err := u.load(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}

	c := agg.Case
	started := c.StageStartedAt[c.CurrentStage]
	now := u.now()
	tr, err := workflow.AdvanceTo(&c, target, now)
	if err != nil {
		if errors.Is(err, workflow.ErrInvalidStage) {
			return entities.Case{}, ErrInvalidStage
		}
		return entities.Case{}, err
	}

	updated, err := u.repo.UpdateWorkflow(ctx, c)
	if err != nil {
		return entities.Case{}, err
	}
	if updated.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	log.Printf("[case][usecase] stage case_id=%s from=%d to=%d changed=%t", c.ID, int(tr.From), int(tr.To), tr.Changed)

	u.closeStage(ctx, c.ID, tr.Closed, started, now)
	return updated, nil
}

func (u *CaseUseCase) CompleteCase(ctx context.Context, id string, completedBy string) (entities.Case, error) {
	agg, err := u.load(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}

	c := agg.Case
	started := c.StageStartedAt[c.CurrentStage]
	now := u.now()
	tr := workflow.Complete(&c, now)
	if !tr.Changed {
		return c, nil
	}
	if by := strings.TrimSpace(completedBy); by != "" {
		c.Completion.CompletedBy = by
	}

	updated, err := u.repo.UpdateWorkflow(ctx, c)
	if err != nil {
		return entities.Case{}, err
	}
	if updated.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	log.Printf("[case][usecase] completed case_id=%s", c.ID)

	u.closeStage(ctx, c.ID, tr.Closed, started, now)
	return updated, nil
}

func (u *CaseUseCase) AssessRisk(ctx context.Context, id string) (risk.Assessment, error) {
	agg, err := u.load(ctx, id)
	if err != nil {
		return risk.Assessment{}, err
	}
	return risk.Assess(agg.Vehicle, agg.Inspection, agg.Quote), nil
}

func (u *CaseUseCase) load(ctx context.Context, id string) (entities.CaseAggregate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CaseAggregate{}, ErrInvalidCaseID
	}
	agg, err := u.repo.GetAggregate(ctx, id)
	if err != nil {
		return entities.CaseAggregate{}, err
	}
	if agg.Case.ID == "" {
		return entities.CaseAggregate{}, ErrCaseNotFound
	}
	return agg, nil
}

// closeStage records the time spent in a stage that was just left. Stages
// with no recorded start are skipped.
func (u *CaseUseCase) closeStage(ctx context.Context, caseID string, closed entities.Stage, started, now time.Time) {
	if u.tracker == nil || !closed.Valid() || started.IsZero() {
		return
	}
	_, err := u.tracker.RecordStageTime(ctx, RecordStageTimeInput{
		CaseID:    caseID,
		StageName: closed.Name(),
		StartTime: started,
		EndTime:   now,
	})
	if err != nil {
		log.Printf("[case][usecase] stage time not recorded case_id=%s stage=%s err=%v", caseID, closed.Name(), err)
	}
}
