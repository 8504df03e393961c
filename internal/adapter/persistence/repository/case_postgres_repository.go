package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CasePostgresRepository persists case aggregates in Postgres through gorm.
// Workflow fields and collaborator snapshots are stored as jsonb columns.
type CasePostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.ICaseRepository = (*CasePostgresRepository)(nil)

func NewCasePostgresRepository(db *gorm.DB) *CasePostgresRepository {
	return &CasePostgresRepository{db: db}
}

func (r *CasePostgresRepository) Create(ctx context.Context, agg entities.CaseAggregate) (entities.CaseAggregate, error) {
	rec, err := toCaseRecord(agg)
	if err != nil {
		return entities.CaseAggregate{}, err
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.CaseAggregate{}, err
	}
	agg.Tracking = nil
	return agg, nil
}

func (r *CasePostgresRepository) GetAggregate(ctx context.Context, id string) (entities.CaseAggregate, error) {
	var rec caseRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.CaseAggregate{}, nil
	}
	if err != nil {
		return entities.CaseAggregate{}, err
	}
	return fromCaseRecord(rec)
}

func (r *CasePostgresRepository) UpdateWorkflow(ctx context.Context, c entities.Case) (entities.Case, error) {
	updates, err := workflowColumns(c)
	if err != nil {
		return entities.Case{}, err
	}

	res := r.db.WithContext(ctx).Model(&caseRecord{}).Where("id = ?", c.ID).Updates(updates)
	if res.Error != nil {
		return entities.Case{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Case{}, nil
	}

	agg, err := r.GetAggregate(ctx, c.ID)
	if err != nil {
		return entities.Case{}, err
	}
	return agg.Case, nil
}

// MarkPDFGenerated patches the pdf keys of the completion jsonb in place and
// the last activity. Stage columns are left as stored.
func (r *CasePostgresRepository) MarkPDFGenerated(ctx context.Context, id string, activity entities.LastActivity) (entities.Case, error) {
	updates, err := pdfGeneratedColumns(activity)
	if err != nil {
		return entities.Case{}, err
	}

	res := r.db.WithContext(ctx).Model(&caseRecord{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return entities.Case{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Case{}, nil
	}

	agg, err := r.GetAggregate(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}
	return agg.Case, nil
}

func pdfGeneratedColumns(activity entities.LastActivity) (map[string]any, error) {
	lastActivity, err := json.Marshal(activity)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"completion": gorm.Expr(
			"jsonb_set(jsonb_set(COALESCE(completion, '{}'::jsonb), '{pdfGenerated}', 'true'::jsonb), '{pdfGeneratedAt}', to_jsonb(?::text))",
			activity.Timestamp.Format(time.RFC3339Nano),
		),
		"last_activity": datatypes.JSON(lastActivity),
		"updated_at":    activity.Timestamp,
	}, nil
}

// workflowJSON holds the jsonb encodings of the case-owned fields.
type workflowJSON struct {
	statuses     datatypes.JSON
	started      datatypes.JSON
	completion   datatypes.JSON
	lastActivity datatypes.JSON
}

func encodeWorkflow(c entities.Case) (workflowJSON, error) {
	var w workflowJSON
	var err error
	if w.statuses, err = json.Marshal(c.StageStatuses); err != nil {
		return workflowJSON{}, err
	}
	if w.started, err = json.Marshal(c.StageStartedAt); err != nil {
		return workflowJSON{}, err
	}
	if w.completion, err = json.Marshal(c.Completion); err != nil {
		return workflowJSON{}, err
	}
	if w.lastActivity, err = json.Marshal(c.LastActivity); err != nil {
		return workflowJSON{}, err
	}
	return w, nil
}

func workflowColumns(c entities.Case) (map[string]any, error) {
	w, err := encodeWorkflow(c)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"current_stage":    int(c.CurrentStage),
		"status":           string(c.Status),
		"stage_statuses":   w.statuses,
		"stage_started_at": w.started,
		"completion":       w.completion,
		"last_activity":    w.lastActivity,
		"updated_at":       c.UpdatedAt,
	}, nil
}

func toCaseRecord(agg entities.CaseAggregate) (caseRecord, error) {
	c := agg.Case
	w, err := encodeWorkflow(c)
	if err != nil {
		return caseRecord{}, err
	}
	snapshot, err := json.Marshal(caseSnapshot{
		Customer:    agg.Customer,
		Vehicle:     agg.Vehicle,
		Inspection:  agg.Inspection,
		Quote:       agg.Quote,
		Transaction: agg.Transaction,
	})
	if err != nil {
		return caseRecord{}, err
	}
	return caseRecord{
		ID:             c.ID,
		CurrentStage:   int(c.CurrentStage),
		Status:         string(c.Status),
		StageStatuses:  w.statuses,
		StageStartedAt: w.started,
		Completion:     w.completion,
		LastActivity:   w.lastActivity,
		AssignedTo:     c.AssignedTo,
		Snapshot:       datatypes.JSON(snapshot),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}

func fromCaseRecord(rec caseRecord) (entities.CaseAggregate, error) {
	c := entities.Case{
		ID:           rec.ID,
		CurrentStage: entities.Stage(rec.CurrentStage),
		Status:       entities.CaseStatus(rec.Status),
		AssignedTo:   rec.AssignedTo,
		CreatedAt:    rec.CreatedAt.UTC(),
		UpdatedAt:    rec.UpdatedAt.UTC(),
	}
	if err := unmarshalJSON(rec.StageStatuses, &c.StageStatuses); err != nil {
		return entities.CaseAggregate{}, err
	}
	if err := unmarshalJSON(rec.StageStartedAt, &c.StageStartedAt); err != nil {
		return entities.CaseAggregate{}, err
	}
	if err := unmarshalJSON(rec.Completion, &c.Completion); err != nil {
		return entities.CaseAggregate{}, err
	}
	if err := unmarshalJSON(rec.LastActivity, &c.LastActivity); err != nil {
		return entities.CaseAggregate{}, err
	}

	var snap caseSnapshot
	if err := unmarshalJSON(rec.Snapshot, &snap); err != nil {
		return entities.CaseAggregate{}, err
	}
	return entities.CaseAggregate{
		Case:        c,
		Customer:    snap.Customer,
		Vehicle:     snap.Vehicle,
		Inspection:  snap.Inspection,
		Quote:       snap.Quote,
		Transaction: snap.Transaction,
	}, nil
}

func unmarshalJSON(raw datatypes.JSON, out any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
