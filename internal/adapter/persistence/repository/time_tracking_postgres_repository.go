package repository

import (
	"context"
	"encoding/json"
	"errors"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TimeTrackingPostgresRepository persists TimeTracking records in Postgres.
// Save guards the write with the version column.
type TimeTrackingPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.ITimeTrackingRepository = (*TimeTrackingPostgresRepository)(nil)

func NewTimeTrackingPostgresRepository(db *gorm.DB) *TimeTrackingPostgresRepository {
	return &TimeTrackingPostgresRepository{db: db}
}

func (r *TimeTrackingPostgresRepository) GetByCaseID(ctx context.Context, caseID string) (entities.TimeTracking, error) {
	var rec timeTrackingRecord
	err := r.db.WithContext(ctx).First(&rec, "case_id = ?", caseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.TimeTracking{}, nil
	}
	if err != nil {
		return entities.TimeTracking{}, err
	}

	t := entities.TimeTracking{
		CaseID:      rec.CaseID,
		TotalTime:   rec.TotalTime,
		Version:     rec.Version,
		LastUpdated: rec.LastUpdated.UTC(),
	}
	if err := unmarshalJSON(rec.StageTimes, &t.StageTimes); err != nil {
		return entities.TimeTracking{}, err
	}
	if t.StageTimes == nil {
		t.StageTimes = map[string]entities.StageTime{}
	}
	return t, nil
}

func (r *TimeTrackingPostgresRepository) Save(ctx context.Context, t entities.TimeTracking, expectedVersion int64) error {
	stageTimes, err := json.Marshal(t.StageTimes)
	if err != nil {
		return err
	}
	db := r.db.WithContext(ctx)

	var res *gorm.DB
	if expectedVersion == 0 {
		rec := timeTrackingRecord{
			CaseID:      t.CaseID,
			StageTimes:  datatypes.JSON(stageTimes),
			TotalTime:   t.TotalTime,
			Version:     t.Version,
			LastUpdated: t.LastUpdated,
		}
		res = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
	} else {
		res = db.Model(&timeTrackingRecord{}).
			Where("case_id = ? AND version = ?", t.CaseID, expectedVersion).
			Updates(map[string]any{
				"stage_times":  datatypes.JSON(stageTimes),
				"total_time":   t.TotalTime,
				"version":      t.Version,
				"last_updated": t.LastUpdated,
			})
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrVersionConflict
	}
	return nil
}
