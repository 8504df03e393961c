package interfaces

import (
	"context"
	"errors"
	"vehicle_acquisition/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the stored version moved on.
var ErrVersionConflict = errors.New("time tracking version conflict")

// ITimeTrackingRepository abstracts persistence of the per-case TimeTracking record.
//
//   - GetByCaseID returns a zero-value record (CaseID == "") when none exists.
//   - Save is a compare-and-swap: it writes only when the stored version equals
//     expectedVersion (0 meaning "no record yet") and fails with ErrVersionConflict otherwise.

type ITimeTrackingRepository interface {
	GetByCaseID(ctx context.Context, caseID string) (entities.TimeTracking, error)
	Save(ctx context.Context, t entities.TimeTracking, expectedVersion int64) error
}
