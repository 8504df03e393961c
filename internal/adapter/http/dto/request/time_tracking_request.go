package request

import (
	"time"

	"vehicle_acquisition/internal/usecase"
)

// extraTotalTimeKey lets callers send the override inside the free-form fields.
const extraTotalTimeKey = "totalTime"

type RecordStageTimeRequest struct {
	StartTime time.Time      `json:"start_time" binding:"required"`
	EndTime   time.Time      `json:"end_time" binding:"required"`
	TotalTime *int64         `json:"total_time"`
	Extra     map[string]any `json:"extra"`
}

// ResolveTotalTime returns the explicit total (milliseconds), preferring
// total_time over extra.totalTime. Nil means "use end - start".
func (r RecordStageTimeRequest) ResolveTotalTime() *int64 {
	if r.TotalTime != nil {
		return r.TotalTime
	}
	switch v := r.Extra[extraTotalTimeKey].(type) {
	case float64:
		ms := int64(v)
		return &ms
	case int64:
		return &v
	case int:
		ms := int64(v)
		return &ms
	}
	return nil
}

func (r RecordStageTimeRequest) ToInput(caseID, stageName string) usecase.RecordStageTimeInput {
	var extra map[string]any
	for k, v := range r.Extra {
		if k == extraTotalTimeKey {
			continue
		}
		if extra == nil {
			extra = make(map[string]any, len(r.Extra))
		}
		extra[k] = v
	}
	return usecase.RecordStageTimeInput{
		CaseID:    caseID,
		StageName: stageName,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		TotalTime: r.ResolveTotalTime(),
		Extra:     extra,
	}
}
