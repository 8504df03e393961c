package response

import (
	"time"

	"vehicle_acquisition/internal/domain/entities"
)

type StageTimeResponse struct {
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	TotalTime int64          `json:"total_time"`
	Extra     map[string]any `json:"extra,omitempty"`
}

type TimeTrackingResponse struct {
	CaseID      string                       `json:"case_id"`
	StageTimes  map[string]StageTimeResponse `json:"stage_times"`
	TotalTime   int64                        `json:"total_time"`
	LastUpdated time.Time                    `json:"last_updated"`
}

func FromTimeTracking(t entities.TimeTracking) TimeTrackingResponse {
	stages := make(map[string]StageTimeResponse, len(t.StageTimes))
	for name, st := range t.StageTimes {
		stages[name] = StageTimeResponse{
			StartTime: st.StartTime,
			EndTime:   st.EndTime,
			TotalTime: st.TotalTime,
			Extra:     st.Extra,
		}
	}
	return TimeTrackingResponse{
		CaseID:      t.CaseID,
		StageTimes:  stages,
		TotalTime:   t.TotalTime,
		LastUpdated: t.LastUpdated,
	}
}
