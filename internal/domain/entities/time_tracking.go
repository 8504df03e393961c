package entities

import "time"

// StageTime is the latest recorded timing of a single stage. TotalTime is in
// milliseconds. Extra keeps any additional fields submitted with the record.
type StageTime struct {
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	TotalTime int64          `json:"totalTime"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// TimeTracking is the per-case timing record, unique by CaseID.
//
// Invariant: TotalTime equals the sum of StageTimes[*].TotalTime.
// Version increments on every write and guards concurrent updates.
type TimeTracking struct {
	CaseID      string               `json:"caseId"`
	StageTimes  map[string]StageTime `json:"stageTimes"`
	TotalTime   int64                `json:"totalTime"`
	Version     int64                `json:"version"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

// SumStageTimes recomputes the aggregate from the per-stage totals.
func (t TimeTracking) SumStageTimes() int64 {
	var sum int64
	for _, st := range t.StageTimes {
		sum += st.TotalTime
	}
	return sum
}
