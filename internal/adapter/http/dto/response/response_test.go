package response

import (
	"testing"
	"time"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/domain/risk"
)

func TestFromCase(t *testing.T) {
	c := entities.Case{
		ID:           "case-1",
		CurrentStage: entities.StageInspection,
		StageStatuses: map[entities.Stage]entities.StageStatus{
			entities.StageIntake:             entities.StageStatusComplete,
			entities.StageScheduleInspection: entities.StageStatusComplete,
			entities.StageInspection:         entities.StageStatusActive,
		},
		Status: entities.CaseStatusInProgress,
	}
	res := FromCase(c)
	if res.StageName != "inspection" || res.CurrentStage != 3 {
		t.Fatalf("unexpected stage: %+v", res)
	}
	if len(res.StageStatuses) != 7 || res.StageStatuses["paperwork"] != "pending" || res.StageStatuses["intake"] != "complete" {
		t.Fatalf("unexpected statuses: %+v", res.StageStatuses)
	}
}

func TestFromCaseAggregateAttachesTracking(t *testing.T) {
	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	agg := entities.CaseAggregate{
		Case: entities.Case{ID: "case-1", CurrentStage: entities.StageIntake},
		Tracking: &entities.TimeTracking{
			CaseID:     "case-1",
			StageTimes: map[string]entities.StageTime{"intake": {StartTime: now, EndTime: now.Add(time.Second), TotalTime: 1000}},
			TotalTime:  1000,
		},
	}
	res := FromCaseAggregate(agg)
	if res.TimeTracking == nil || res.TimeTracking.StageTimes["intake"].TotalTime != 1000 {
		t.Fatalf("unexpected tracking: %+v", res.TimeTracking)
	}

	if FromCaseAggregate(entities.CaseAggregate{}).TimeTracking != nil {
		t.Fatalf("expected no tracking")
	}
}

func TestFromRiskNeverNilFactors(t *testing.T) {
	res := FromRisk("case-1", risk.Assessment{Level: risk.LevelLow})
	if res.Factors == nil || len(res.Factors) != 0 {
		t.Fatalf("expected empty factors, got %#v", res.Factors)
	}
}
