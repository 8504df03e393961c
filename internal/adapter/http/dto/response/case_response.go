package response

import (
	"time"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/domain/risk"
)

type CaseResponse struct {
	ID            string                `json:"id"`
	CurrentStage  int                   `json:"current_stage"`
	StageName     string                `json:"stage_name"`
	StageStatuses map[string]string     `json:"stage_statuses"`
	Status        string                `json:"status"`
	Completion    entities.Completion   `json:"completion"`
	LastActivity  entities.LastActivity `json:"last_activity"`
	AssignedTo    string                `json:"assigned_to,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// FromCase keys stage statuses by stage name, e.g. {"intake":"complete"}.
func FromCase(c entities.Case) CaseResponse {
	statuses := make(map[string]string, int(entities.LastStage))
	for _, s := range entities.Stages() {
		statuses[s.Name()] = string(c.StatusOf(s))
	}
	return CaseResponse{
		ID:            c.ID,
		CurrentStage:  int(c.CurrentStage),
		StageName:     c.CurrentStage.Name(),
		StageStatuses: statuses,
		Status:        string(c.Status),
		Completion:    c.Completion,
		LastActivity:  c.LastActivity,
		AssignedTo:    c.AssignedTo,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type CaseAggregateResponse struct {
	Case         CaseResponse          `json:"case"`
	Customer     *entities.Customer    `json:"customer,omitempty"`
	Vehicle      *entities.Vehicle     `json:"vehicle,omitempty"`
	Inspection   *entities.Inspection  `json:"inspection,omitempty"`
	Quote        *entities.Quote       `json:"quote,omitempty"`
	Transaction  *entities.Transaction `json:"transaction,omitempty"`
	TimeTracking *TimeTrackingResponse `json:"time_tracking,omitempty"`
}

func FromCaseAggregate(agg entities.CaseAggregate) CaseAggregateResponse {
	out := CaseAggregateResponse{
		Case:        FromCase(agg.Case),
		Customer:    agg.Customer,
		Vehicle:     agg.Vehicle,
		Inspection:  agg.Inspection,
		Quote:       agg.Quote,
		Transaction: agg.Transaction,
	}
	if agg.Tracking != nil {
		tt := FromTimeTracking(*agg.Tracking)
		out.TimeTracking = &tt
	}
	return out
}

type RiskResponse struct {
	CaseID  string   `json:"case_id"`
	Score   int      `json:"score"`
	Level   string   `json:"level"`
	Factors []string `json:"factors"`
}

func FromRisk(caseID string, a risk.Assessment) RiskResponse {
	factors := a.Factors
	if factors == nil {
		factors = []string{}
	}
	return RiskResponse{CaseID: caseID, Score: a.Score, Level: string(a.Level), Factors: factors}
}
