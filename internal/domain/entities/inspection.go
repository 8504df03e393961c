package entities

import "time"

const SeverityCritical = "critical"

// InspectionQuestion holds a single checklist answer. Answer is whatever the
// inspector's form submitted: a string, a bool or a number.
type InspectionQuestion struct {
	ID       string `json:"id,omitempty"`
	Question string `json:"question"`
	Answer   any    `json:"answer,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type InspectionSection struct {
	Name      string               `json:"name"`
	Rating    *float64             `json:"rating,omitempty"`
	Notes     string               `json:"notes,omitempty"`
	Questions []InspectionQuestion `json:"questions,omitempty"`
	Photos    int                  `json:"photos,omitempty"`
}

type SafetyIssue struct {
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

type MaintenanceItem struct {
	Description   string   `json:"description"`
	Priority      string   `json:"priority,omitempty"`
	EstimatedCost *float64 `json:"estimatedCost,omitempty"`
}

// Inspection is the inspector's report for a case.
type Inspection struct {
	ID               string              `json:"id,omitempty"`
	InspectorName    string              `json:"inspectorName,omitempty"`
	ScheduledAt      *time.Time          `json:"scheduledAt,omitempty"`
	CompletedAt      *time.Time          `json:"completedAt,omitempty"`
	OverallRating    *float64            `json:"overallRating,omitempty"`
	Sections         []InspectionSection `json:"sections,omitempty"`
	SafetyIssues     []SafetyIssue       `json:"safetyIssues,omitempty"`
	MaintenanceItems []MaintenanceItem   `json:"maintenanceItems,omitempty"`
	Notes            string              `json:"notes,omitempty"`
}

// CriticalSafetyIssues counts safety issues flagged with critical severity.
func (i Inspection) CriticalSafetyIssues() int {
	n := 0
	for _, issue := range i.SafetyIssues {
		if issue.Severity == SeverityCritical {
			n++
		}
	}
	return n
}
