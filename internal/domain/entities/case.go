package entities

import (
	"strconv"
	"time"
)

// Stage is one of the seven fixed phases a case moves through.
type Stage int

const (
	StageIntake Stage = iota + 1
	StageScheduleInspection
	StageInspection
	StageQuotePreparation
	StageOfferDecision
	StagePaperwork
	StageCompletion
)

const (
	FirstStage = StageIntake
	LastStage  = StageCompletion
)

var stageNames = map[Stage]string{
	StageIntake:             "intake",
	StageScheduleInspection: "scheduleInspection",
	StageInspection:         "inspection",
	StageQuotePreparation:   "quotePreparation",
	StageOfferDecision:      "offerDecision",
	StagePaperwork:          "paperwork",
	StageCompletion:         "completion",
}

var stageTitles = map[Stage]string{
	StageIntake:             "Intake",
	StageScheduleInspection: "Schedule Inspection",
	StageInspection:         "Inspection",
	StageQuotePreparation:   "Quote Preparation",
	StageOfferDecision:      "Offer Decision",
	StagePaperwork:          "Paperwork",
	StageCompletion:         "Completion",
}

// Stages returns every stage in workflow order.
func Stages() []Stage {
	out := make([]Stage, 0, int(LastStage))
	for s := FirstStage; s <= LastStage; s++ {
		out = append(out, s)
	}
	return out
}

func (s Stage) Valid() bool {
	return s >= FirstStage && s <= LastStage
}

// Name is the key used for the stage inside a TimeTracking record.
func (s Stage) Name() string {
	return stageNames[s]
}

// Title is the human readable stage label used in documents.
func (s Stage) Title() string {
	if t, ok := stageTitles[s]; ok {
		return t
	}
	return "Stage " + strconv.Itoa(int(s))
}

// StageByName resolves a TimeTracking stage key back to its Stage.
func StageByName(name string) (Stage, bool) {
	for s, n := range stageNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

type StageStatus string

const (
	StageStatusPending  StageStatus = "pending"
	StageStatusActive   StageStatus = "active"
	StageStatusComplete StageStatus = "complete"
)

// CaseStatus is the overall workflow status of a case.
type CaseStatus string

const (
	CaseStatusNew        CaseStatus = "new"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusCompleted  CaseStatus = "completed"
)

// Completion tracks the wrap-up tasks of the final stage.
type Completion struct {
	ThankYouSent      bool            `json:"thankYouSent"`
	LeaveBehind       map[string]bool `json:"leaveBehind,omitempty"`
	PDFGenerated      bool            `json:"pdfGenerated"`
	PDFGeneratedAt    *time.Time      `json:"pdfGeneratedAt,omitempty"`
	TitleConfirmation bool            `json:"titleConfirmation"`
	CompletedBy       string          `json:"completedBy,omitempty"`
}

type LastActivity struct {
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Case is a single vehicle-acquisition workflow instance.
//
// Invariant: exactly one stage is active and it equals CurrentStage, unless
// every stage is complete and Status is CaseStatusCompleted.
type Case struct {
	ID             string                `json:"id"`
	CurrentStage   Stage                 `json:"currentStage"`
	StageStatuses  map[Stage]StageStatus `json:"stageStatuses"`
	StageStartedAt map[Stage]time.Time   `json:"stageStartedAt,omitempty"`
	Status         CaseStatus            `json:"status"`
	Completion     Completion            `json:"completion"`
	LastActivity   LastActivity          `json:"lastActivity"`
	AssignedTo     string                `json:"assignedTo,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// StatusOf returns the recorded status of a stage, pending when unset.
func (c Case) StatusOf(s Stage) StageStatus {
	if st, ok := c.StageStatuses[s]; ok {
		return st
	}
	return StageStatusPending
}

// IsComplete reports whether every stage is complete.
func (c Case) IsComplete() bool {
	for _, s := range Stages() {
		if c.StatusOf(s) != StageStatusComplete {
			return false
		}
	}
	return true
}
