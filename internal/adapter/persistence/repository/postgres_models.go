package repository

import (
	"time"

	"vehicle_acquisition/internal/domain/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type caseRecord struct {
	ID             string         `gorm:"type:varchar(64);primaryKey"`
	CurrentStage   int            `gorm:"not null"`
	Status         string         `gorm:"type:varchar(32);not null;index"`
	StageStatuses  datatypes.JSON `gorm:"type:jsonb;not null"`
	StageStartedAt datatypes.JSON `gorm:"type:jsonb"`
	Completion     datatypes.JSON `gorm:"type:jsonb"`
	LastActivity   datatypes.JSON `gorm:"type:jsonb"`
	AssignedTo     string         `gorm:"type:varchar(128);index"`
	Snapshot       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (caseRecord) TableName() string { return "cases" }

// caseSnapshot is the jsonb payload holding the collaborator records.
type caseSnapshot struct {
	Customer    *entities.Customer    `json:"customer,omitempty"`
	Vehicle     *entities.Vehicle     `json:"vehicle,omitempty"`
	Inspection  *entities.Inspection  `json:"inspection,omitempty"`
	Quote       *entities.Quote       `json:"quote,omitempty"`
	Transaction *entities.Transaction `json:"transaction,omitempty"`
}

type timeTrackingRecord struct {
	CaseID      string         `gorm:"type:varchar(64);primaryKey"`
	StageTimes  datatypes.JSON `gorm:"type:jsonb;not null"`
	TotalTime   int64          `gorm:"not null"`
	Version     int64          `gorm:"not null"`
	LastUpdated time.Time
}

func (timeTrackingRecord) TableName() string { return "time_tracking" }

// MigratePostgres creates or updates the tables used by the Postgres repositories.
func MigratePostgres(db *gorm.DB) error {
	return db.AutoMigrate(&caseRecord{}, &timeTrackingRecord{})
}
