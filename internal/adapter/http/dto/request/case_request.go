package request

import (
	"strings"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/usecase"
)

// CreateCaseRequest is the intake payload. Nested records use the camelCase
// field names of the collaborator services that own them.
type CreateCaseRequest struct {
	Customer    *entities.Customer    `json:"customer" binding:"required"`
	Vehicle     *entities.Vehicle     `json:"vehicle" binding:"required"`
	Inspection  *entities.Inspection  `json:"inspection"`
	Quote       *entities.Quote       `json:"quote"`
	Transaction *entities.Transaction `json:"transaction"`
	AssignedTo  string                `json:"assigned_to"`
}

func (r CreateCaseRequest) ToInput() usecase.CreateCaseInput {
	return usecase.CreateCaseInput{
		Customer:    r.Customer,
		Vehicle:     r.Vehicle,
		Inspection:  r.Inspection,
		Quote:       r.Quote,
		Transaction: r.Transaction,
		AssignedTo:  strings.TrimSpace(r.AssignedTo),
	}
}

type AdvanceStageRequest struct {
	Stage int `json:"stage" binding:"required"`
}

type CompleteCaseRequest struct {
	CompletedBy string `json:"completed_by"`
}
