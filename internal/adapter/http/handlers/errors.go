package handlers

import (
	"errors"
	"net/http"

	"vehicle_acquisition/internal/usecase"
	"vehicle_acquisition/pkg"
)

var (
	errInvalidCasePayload     = pkg.NewDomainErrorSimple("INVALID_CASE_INPUT", "Invalid case payload", http.StatusBadRequest)
	errInvalidStagePayload    = pkg.NewDomainErrorSimple("INVALID_STAGE_INPUT", "Invalid stage payload", http.StatusBadRequest)
	errInvalidTimePayload     = pkg.NewDomainErrorSimple("INVALID_TIME_INPUT", "Invalid stage time payload", http.StatusBadRequest)
	errInvalidDeliveryPayload = pkg.NewDomainErrorSimple("INVALID_DELIVERY_INPUT", "Invalid delivery payload", http.StatusBadRequest)
)

func mapCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID), errors.Is(err, usecase.ErrInvalidCaseInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStage):
		return pkg.NewDomainErrorSimple("INVALID_STAGE", "Stage must be between 1 and 7", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStageName):
		return pkg.NewDomainErrorSimple("INVALID_STAGE_NAME", "Invalid stage name", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTimeRange):
		return pkg.NewDomainErrorSimple("INVALID_TIME_RANGE", "End time must not be before start time", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocumentKind):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_KIND", "Unknown document kind", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTimeTrackingConflict):
		return pkg.NewDomainErrorSimple("TIME_TRACKING_CONFLICT", "Time tracking record is being updated concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
