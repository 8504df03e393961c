package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"vehicle_acquisition/internal/usecase"
)

func TestMapCaseError(t *testing.T) {
	tests := []struct {
		err    error
		code   string
		status int
	}{
		{usecase.ErrInvalidCaseID, "INVALID_REQUEST", http.StatusBadRequest},
		{usecase.ErrInvalidCaseInput, "INVALID_REQUEST", http.StatusBadRequest},
		{usecase.ErrInvalidStage, "INVALID_STAGE", http.StatusBadRequest},
		{usecase.ErrInvalidStageName, "INVALID_STAGE_NAME", http.StatusBadRequest},
		{usecase.ErrInvalidTimeRange, "INVALID_TIME_RANGE", http.StatusBadRequest},
		{fmt.Errorf("%w: invoice", usecase.ErrInvalidDocumentKind), "INVALID_DOCUMENT_KIND", http.StatusBadRequest},
		{usecase.ErrCaseNotFound, "CASE_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrTimeTrackingConflict, "TIME_TRACKING_CONFLICT", http.StatusConflict},
		{errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		appErr := mapCaseError(tt.err)
		if appErr.Code != tt.code || appErr.HTTPStatus != tt.status {
			t.Fatalf("%v: expected %s/%d, got %s/%d", tt.err, tt.code, tt.status, appErr.Code, appErr.HTTPStatus)
		}
	}
}
