package handlers

import (
	"errors"
	"log"
	"net/http"

	request "vehicle_acquisition/internal/adapter/http/dto/request"
	response "vehicle_acquisition/internal/adapter/http/dto/response"
	"vehicle_acquisition/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TimeTrackingHandler accepts stage timing submissions. Writes are
// best-effort: once the payload is valid the request is accepted even if the
// record could not be updated.
type TimeTrackingHandler struct {
	usecase usecase.ITimeTrackingUseCase
}

func NewTimeTrackingHandler(uc usecase.ITimeTrackingUseCase) *TimeTrackingHandler {
	return &TimeTrackingHandler{usecase: uc}
}

// RecordStageTime godoc
// @Summary      Record the time spent in a stage
// @Description  Replaces the stage total and recomputes the case total. total_time (ms) overrides end - start.
// @Tags         time-tracking
// @Accept       json
// @Produce      json
// @Param        case_id     path      string                          true  "Case ID"
// @Param        stage_name  path      string                          true  "Stage name, e.g. inspection"
// @Param        payload     body      request.RecordStageTimeRequest  true  "Stage timing"
// @Success      202         {object}  response.TimeTrackingResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /cases/{case_id}/time/{stage_name} [put]
func (h *TimeTrackingHandler) RecordStageTime(c *gin.Context) {
	var payload request.RecordStageTimeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTimePayload.HTTPStatus, errInvalidTimePayload.ToHTTPError())
		return
	}

	caseID := c.Param(paramCaseID)
	stageName := c.Param("stage_name")
	tt, err := h.usecase.RecordStageTime(c.Request.Context(), payload.ToInput(caseID, stageName))
	if err != nil {
		if isValidationError(err) {
			appErr := mapCaseError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[time][handler] accepted without write case_id=%s stage=%s err=%v", caseID, stageName, err)
		c.Status(http.StatusAccepted)
		return
	}

	c.JSON(http.StatusAccepted, response.FromTimeTracking(tt))
}

func isValidationError(err error) bool {
	return errors.Is(err, usecase.ErrInvalidCaseID) ||
		errors.Is(err, usecase.ErrInvalidStageName) ||
		errors.Is(err, usecase.ErrInvalidTimeRange)
}
