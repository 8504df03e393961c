package handlers

import (
	"errors"
	"io"
	"net/http"

	request "vehicle_acquisition/internal/adapter/http/dto/request"
	response "vehicle_acquisition/internal/adapter/http/dto/response"
	"vehicle_acquisition/internal/usecase"

	"github.com/gin-gonic/gin"
)

const paramCaseID = "case_id"

// CaseHandler handles HTTP requests for the case workflow.
type CaseHandler struct {
	usecase usecase.ICaseUseCase
}

func NewCaseHandler(uc usecase.ICaseUseCase) *CaseHandler {
	return &CaseHandler{usecase: uc}
}

// CreateCase godoc
// @Summary      Open a case
// @Description  Creates a case at stage 1 from the intake snapshots.
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateCaseRequest  true  "Intake payload"
// @Success      201      {object}  response.CaseAggregateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /cases [post]
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var payload request.CreateCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	agg, err := h.usecase.CreateCase(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCaseAggregate(agg))
}

// GetCase godoc
// @Summary      Get a case
// @Tags         cases
// @Produce      json
// @Param        case_id  path      string  true  "Case ID"
// @Success      200      {object}  response.CaseAggregateResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /cases/{case_id} [get]
func (h *CaseHandler) GetCase(c *gin.Context) {
	agg, err := h.usecase.GetCase(c.Request.Context(), c.Param(paramCaseID))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCaseAggregate(agg))
}

// AdvanceStage godoc
// @Summary      Move a case to a stage
// @Description  Earlier stages become complete, the target active and later stages pending.
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        case_id  path      string                       true  "Case ID"
// @Param        payload  body      request.AdvanceStageRequest  true  "Target stage (1-7)"
// @Success      200      {object}  response.CaseResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /cases/{case_id}/stage [patch]
func (h *CaseHandler) AdvanceStage(c *gin.Context) {
	var payload request.AdvanceStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStagePayload.HTTPStatus, errInvalidStagePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AdvanceStage(c.Request.Context(), c.Param(paramCaseID), payload.Stage)
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCase(updated))
}

// CompleteCase godoc
// @Summary      Complete a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        case_id  path      string                       true   "Case ID"
// @Param        payload  body      request.CompleteCaseRequest  false  "Completion details"
// @Success      200      {object}  response.CaseResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /cases/{case_id}/complete [post]
func (h *CaseHandler) CompleteCase(c *gin.Context) {
	var payload request.CompleteCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.CompleteCase(c.Request.Context(), c.Param(paramCaseID), payload.CompletedBy)
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCase(updated))
}

// GetRisk godoc
// @Summary      Risk assessment of a case
// @Tags         cases
// @Produce      json
// @Param        case_id  path      string  true  "Case ID"
// @Success      200      {object}  response.RiskResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /cases/{case_id}/risk [get]
func (h *CaseHandler) GetRisk(c *gin.Context) {
	caseID := c.Param(paramCaseID)
	a, err := h.usecase.AssessRisk(c.Request.Context(), caseID)
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRisk(caseID, a))
}
