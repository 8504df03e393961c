package handlers

import (
	"net/http"

	response "vehicle_acquisition/internal/adapter/http/dto/response"
	"vehicle_acquisition/internal/usecase"

	"github.com/gin-gonic/gin"
)

const paramKind = "kind"

// DocumentHandler exposes document previews and PDF generation.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// PreviewDocument godoc
// @Summary      Preview a document model
// @Description  kind: bill_of_sale, quote_summary_basic, quote_summary_analytic, case_summary, complete_package
// @Tags         documents
// @Produce      json
// @Param        case_id  path      string  true  "Case ID"
// @Param        kind     path      string  true  "Document kind"
// @Success      200      {object}  documents.Document
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /cases/{case_id}/documents/{kind} [get]
func (h *DocumentHandler) PreviewDocument(c *gin.Context) {
	doc, err := h.usecase.Preview(c.Request.Context(), c.Param(paramCaseID), c.Param(paramKind))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GenerateDocument godoc
// @Summary      Render and store a document
// @Description  Rendering or storage failures are reported with success=false.
// @Tags         documents
// @Produce      json
// @Param        case_id  path      string  true  "Case ID"
// @Param        kind     path      string  true  "Document kind"
// @Success      200      {object}  response.DocumentGenerationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /cases/{case_id}/documents/{kind} [post]
func (h *DocumentHandler) GenerateDocument(c *gin.Context) {
	res, err := h.usecase.Generate(c.Request.Context(), c.Param(paramCaseID), c.Param(paramKind))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGeneration(res))
}
