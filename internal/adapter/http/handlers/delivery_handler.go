package handlers

import (
	"net/http"

	request "vehicle_acquisition/internal/adapter/http/dto/request"
	response "vehicle_acquisition/internal/adapter/http/dto/response"
	"vehicle_acquisition/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DeliveryHandler sends case packages to the automation webhook.
type DeliveryHandler struct {
	usecase usecase.IDeliveryUseCase
}

func NewDeliveryHandler(uc usecase.IDeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc}
}

// DeliverCase godoc
// @Summary      Deliver the case package
// @Description  Posts the normalized package once. Upstream failures are reported with success=false.
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Param        case_id  path      string                  true  "Case ID"
// @Param        payload  body      request.DeliverRequest  true  "Document URL and acting user"
// @Success      200      {object}  response.DeliveryResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /cases/{case_id}/deliver [post]
func (h *DeliveryHandler) DeliverCase(c *gin.Context) {
	var payload request.DeliverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDeliveryPayload.HTTPStatus, errInvalidDeliveryPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Deliver(c.Request.Context(), c.Param(paramCaseID), payload.ResolveUser(), payload.DocumentURL)
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDelivery(res))
}
