package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"vehicle_acquisition/internal/adapter/http/handlers/mocks"
	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDeliveryRouter(h *DeliveryHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/cases/:case_id/deliver", h.DeliverCase)
	return r
}

func TestDeliveryHandler_DeliverCase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(NewDeliveryHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/cases/case-1/deliver", "[")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("trims acting user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(NewDeliveryHandler(uc))

		want := entities.ActingUser{ID: "u-1", Name: "Ana Lima", Email: "ana@example.com"}
		uc.EXPECT().Deliver(gomock.Any(), "case-1", want, "https://docs/x.pdf").Return(usecase.DeliveryResult{Success: true, Status: 200}, nil)

		w := doJSON(r, http.MethodPost, "/v1/cases/case-1/deliver",
			`{"document_url":"https://docs/x.pdf","acting_user":{"id":" u-1 ","name":"Ana Lima ","email":"ana@example.com"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["status"] != float64(200) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("upstream failure reported in body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(NewDeliveryHandler(uc))

		uc.EXPECT().Deliver(gomock.Any(), "case-1", gomock.Any(), "").Return(usecase.DeliveryResult{Status: 502, Error: "webhook returned 502"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/cases/case-1/deliver", `{}`)
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["success"] != false || body["status"] != float64(502) {
			t.Fatalf("unexpected response %d: %v", w.Code, body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(NewDeliveryHandler(uc))

		uc.EXPECT().Deliver(gomock.Any(), "missing", gomock.Any(), gomock.Any()).Return(usecase.DeliveryResult{}, usecase.ErrCaseNotFound)

		w := doJSON(r, http.MethodPost, "/v1/cases/missing/deliver", `{}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
