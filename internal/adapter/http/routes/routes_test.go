package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vehicle_acquisition/internal/adapter/http/handlers"
	"vehicle_acquisition/internal/adapter/http/handlers/mocks"
	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockICaseUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	caseUC := mocks.NewMockICaseUseCase(ctrl)
	h := Handlers{
		Case:         handlers.NewCaseHandler(caseUC),
		TimeTracking: handlers.NewTimeTrackingHandler(mocks.NewMockITimeTrackingUseCase(ctrl)),
		Document:     handlers.NewDocumentHandler(mocks.NewMockIDocumentUseCase(ctrl)),
		Delivery:     handlers.NewDeliveryHandler(mocks.NewMockIDeliveryUseCase(ctrl)),
	}
	return NewRouter(h), caseUC
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestCaseRoutesMounted(t *testing.T) {
	router, caseUC := newTestRouter(t)
	caseUC.EXPECT().GetCase(gomock.Any(), "case-1").Return(entities.CaseAggregate{}, usecase.ErrCaseNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cases/case-1", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutesRegistered(t *testing.T) {
	router, _ := newTestRouter(t)

	want := map[string]bool{
		"POST /v1/cases":                          false,
		"GET /v1/cases/:case_id":                  false,
		"PATCH /v1/cases/:case_id/stage":          false,
		"POST /v1/cases/:case_id/complete":        false,
		"GET /v1/cases/:case_id/risk":             false,
		"PUT /v1/cases/:case_id/time/:stage_name": false,
		"GET /v1/cases/:case_id/documents/:kind":  false,
		"POST /v1/cases/:case_id/documents/:kind": false,
		"POST /v1/cases/:case_id/deliver":         false,
		"GET /v1/ping":                            false,
	}
	for _, r := range router.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		assert.True(t, found, "route %s not registered", route)
	}
}
