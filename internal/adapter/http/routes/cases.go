package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathCases = "/cases"
)

func addCaseRoutes(rg *gin.RouterGroup, h Handlers) {
	cases := rg.Group(PathCases)
	{
		cases.POST("", h.Case.CreateCase)
		cases.GET("/:case_id", h.Case.GetCase)
		cases.PATCH("/:case_id/stage", h.Case.AdvanceStage)
		cases.POST("/:case_id/complete", h.Case.CompleteCase)
		cases.GET("/:case_id/risk", h.Case.GetRisk)
	}

	{
		cases.PUT("/:case_id/time/:stage_name", h.TimeTracking.RecordStageTime)
	}

	{
		cases.GET("/:case_id/documents/:kind", h.Document.PreviewDocument)
		cases.POST("/:case_id/documents/:kind", h.Document.GenerateDocument)
		cases.POST("/:case_id/deliver", h.Delivery.DeliverCase)
	}
}
