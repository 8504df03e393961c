package response

import "vehicle_acquisition/internal/usecase"

type DocumentGenerationResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

func FromGeneration(r usecase.GenerationResult) DocumentGenerationResponse {
	return DocumentGenerationResponse{Success: r.Success, URL: r.URL, Error: r.Error}
}

type DeliveryResponse struct {
	Success bool   `json:"success"`
	Status  int    `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

func FromDelivery(r usecase.DeliveryResult) DeliveryResponse {
	return DeliveryResponse{Success: r.Success, Status: r.Status, Error: r.Error}
}
