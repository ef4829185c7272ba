package dto

import "time"

// APIResponse is the envelope of every /api/v1 response.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// ChartResponse is the bare {"data": [...]} payload of the chart endpoints.
type ChartResponse struct {
	Data interface{} `json:"data"`
}

// MessageResponse carries a short confirmation message.
type MessageResponse struct {
	Message string `json:"message" example:"Study deleted"`
}

// PaginationInfo describes one page of a listing.
type PaginationInfo struct {
	CurrentPage int   `json:"current_page" example:"1"`
	TotalPages  int   `json:"total_pages" example:"3"`
	PageSize    int   `json:"page_size" example:"20"`
	TotalItems  int64 `json:"total_items" example:"45"`
	HasNext     bool  `json:"has_next" example:"true"`
	HasPrevious bool  `json:"has_previous" example:"false"`
}

// HealthResponse reports service liveness and database reachability.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}
