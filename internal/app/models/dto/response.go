package dto

// MessageResponse is the acknowledgement returned by create operations
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Subject created successfully."`
}

// NewMessageResponse creates a successful acknowledgement
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Success bool   `json:"success" example:"true"`
	Status  string `json:"status" example:"ok"`
}
