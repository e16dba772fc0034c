package dto

// MessageResponse is the standard business-outcome envelope. Business
// failures (validation, conflict, not-found, bad credentials) travel as
// HTTP 200 with Success=false; callers branch on Success, not status.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NewSuccessResponse creates a success envelope with a message
func NewSuccessResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// NewFailureResponse creates a failure envelope with a message
func NewFailureResponse(message string) MessageResponse {
	return MessageResponse{Success: false, Message: message}
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Message string `json:"message"`
}
