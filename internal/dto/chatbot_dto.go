package dto

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SendMessageRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"sessionId,omitempty"`
}

type SendMessageResponse struct {
	Response  string `json:"response"`
	SessionId string `json:"sessionId"`
}

type ResetRequest struct {
	SessionId string `json:"sessionId,omitempty"`
}

type ResetResponse struct {
	Message   string `json:"message"`
	SessionId string `json:"sessionId"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
