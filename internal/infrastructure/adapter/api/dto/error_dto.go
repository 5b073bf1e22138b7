package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a confirmation response with no payload
type MessageResponse struct {
	Message string `json:"message"`
}
