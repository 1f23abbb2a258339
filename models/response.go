package models

import "net/http"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every service operation returns. The HTTP layer
// writes StatusCode as the HTTP status and the whole envelope as the body.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// NewErrorResponse builds the default envelope an operation starts from.
// It is mutated in place as the operation progresses and returned
// unconditionally.
func NewErrorResponse(message string) *Response {
	return &Response{
		StatusCode: http.StatusBadRequest,
		Status:     StatusError,
		Message:    message,
		Data:       nil,
	}
}
