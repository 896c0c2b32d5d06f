package http_common

import usecase_session "github.com/picparty/core/internal/usecase/session"

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func FromFailure(f usecase_session.Failure) ErrorResponse {
	return ErrorResponse{
		Title:   f.Title,
		Message: f.Message,
	}
}
