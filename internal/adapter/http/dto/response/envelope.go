package response

import "github.com/giordanomadjo-lab/sisgped/internal/usecase"

// Envelope is the uniform body of every JSON response. Failures come out of
// pkg.AppError.ToEnvelope instead, with success=false and a message.
type Envelope struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Message    string              `json:"message,omitempty"`
	Pagination *usecase.Pagination `json:"pagination,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

func OKPaginated(data any, p usecase.Pagination) Envelope {
	return Envelope{Success: true, Data: data, Pagination: &p}
}
