package pkg

// AppError is the boundary representation of a domain failure.
//
// Use cases return sentinel errors; handlers map them into an AppError and
// serialize it with ToEnvelope, so every failed operation leaves the process
// with the same {success:false, message} body the frontend expects.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToEnvelope renders the error as the JSON response envelope body.
func (e *AppError) ToEnvelope() map[string]any {
	return map[string]any{
		"success": false,
		"message": e.Message,
		"code":    e.Code,
	}
}
