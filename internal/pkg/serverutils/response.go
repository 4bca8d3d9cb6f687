package serverutils

// ErrorEnvelope is the wire shape of every non-2xx response.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(code int, message string) ErrorEnvelope {
	return ErrorEnvelope{
		Success: false,
		Code:    code,
		Message: message,
	}
}
