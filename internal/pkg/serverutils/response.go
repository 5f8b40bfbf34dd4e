package serverutils

// ErrorBody is the JSON shape of every non-2xx response. Details is only
// populated for validation failures that can name the offending fields.
type ErrorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Error: message}
}

func ErrorResponseWithDetails(message string, details map[string]string) ErrorBody {
	return ErrorBody{Error: message, Details: details}
}
