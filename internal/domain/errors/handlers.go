package errors

// ErrorInfo is the error body of a failed request. Code is one of the codes
// declared in errors.go (SESSION_NOT_FOUND, CALL_NOT_FOUND, INVALID_ID_TOKEN,
// STREAM_CONGESTED, SESSION_CLOSED, UNSUPPORTED, CALL_FAILED,
// PUSH_TOKEN_INVALID, INVALID_PUSH_MESSAGE) or INTERNAL_ERROR.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo ties a response to its request and, on session routes, to the session.
type MetaInfo struct {
	RequestID string `json:"request_id"`
	SessionID string `json:"session_id,omitempty"`
}

// SuccessResponse wraps the data of a successful request.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failed request. Pages read Error.Code, never Message.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
