package core

// Error codes surfaced on the wire alongside the human-readable message.
const (
	ErrCodeRoomNotFound = "room_not_found"
	ErrCodeRoomFull     = "room_full"
	ErrCodeBadRequest   = "bad_request"
	ErrCodeInternal     = "internal_error"
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
