package errorx

import "fmt"

type Code int

type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// Remote wraps a gateway failure. The gateway message is kept verbatim
// so the caller can show it to the user unchanged.
func Remote(err error) Error {
	return Error{Code: RemoteFailure, Message: err.Error()}
}
