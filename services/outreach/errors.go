package outreach

import (
	"errors"
	"fmt"
)

// Error codes for recoverable outreach conditions. All of them surface at
// the session boundary as results the caller can act on; none corrupt the
// slot pool.
const (
	CodeSlotConflict    = "slotConflict"
	CodeUnknownTemplate = "unknownTemplate"
	CodeMissingSlot     = "missingSlot"
	CodeSessionNotFound = "sessionNotFound"
	CodeInvalidState    = "invalidState"
)

// Error carries a machine-readable code alongside the message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// HasCode reports whether err is an outreach error with the given code.
func HasCode(err error, code string) bool {
	var oe *Error
	return errors.As(err, &oe) && oe.Code == code
}
