package errors

import "fmt"

// MissingHandlerError indicates the parser was asked to dispatch before a
// handler was registered with SetHandler.
// Op names the operation that was attempted.
type MissingHandlerError struct{ Op string }

func (e MissingHandlerError) Error() string {
	if e.Op == "" {
		return "winchcli: no handler set"
	}
	return fmt.Sprintf("winchcli: %s: no handler set", e.Op)
}

// Helper constructors
func NewMissingHandler(op string) error { return MissingHandlerError{Op: op} }
