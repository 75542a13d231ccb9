package infrastructure

import "fmt"

// HandlerNotFoundError is returned by Dispatch when no handler is registered
// for the request's name. No behavior runs when this is returned.
type HandlerNotFoundError struct {
	RequestName string
}

func (e *HandlerNotFoundError) Error() string {
	return fmt.Sprintf("no handler registered for request %q", e.RequestName)
}

// DuplicateHandlerError is returned by RegisterHandler when a handler is
// already bound to the request's name. Registration is the only point where
// ambiguity can arise with a name-keyed registry, so it is reported there
// rather than at dispatch time.
type DuplicateHandlerError struct {
	RequestName string
}

func (e *DuplicateHandlerError) Error() string {
	return fmt.Sprintf("handler already registered for request %q", e.RequestName)
}
