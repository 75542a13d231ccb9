package domain

// Event represents a notification published after something happened.
// Unlike commands and queries, an event may have any number of handlers.
type Event[T any] interface {
	EventName() string
	Payload() T
}
