package domain

// Command represents an intent with no returned value beyond completion or
// failure. CommandName is the command's identity for handler lookup.
type Command[T any] interface {
	CommandName() string
	Payload() T
}
