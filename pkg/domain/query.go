package domain

// Query represents an intent that returns a typed result. QueryName is the
// query's identity for handler lookup.
type Query[T any] interface {
	QueryName() string
	Payload() T
}
