package echo

type (
	// Validator decides whether a write is accepted. It receives the
	// incoming value and the property's current value and returns true to
	// accept. Rejection is silent unless a Logger is configured
	Validator[T any] func(next, current T) bool

	// Subscriber receives accepted values from a property, replayed
	// history first, then live writes in order
	Subscriber[T any] func(T)

	// Unsubscribe ends a subscription. Calling it more than once is
	// harmless
	Unsubscribe func()
)
