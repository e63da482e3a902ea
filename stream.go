package echo

// Stream is the read-only face of a Prop. It can read, replay, and
// observe values but cannot write or complete the underlying property.
// The view installed on the target record is a Stream, so collaborators
// handed the target can watch a field without being able to drive it
type Stream[T any] struct {
	prop *Prop[T]
}

// Name returns the name of the bound field
func (s *Stream[T]) Name() string {
	return s.prop.Name()
}

// Get returns the last accepted value
func (s *Stream[T]) Get() T {
	return s.prop.Get()
}

// HasValue reports whether any value has been accepted yet
func (s *Stream[T]) HasValue() bool {
	return s.prop.HasValue()
}

// History returns a copy of the retained history, oldest value first
func (s *Stream[T]) History() []T {
	return s.prop.History()
}

// Completed reports whether the underlying property has completed
func (s *Stream[T]) Completed() bool {
	return s.prop.Completed()
}

// Subscribe registers fn exactly as Prop.Subscribe does
func (s *Stream[T]) Subscribe(fn Subscriber[T]) Unsubscribe {
	return s.prop.Subscribe(fn)
}

// OnComplete registers fn exactly as Prop.OnComplete does
func (s *Stream[T]) OnComplete(fn func()) Unsubscribe {
	return s.prop.OnComplete(fn)
}
