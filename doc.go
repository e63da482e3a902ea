// Package echo turns a named field of a plain record into an observable
// value. Reads return the last accepted value, writes are validated and
// broadcast synchronously to subscribers, and a bounded history of
// accepted values is replayed to anyone who subscribes late.
//
// Typical usage looks like:
//   - Bind a property to a map[string]any or struct pointer target with
//     NewProp (explicit initial value) or BindProp (adopt whatever the
//     target already holds)
//   - Route reads and writes through the returned Prop: Get, Set, Update
//   - Subscribe callbacks that receive the replayed history and then every
//     accepted value, synchronously and in write order
//   - Reject unwanted writes with a Validator, hand-written or built from
//     a validation tag with Rule
//   - Complete the property when the stream is over
//
// Each binding governs exactly one field; bindings never interact, and no
// goroutines, locks, or timers are involved. A Prop is not safe for
// concurrent use. Writes go through the Prop rather than the record, and
// every accepted write is mirrored onto the bound field, so plain readers
// of the target always see the current value. A read-only Stream view is
// installed alongside the field for collaborators that only observe.
//
// The examples/ directory contains runnable programs that exercise the API
// in a small domain.
package echo
