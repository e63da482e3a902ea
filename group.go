package echo

import "slices"

// NewProps binds one reactive property per entry of values on the same
// target, applying cfg to each. Properties are bound in lexical name
// order and the handles are returned in that order. Each property stands
// alone: writes, rejections, and completion of one never touch another.
// The first configuration error stops the group and is returned;
// properties bound before the failure remain installed on the target
func NewProps[T any](
	target any, values map[string]T, cfg ...Config[T],
) ([]*Prop[T], error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	props := make([]*Prop[T], 0, len(names))
	for _, name := range names {
		p, err := NewProp(target, name, values[name], cfg...)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

// MakeProps binds one reactive property per entry of values.
//
// Deprecated: Use NewProps instead.
func MakeProps[T any](
	target any, values map[string]T, cfg ...Config[T],
) ([]*Prop[T], error) {
	return NewProps(target, values, cfg...)
}
