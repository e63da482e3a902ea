package echo

import (
	"errors"
	"reflect"
)

type (
	// binder mirrors accepted values onto the bound field of the target
	// record and installs the stream view alongside it
	binder interface {
		adopt() (any, bool)
		store(v any)
		install(stream any)
	}

	mapBinder struct {
		target map[string]any
		name   string
	}

	structBinder struct {
		field  reflect.Value
		stream reflect.Value
	}
)

var (
	// ErrNilTarget is raised when the target record is nil
	ErrNilTarget = errors.New("target must not be nil")

	// ErrUnsupportedTarget is raised when the target is neither a string
	// keyed map nor a pointer to a struct
	ErrUnsupportedTarget = errors.New("unsupported target type")

	// ErrEmptyName is raised when the property name is empty
	ErrEmptyName = errors.New("property name must not be empty")

	// ErrNoSuchField is raised when a struct target has no field matching
	// the property name
	ErrNoSuchField = errors.New("target has no matching field")

	// ErrFieldUnsettable is raised when the matching struct field cannot
	// be assigned, usually because it is unexported
	ErrFieldUnsettable = errors.New("target field cannot be set")

	// ErrFieldType is raised when the target field or its existing value
	// is incompatible with the property's value type
	ErrFieldType = errors.New("target field type mismatch")
)

var recordType = reflect.TypeOf((*map[string]any)(nil)).Elem()

func newBinder[T any](target any, name string) (binder, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if target == nil {
		return nil, ErrNilTarget
	}
	if m, ok := asRecord(target); ok {
		if m == nil {
			return nil, ErrNilTarget
		}
		return &mapBinder{target: m, name: name}, nil
	}
	return newStructBinder[T](target, name)
}

// asRecord recognizes map targets, including named types whose underlying
// type is map[string]any. The converted map shares storage with the
// original
func asRecord(target any) (map[string]any, bool) {
	if m, ok := target.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Map || !rv.Type().ConvertibleTo(recordType) {
		return nil, false
	}
	return rv.Convert(recordType).Interface().(map[string]any), true
}

func newStructBinder[T any](target any, name string) (binder, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer {
		return nil, ErrUnsupportedTarget
	}
	if rv.IsNil() {
		return nil, ErrNilTarget
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return nil, ErrUnsupportedTarget
	}

	field := rv.FieldByName(name)
	if !field.IsValid() {
		return nil, ErrNoSuchField
	}
	if !field.CanSet() {
		return nil, ErrFieldUnsettable
	}
	if !reflect.TypeOf((*T)(nil)).Elem().AssignableTo(field.Type()) {
		return nil, ErrFieldType
	}

	b := &structBinder{field: field}
	sf := rv.FieldByName(name + StreamFieldSuffix)
	if sf.IsValid() && sf.CanSet() &&
		reflect.TypeOf((**Stream[T])(nil)).Elem().AssignableTo(sf.Type()) {
		b.stream = sf
	}
	return b, nil
}

func (b *mapBinder) adopt() (any, bool) {
	v, ok := b.target[b.name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (b *mapBinder) store(v any) {
	b.target[b.name] = v
}

func (b *mapBinder) install(stream any) {
	b.target[b.name+StreamKeySuffix] = stream
}

func (b *structBinder) adopt() (any, bool) {
	if b.field.IsZero() {
		return nil, false
	}
	return b.field.Interface(), true
}

func (b *structBinder) store(v any) {
	if v == nil {
		b.field.SetZero()
		return
	}
	b.field.Set(reflect.ValueOf(v))
}

func (b *structBinder) install(stream any) {
	if b.stream.IsValid() {
		b.stream.Set(reflect.ValueOf(stream))
	}
}
