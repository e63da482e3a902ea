package echo

import (
	"fmt"

	"go.uber.org/zap"
)

type (
	// Prop binds a single named field of a target record to an observable
	// value. Reads return the last accepted value, writes are validated
	// and broadcast synchronously to subscribers in subscription order,
	// and a bounded history of accepted values is replayed to late
	// subscribers. Every accepted write is mirrored onto the bound field,
	// so plain reads of the target stay in step with Get. A Prop is not
	// safe for concurrent use
	Prop[T any] struct {
		name    string
		cfg     Config[T]
		binder  binder
		stream  *Stream[T]
		history *ring[T]
		subs    []*subscription[T]
		current T
		present bool
		done    bool
	}

	subscription[T any] struct {
		next   Subscriber[T]
		done   func()
		closed bool
	}
)

// NewProp binds a reactive property to the named field of target, seeded
// with initial. The seed is accepted unconditionally: it becomes the
// current value and the first history entry without consulting Validate.
// The target must be a string keyed map or a pointer to a struct with a
// settable field of a compatible type; anything else is a configuration
// error. Unless disabled, the property's read-only stream view is
// installed on the target under the name plus StreamKeySuffix for maps,
// or on the field named after the property plus StreamFieldSuffix for
// structs
func NewProp[T any](
	target any, name string, initial T, cfg ...Config[T],
) (*Prop[T], error) {
	p, err := newProp(target, name, pickConfig(cfg))
	if err != nil {
		return nil, err
	}
	p.accept(initial)
	p.expose()
	return p, nil
}

// BindProp binds a reactive property without an explicit initial value.
// Unless NoAdopt is set, a value already present on the target (a non-nil
// map entry, or a non-zero struct field) is adopted and seeded exactly as
// NewProp would seed it. Otherwise the property starts empty: Get returns
// the zero value, HasValue reports false, and subscribers receive nothing
// until the first accepted write
func BindProp[T any](
	target any, name string, cfg ...Config[T],
) (*Prop[T], error) {
	c := pickConfig(cfg)
	p, err := newProp(target, name, c)
	if err != nil {
		return nil, err
	}
	if !c.NoAdopt {
		if v, ok := p.binder.adopt(); ok {
			tv, ok := v.(T)
			if !ok {
				return nil, propError(name, ErrFieldType)
			}
			p.accept(tv)
		}
	}
	p.expose()
	return p, nil
}

// MakeProp binds a reactive property to the named field of target.
//
// Deprecated: Use NewProp instead.
func MakeProp[T any](
	target any, name string, initial T, cfg ...Config[T],
) (*Prop[T], error) {
	return NewProp(target, name, initial, cfg...)
}

func newProp[T any](target any, name string, cfg Config[T]) (*Prop[T], error) {
	b, err := newBinder[T](target, name)
	if err != nil {
		return nil, propError(name, err)
	}
	p := &Prop[T]{
		name:    name,
		cfg:     cfg,
		binder:  b,
		history: newRing[T](cfg.replayCapacity()),
	}
	p.stream = &Stream[T]{prop: p}
	return p, nil
}

func propError(name string, err error) error {
	return fmt.Errorf("prop %q: %w", name, err)
}

// Name returns the name of the bound field
func (p *Prop[T]) Name() string {
	return p.name
}

// Get returns the last accepted value. While the property is empty it
// returns the zero value; see HasValue
func (p *Prop[T]) Get() T {
	return p.current
}

// HasValue reports whether any value has been accepted yet
func (p *Prop[T]) HasValue() bool {
	return p.present
}

// Set validates and, if accepted, stores and broadcasts a new value. A
// rejected write changes nothing, raises no error, and is reported only
// through the configured Logger and Metrics. After Complete, accepted
// writes still update the value and the target mirror, but history and
// subscribers no longer see them
func (p *Prop[T]) Set(v T) {
	if p.cfg.Validate != nil && !p.cfg.Validate(v, p.current) {
		p.reject(v)
		return
	}
	if p.done {
		p.current = v
		p.present = true
		p.binder.store(v)
		return
	}
	p.accept(v)
}

// Update applies fn to the current value and writes the result through
// Set, with the same validation and broadcast
func (p *Prop[T]) Update(fn func(T) T) {
	p.Set(fn(p.current))
}

// Subscribe registers fn to receive accepted values. The retained history
// is replayed to fn immediately, oldest value first, after which fn
// receives every subsequently accepted value in write order. The returned
// Unsubscribe ends the subscription
func (p *Prop[T]) Subscribe(fn Subscriber[T]) Unsubscribe {
	if fn == nil {
		return func() {}
	}
	s := &subscription[T]{next: fn}
	if !p.done {
		p.subs = append(p.subs, s)
		p.cfg.Metrics.subscribed(p.name)
	}
	for _, v := range p.history.values() {
		if s.closed {
			break
		}
		fn(v)
		p.cfg.Metrics.replayed(p.name)
	}
	if p.done {
		s.closed = true
	}
	return p.unsubscriber(s)
}

// OnComplete registers fn to run once when the property completes. If it
// has already completed, fn runs immediately
func (p *Prop[T]) OnComplete(fn func()) Unsubscribe {
	if fn == nil {
		return func() {}
	}
	if p.done {
		fn()
		return func() {}
	}
	s := &subscription[T]{done: fn}
	p.subs = append(p.subs, s)
	return p.unsubscriber(s)
}

// Stream returns the read-only view of this property, the same view that
// gets installed on the target record
func (p *Prop[T]) Stream() *Stream[T] {
	return p.stream
}

// History returns a copy of the retained history, oldest value first
func (p *Prop[T]) History() []T {
	return p.history.values()
}

// Completed reports whether Complete has been called
func (p *Prop[T]) Completed() bool {
	return p.done
}

// Complete ends the stream. Completion callbacks run once, in
// registration order, and every subscription ends. Get and Set continue
// to work against the bound field, but no further notifications of any
// kind are delivered. Complete is idempotent
func (p *Prop[T]) Complete() {
	if p.done {
		return
	}
	p.done = true
	subs := p.subs
	p.subs = nil
	for _, s := range subs {
		if s.closed {
			continue
		}
		s.closed = true
		if s.next != nil {
			p.cfg.Metrics.unsubscribed(p.name)
		}
		if s.done != nil {
			s.done()
		}
	}
	p.cfg.Metrics.completed(p.name)
}

func (p *Prop[T]) expose() {
	if !p.cfg.NoObservable {
		p.binder.install(p.stream)
	}
}

func (p *Prop[T]) accept(v T) {
	p.current = v
	p.present = true
	p.binder.store(v)
	p.history.add(v)
	p.cfg.Metrics.accepted(p.name)
	p.notify(v)
}

func (p *Prop[T]) reject(v T) {
	p.cfg.Metrics.rejected(p.name)
	if p.cfg.Logger == nil {
		return
	}
	p.cfg.Logger.Warn("write rejected",
		zap.String("prop", p.name),
		zap.Any("value", v),
		zap.Any("current", p.current),
	)
}

// notify delivers v to the subscribers registered at the moment the write
// was accepted. Reentrant writes from inside a callback are delivered
// depth-first: the nested write completes its broadcast before the outer
// one resumes, so later subscribers observe the newer value first.
// Subscriptions added during delivery only see subsequent writes;
// subscriptions removed during delivery are skipped
func (p *Prop[T]) notify(v T) {
	subs := make([]*subscription[T], len(p.subs))
	copy(subs, p.subs)
	for _, s := range subs {
		if p.done {
			return
		}
		if s.closed || s.next == nil {
			continue
		}
		s.next(v)
	}
}

func (p *Prop[T]) unsubscriber(s *subscription[T]) Unsubscribe {
	return func() {
		if s.closed {
			return
		}
		s.closed = true
		for i, cur := range p.subs {
			if cur == s {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				if s.next != nil {
					p.cfg.Metrics.unsubscribed(p.name)
				}
				break
			}
		}
	}
}
