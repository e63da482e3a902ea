package echo

type ring[T any] struct {
	buf  []T
	head int
	size int
}

func newRing[T any](capacity int) *ring[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &ring[T]{
		buf: make([]T, capacity),
	}
}

func (r *ring[T]) add(v T) {
	if len(r.buf) == 0 {
		return
	}
	if r.size < len(r.buf) {
		r.buf[(r.head+r.size)%len(r.buf)] = v
		r.size++
		return
	}
	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
}

func (r *ring[T]) values() []T {
	res := make([]T, r.size)
	for i := 0; i < r.size; i++ {
		res[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return res
}
