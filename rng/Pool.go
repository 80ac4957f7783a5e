package rng

// Pool is a generic arena of reusable values, replacing the original
// simulator's MEMORY_POOL<T> custom allocator. Particles are never created
// with new/delete; they are drawn from and returned to a Pool owned by the
// simulator that produced them, and freed in bulk between runs.
//
// Pool is not safe for concurrent use; particles are copied before mutation
// inside a rollout, so no two goroutines ever share ownership of one.
type Pool[T any] struct {
	free []*T
	zero T
}

// NewPool returns an empty Pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Get returns a pooled value ready for reuse, allocating a new one only when
// the free list is empty.
func (p *Pool[T]) Get() *T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		p.free = p.free[:n-1]
		*v = p.zero
		return v
	}
	v := new(T)
	return v
}

// Put returns a value to the pool for later reuse.
func (p *Pool[T]) Put(v *T) {
	p.free = append(p.free, v)
}

// Reset discards every pooled value, releasing them for garbage collection.
// Used between independent experiment runs.
func (p *Pool[T]) Reset() {
	p.free = nil
}

// Len returns the number of values currently held in reserve.
func (p *Pool[T]) Len() int {
	return len(p.free)
}
