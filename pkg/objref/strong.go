/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref

// Strong owns one strong reference to a shared object. T is the view type:
// a payload pointer (Strong[*widget]) or an interface the payload satisfies
// (Strong[IWidget]).
//
// The zero value is the empty handle. Handles are small values; copying one
// with plain assignment does NOT acquire a reference — use Clone for an
// owning copy, Move/Swap for ownership transfer, Release to drop.
//
// The object is destroyed the instant the last strong reference is released.
// Cycles of strong references are never reclaimed; break them with Weak.
type Strong[T any] struct {
	obj T
	ctl *control
}

// Get returns the payload view; the zero view for an empty handle.
// Dereferencing the view of an empty handle is the caller's error.
func (p Strong[T]) Get() T { return p.obj }

// IsEmpty reports whether the handle holds no reference.
func (p Strong[T]) IsEmpty() bool { return p.ctl == nil }

// RefCount returns the current strong reference count, 0 for an empty
// handle. Purely observational.
func (p Strong[T]) RefCount() int {
	if p.ctl == nil {
		return 0
	}
	return p.ctl.refCount()
}

// Clone acquires and returns an additional strong reference to the same
// object. Cloning an empty handle yields an empty handle.
func (p Strong[T]) Clone() Strong[T] {
	if p.ctl == nil {
		return Strong[T]{}
	}
	p.ctl.addRef()
	return Strong[T]{obj: p.obj, ctl: p.ctl}
}

// TryClone acquires an additional strong reference only if the object is
// still alive. Unlike Clone it is safe on a handle value whose owner may be
// releasing it concurrently, as a cache does with stored entries.
func (p Strong[T]) TryClone() (clone Strong[T], ok bool) {
	if p.ctl == nil || !p.ctl.tryAddRef() {
		return Strong[T]{}, false
	}
	return Strong[T]{obj: p.obj, ctl: p.ctl}, true
}

// Assign replaces the held reference with the handle's own clone of other.
// The new reference is acquired before the old one is released, so assigning
// a handle to itself keeps the object alive and the count unchanged.
func (p *Strong[T]) Assign(other Strong[T]) {
	next := other.Clone()
	p.Release()
	*p = next
}

// Move transfers the held reference to the returned handle and empties p.
// No counter traffic.
func (p *Strong[T]) Move() Strong[T] {
	moved := *p
	*p = Strong[T]{}
	return moved
}

// Swap exchanges the held references of p and other without touching the
// counters. Swapping a handle with itself leaves it unchanged.
func (p *Strong[T]) Swap(other *Strong[T]) {
	*p, *other = *other, *p
}

// Release drops the held strong reference and empties the handle. When the
// last strong reference is dropped the payload is destroyed; the storage is
// released once no weak references remain either. Releasing an empty handle
// is a no-op.
func (p *Strong[T]) Release() {
	if p.ctl == nil {
		return
	}
	c := p.ctl
	*p = Strong[T]{}
	c.release()
}

// Weak returns a weak reference to the object. The weak reference never
// keeps the object alive; promote it back with Weak.Lock.
func (p Strong[T]) Weak() Weak[T] {
	if p.ctl == nil {
		return Weak[T]{}
	}
	p.ctl.addWeak()
	return Weak[T]{obj: p.obj, ctl: p.ctl}
}

// Equals reports object identity: two handles are equal iff they govern the
// same object instance. Empty handles equal each other.
func (p Strong[T]) Equals(other Strong[T]) bool { return p.ctl == other.ctl }

// Same reports whether two strong handles with possibly different static
// views govern the same object instance.
func Same[T, U any](p Strong[T], q Strong[U]) bool { return p.ctl == q.ctl }
