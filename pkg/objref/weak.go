/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref

// Weak owns one weak reference: it observes the object's liveness without
// extending it. The zero value is the empty handle.
//
// A weak reference keeps the counters addressable after the object is gone,
// so Expired and Lock stay safe to call at any time; the backing storage is
// only released once the last weak reference is dropped too.
type Weak[T any] struct {
	obj T
	ctl *control
}

// IsEmpty reports whether the handle holds no reference.
func (w Weak[T]) IsEmpty() bool { return w.ctl == nil }

// Expired reports whether the object is already destroyed. An empty handle
// is expired.
func (w Weak[T]) Expired() bool {
	return w.ctl == nil || w.ctl.expired()
}

// Lock attempts promotion to a strong reference. It succeeds only if the
// object is still alive at the moment of the attempt; racing against the
// final strong release it either pins the object or fails, it never
// resurrects a destroyed one.
func (w Weak[T]) Lock() (ptr Strong[T], ok bool) {
	if w.ctl == nil || !w.ctl.tryAddRef() {
		return Strong[T]{}, false
	}
	return Strong[T]{obj: w.obj, ctl: w.ctl}, true
}

// Clone acquires and returns an additional weak reference.
func (w Weak[T]) Clone() Weak[T] {
	if w.ctl == nil {
		return Weak[T]{}
	}
	w.ctl.addWeak()
	return Weak[T]{obj: w.obj, ctl: w.ctl}
}

// Assign replaces the held reference with the handle's own clone of other.
// Self-assignment leaves the handle unchanged.
func (w *Weak[T]) Assign(other Weak[T]) {
	next := other.Clone()
	w.Release()
	*w = next
}

// Move transfers the held reference to the returned handle and empties w.
func (w *Weak[T]) Move() Weak[T] {
	moved := *w
	*w = Weak[T]{}
	return moved
}

// Swap exchanges the held references of w and other. Swapping a handle with
// itself leaves it unchanged.
func (w *Weak[T]) Swap(other *Weak[T]) {
	*w, *other = *other, *w
}

// Release drops the held weak reference and empties the handle. Releasing an
// empty handle is a no-op.
func (w *Weak[T]) Release() {
	if w.ctl == nil {
		return
	}
	c := w.ctl
	*w = Weak[T]{}
	c.releaseWeak()
}

// Equals reports object identity, as with Strong handles.
func (w Weak[T]) Equals(other Weak[T]) bool { return w.ctl == other.ctl }
