/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref

import "unsafe"

// New performs the single allocation for a T, binds a control block to it
// and returns the first strong reference, with a strong count of 1.
//
// Types embedding RefCounted host their counters inside their own
// allocation; any other type is wrapped by a combined {counters, storage}
// block with a type-erased destroy. Either way exactly one allocation is
// made per object, and exactly one release is reported when the object and
// its weak observers are gone.
//
// ctor, if not nil, constructs the payload in place. It runs under the
// factory's own reference, passed as self: the constructor body may create
// and drop transient strong references to the object being built (clone
// self, or Adopt the raw pointer for a RefCounted payload) without ever
// dropping the count to zero mid-construction. self is borrowed — the
// constructor must not release it.
//
// If ctor panics, the panic propagates, the storage release is reported and
// the never-completed payload's Free is not invoked.
func New[T any](ctor func(self Strong[*T])) Strong[*T] {
	var (
		obj  *T
		c    *control
		size uintptr
	)
	if _, ok := any((*T)(nil)).(IRefCounted); ok {
		obj = new(T)
		c = any(obj).(IRefCounted).refControl()
		size = unsafe.Sizeof(*obj)
	} else {
		blk := &legacyBlock[T]{}
		obj = &blk.obj
		c = &blk.ctl
		size = unsafe.Sizeof(*blk)
	}
	c.bind(obj, size)

	self := Strong[*T]{obj: obj, ctl: c}
	if ctor != nil {
		construct(self, ctor)
	}
	return self
}

func construct[T any](self Strong[*T], ctor func(Strong[*T])) {
	defer func() {
		if r := recover(); r != nil {
			self.ctl.abort()
			panic(r)
		}
	}()
	ctor(self)
}
