/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref

// StaticCast reinterprets the handle under the view type U, trusting the
// caller that the payload's dynamic type provides U. The result is a new
// strong reference over the same control block. Casting an empty handle
// yields an empty handle.
//
// A violated relationship is a caller contract error and panics; use
// DynamicCast for a checked conversion.
func StaticCast[U any, T any](p Strong[T]) Strong[U] {
	if p.ctl == nil {
		return Strong[U]{}
	}
	view := p.ctl.obj.(U)
	p.ctl.addRef()
	return Strong[U]{obj: view, ctl: p.ctl}
}

// DynamicCast converts the handle to the view type U iff the payload's
// dynamic type provides U: U is the concrete pointer type, or an interface
// the payload satisfies along any path. On success it returns a new strong
// reference over the same control block; on mismatch it returns an empty
// handle and false, leaving the source handle and the counts untouched.
func DynamicCast[U any, T any](p Strong[T]) (ptr Strong[U], ok bool) {
	if p.ctl == nil {
		return Strong[U]{}, false
	}
	view, ok := p.ctl.obj.(U)
	if !ok {
		return Strong[U]{}, false
	}
	p.ctl.addRef()
	return Strong[U]{obj: view, ctl: p.ctl}, true
}
