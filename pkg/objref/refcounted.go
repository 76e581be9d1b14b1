/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref

// RefCounted hosts the object's control block inside the object's own
// allocation. Embed it by value to opt a payload type into the zero-extra-
// allocation path:
//
//	type widget struct {
//		objref.RefCounted
//		data string
//	}
//
// Exactly one embedding point is permitted per concrete type. Embedding
// RefCounted again in a type that already inherits it from an embedded part
// makes the capability method ambiguous, the promotion disappears and the
// type no longer satisfies IRefCounted; such a type is served by the legacy
// path and still gets a single authoritative counter.
//
// Constructors must not overwrite the whole payload value (*self.Get() = T{…})
// since that would wipe the counters hosted inside it; assign fields instead.
type RefCounted struct {
	ctl control
}

func (rc *RefCounted) refControl() *control { return &rc.ctl }

// Adopt produces an additional strong reference from a raw pointer to an
// object that hosts its own counters and was bound by New.
//
// Returns false for an object that was never bound, or whose last strong
// reference is already gone.
func Adopt[T IRefCounted](obj T) (Strong[T], bool) {
	c := obj.refControl()
	if !c.tryAddRef() {
		return Strong[T]{}, false
	}
	return Strong[T]{obj: obj, ctl: c}, true
}
