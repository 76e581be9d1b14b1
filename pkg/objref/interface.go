/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref

// IFreer is the optional finalization hook of a payload type.
//
// If the payload implements IFreer, the engine calls Free exactly once, at
// the moment the last strong reference to the object is released. The call
// is dispatched through the payload's dynamic type, so a handle typed to an
// interface view still runs the concrete payload's Free, including any
// chained finalization of embedded parts the payload performs there.
type IFreer interface {
	Free()
}

// IRefCounted is the embedded counter capability.
//
// A payload type opts in by embedding RefCounted by value; the capability
// method is promoted and the type's pointers satisfy this interface. Types
// that do not opt in are served by the legacy combined-storage path, see New.
type IRefCounted interface {
	refControl() *control
}

// IAllocObserver observes the allocate/release boundary of the engine.
//
// For every object created by New the observer receives exactly one
// OnAllocated and, once the last strong and weak references are gone,
// exactly one OnFreed with the same size: the combined object+counters
// footprint. Implementations must be safe for concurrent use.
type IAllocObserver interface {
	OnAllocated(size uintptr)
	OnFreed(size uintptr)
}
