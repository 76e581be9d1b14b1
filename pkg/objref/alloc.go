/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref

import "sync/atomic"

var allocObserver atomic.Pointer[IAllocObserver]

// SetAllocObserver installs an observer of the engine's allocate/release
// boundary and returns the previously installed one, nil if none. Pass nil
// to uninstall. The observer is global to the engine, as the allocator it
// watches is.
func SetAllocObserver(o IAllocObserver) (prev IAllocObserver) {
	var p *IAllocObserver
	if o != nil {
		p = &o
	}
	if old := allocObserver.Swap(p); old != nil {
		prev = *old
	}
	return prev
}

func notifyAllocated(size uintptr) {
	if o := allocObserver.Load(); o != nil {
		(*o).OnAllocated(size)
	}
}

func notifyFreed(size uintptr) {
	if o := allocObserver.Load(); o != nil {
		(*o).OnFreed(size)
	}
}
