/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref

import (
	"fmt"
	"sync/atomic"

	"github.com/untillpro/goutils/logger"
)

// control is the per-object control block: the strong and weak counters plus
// the type-erased means to destroy the payload and to report storage release.
//
// There is exactly one control block per object instance. Every handle over
// the instance, whatever its static view type, addresses this same block, so
// all of them observe the same counts.
//
// The strong population collectively owns one weak reference. It is dropped
// only after the payload is destroyed, so the storage release fires exactly
// once, when both counters are exhausted, without taking any lock.
type control struct {
	strong atomic.Int32
	weak   atomic.Int32
	obj    any     // concrete payload pointer; nil once storage is released
	fin    func()  // destroy through the payload dynamic type; nil if no IFreer
	size   uintptr // combined object+counters footprint
}

// bind initializes the counters of a freshly allocated object. The factory's
// own strong reference is established here, before the payload constructor
// body runs.
func (c *control) bind(obj any, size uintptr) {
	c.obj = obj
	c.size = size
	if f, ok := obj.(IFreer); ok {
		c.fin = f.Free
	}
	c.strong.Store(1)
	c.weak.Store(1)
	notifyAllocated(size)
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("[bind] %T: %d bytes", obj, size))
	}
}

func (c *control) refCount() int { return int(c.strong.Load()) }

func (c *control) expired() bool { return c.strong.Load() == 0 }

func (c *control) addRef() { c.strong.Add(1) }

// tryAddRef increments the strong counter only if it is still nonzero, as a
// single atomic operation. This is the promotion primitive: racing against
// the final release it either observes the object alive and pins it, or
// fails. A strong counter that reached zero never grows again.
func (c *control) tryAddRef() bool {
	for {
		n := c.strong.Load()
		if n == 0 {
			return false
		}
		if c.strong.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// release drops one strong reference. The payload is destroyed exactly once,
// the instant the counter reaches zero; the implicit weak reference is
// dropped afterwards, keeping the counters addressable for weak observers
// that outlive the object.
func (c *control) release() {
	if c.strong.Add(-1) != 0 {
		return
	}
	c.destroy()
	c.releaseWeak()
}

func (c *control) destroy() {
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("[destroy] %T", c.obj))
	}
	if c.fin != nil {
		c.fin()
		c.fin = nil
	}
}

func (c *control) addWeak() { c.weak.Add(1) }

// releaseWeak drops one weak reference. The backing storage is released once
// nobody, strong or weak, still references the block.
func (c *control) releaseWeak() {
	if c.weak.Add(-1) != 0 {
		return
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("[free] %T: %d bytes", c.obj, c.size))
	}
	c.obj = nil
	notifyFreed(c.size)
}

// abort rolls back a failed construction: the storage is released, the
// payload destructor is never invoked.
func (c *control) abort() {
	c.fin = nil
	c.release()
}
