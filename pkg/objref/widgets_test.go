/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref_test

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/voedger/objref/pkg/objref"
)

// payloads hosting their own counters

type simpleWidget struct {
	objref.RefCounted
	data string
}

func (w *simpleWidget) Data() string { return w.data }

type derivedWidget struct {
	simpleWidget
	value int
}

// reEmbedWidget re-embeds the counter capability at the derived level. The
// shallowest embedding is the authoritative one; the factory binds it and
// every handle over the instance observes that single counter.
type reEmbedWidget struct {
	simpleWidget
	objref.RefCounted
	value int
}

// iData is the base view of the widget hierarchy
type iData interface {
	Data() string
}

type iNamed interface{ Name() string }

type iSized interface{ Size() int }

// multiWidget provides two independent views, the analog of a type with
// several polymorphic bases
type multiWidget struct {
	objref.RefCounted
	name string
	size int
}

func (w *multiWidget) Name() string { return w.name }
func (w *multiWidget) Size() int    { return w.size }

type namedWidget struct {
	objref.RefCounted
	name string
}

func (w *namedWidget) Name() string { return w.name }

// tracedWidget writes ordered markers: "1" before and "3" after the
// constructor body, "2" per constructor-phase self-reference, "4" at destroy
type tracedWidget struct {
	objref.RefCounted
	log *strings.Builder
}

func (w *tracedWidget) Free() { w.log.WriteString("4") }

type freeCounter struct {
	objref.RefCounted
	freed *int
}

func (w *freeCounter) Free() { *w.freed++ }

type atomicFreeCounter struct {
	objref.RefCounted
	freed *atomic.Int32
}

func (w *atomicFreeCounter) Free() { w.freed.Add(1) }

// legacy payloads: no embedded capability, served by the combined-storage path

type legacySimple struct {
	data string
}

func (w *legacySimple) Data() string { return w.data }

type legacyDerived struct {
	legacySimple
	value int
}

type legacyMulti struct {
	name string
	size int
}

func (w *legacyMulti) Name() string { return w.name }
func (w *legacyMulti) Size() int    { return w.size }

type legacyTraced struct {
	log *strings.Builder
}

func (w *legacyTraced) Free() { w.log.WriteString("4") }

// allocCounter observes the allocate/release boundary
type allocCounter struct {
	allocs atomic.Int32
	frees  atomic.Int32
}

func (a *allocCounter) OnAllocated(uintptr) { a.allocs.Add(1) }
func (a *allocCounter) OnFreed(uintptr)     { a.frees.Add(1) }

func observeAllocs(t *testing.T) *allocCounter {
	t.Helper()
	a := &allocCounter{}
	prev := objref.SetAllocObserver(a)
	t.Cleanup(func() { objref.SetAllocObserver(prev) })
	return a
}
