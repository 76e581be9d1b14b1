/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package refcache

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objref/pkg/objref"
)

// backend is the minimal eviction-capable cache the providers implement
type backend[K comparable, V any] interface {
	Get(K) (V, bool)
	Put(K, V)
	Remove(K)
}

type cache[K comparable, T any] struct {
	impl backend[K, objref.Strong[T]]
}

func (c *cache[K, T]) Get(key K) (objref.Strong[T], bool) {
	v, ok := c.impl.Get(key)
	if !ok {
		return objref.Strong[T]{}, false
	}
	// a concurrent eviction may be releasing the stored reference right
	// now; a failed TryClone is then a clean miss
	return v.TryClone()
}

func (c *cache[K, T]) Put(key K, ptr objref.Strong[T]) {
	if ptr.IsEmpty() {
		return
	}
	c.impl.Remove(key)
	c.impl.Put(key, ptr.Clone())
}

func (c *cache[K, T]) Remove(key K) {
	c.impl.Remove(key)
}

// evicted releases the reference the cache held for the entry
func (c *cache[K, T]) evicted(key K, ptr objref.Strong[T]) {
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("[evict] key %v, refs: %d", key, ptr.RefCount()))
	}
	ptr.Release()
}
