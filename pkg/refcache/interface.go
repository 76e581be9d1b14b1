/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package refcache

import "github.com/voedger/objref/pkg/objref"

// Strong-handle LRU cache. The cache owns one strong reference per cached
// entry, so cached objects stay alive while cached and die deterministically
// once evicted with no other owners.
type ICache[K comparable, T any] interface {
	// Gets the caller's own strong reference to the cached object. Returns
	// an empty handle and false if the key is absent or the entry is being
	// evicted concurrently.
	Get(K) (ptr objref.Strong[T], ok bool)

	// Puts the cache's own clone of ptr under key. Putting over a live key
	// releases the previously stored reference. Putting an empty handle is
	// a no-op.
	Put(K, objref.Strong[T])

	// Removes the entry, releasing the stored reference if the key is live.
	Remove(K)
}
