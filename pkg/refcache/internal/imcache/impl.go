/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package imcache

import (
	"github.com/erni27/imcache"
)

// LRU cache implemented by erni27 imcache
type Cache[K comparable, V any] struct {
	c *imcache.Cache[K, V]
}

func New[K comparable, V any](size int, onEvicted func(K, V)) *Cache[K, V] {
	opts := []imcache.Option[K, V]{
		imcache.WithMaxEntriesOption[K, V](size),
	}
	if onEvicted != nil {
		opts = append(opts,
			imcache.WithEvictionCallbackOption[K, V](
				func(key K, value V, _ imcache.EvictionReason) { onEvicted(key, value) }))
	}
	return &Cache[K, V]{c: imcache.New[K, V](opts...)}
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.c.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.c.Set(key, value, imcache.WithNoExpiration())
}

func (c *Cache[K, V]) Remove(key K) {
	c.c.Remove(key)
}
