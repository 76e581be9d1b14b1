/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package refcache

import (
	"fmt"

	"github.com/voedger/objref/pkg/objref"
	"github.com/voedger/objref/pkg/refcache/internal/hashicorp"
	"github.com/voedger/objref/pkg/refcache/internal/imcache"
	"github.com/voedger/objref/pkg/refcache/internal/theine"
)

// CacheProvider selects the backend cache implementation
type CacheProvider uint8

const (
	// LRU cache by hashicorp golang-lru. Default. Synchronous eviction,
	// use it when deterministic release timing matters.
	Hashicorp CacheProvider = iota

	// Hybrid LRU/LFU cache by Yiling-J theine-go
	Theine

	// LRU cache by erni27 imcache
	Imcache
)

func (p CacheProvider) String() string {
	switch p {
	case Hashicorp:
		return "Hashicorp"
	case Theine:
		return "Theine"
	case Imcache:
		return "Imcache"
	}
	return fmt.Sprintf("CacheProvider(%d)", uint8(p))
}

// New creates a strong-handle cache with K key type over objects viewed as
// T, limited to size entries, with the default provider.
func New[K comparable, T any](size int) ICache[K, T] {
	return NewProvider[K, T](Hashicorp, size)
}

// NewProvider creates a strong-handle cache backed by the specified provider.
func NewProvider[K comparable, T any](p CacheProvider, size int) ICache[K, T] {
	c := &cache[K, T]{}
	switch p {
	case Hashicorp:
		c.impl = hashicorp.New[K, objref.Strong[T]](size, c.evicted)
	case Theine:
		c.impl = theine.New[K, objref.Strong[T]](size, c.evicted)
	case Imcache:
		c.impl = imcache.New[K, objref.Strong[T]](size, c.evicted)
	default:
		panic(fmt.Errorf("unknown cache provider: %v", p))
	}
	return c
}
