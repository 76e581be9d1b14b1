/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref

// legacyBlock combines the control block and the payload storage in a single
// allocation for payload types that do not host their own counters. The
// payload has no awareness of the block: its destroy function is captured
// type-erased at bind time, so handle code is never specialized per type.
type legacyBlock[T any] struct {
	ctl control
	obj T
}
