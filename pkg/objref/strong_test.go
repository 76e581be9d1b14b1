/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objref_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/objref/pkg/objref"
)

func TestStrong_Empty(t *testing.T) {
	require := require.New(t)

	var empty objref.Strong[*simpleWidget]
	require.True(empty.IsEmpty())
	require.Nil(empty.Get())
	require.Zero(empty.RefCount())

	// releasing an empty handle is a no-op
	empty.Release()
	require.True(empty.IsEmpty())
}

func TestStrong_New(t *testing.T) {
	require := require.New(t)

	ptr := objref.New(func(self objref.Strong[*simpleWidget]) {
		self.Get().data = "Hello World"
	})
	require.False(ptr.IsEmpty())
	require.Equal("Hello World", ptr.Get().data)
	require.Equal(1, ptr.RefCount())

	ptr.Release()
	require.True(ptr.IsEmpty())
}

func TestStrong_Clone(t *testing.T) {
	require := require.New(t)

	ptr := objref.New(func(self objref.Strong[*simpleWidget]) {
		self.Get().data = "CopyTest"
	})
	require.Equal(1, ptr.RefCount())

	clone := ptr.Clone()
	require.Equal(ptr.RefCount(), clone.RefCount())
	require.Equal(2, clone.RefCount())
	require.Equal("CopyTest", clone.Get().data)

	clone.Release()
	require.Equal(1, ptr.RefCount())
	ptr.Release()
}

func TestStrong_Move(t *testing.T) {
	require := require.New(t)

	ptr := objref.New(func(self objref.Strong[*simpleWidget]) {
		self.Get().data = "MoveTest"
	})
	require.Equal(1, ptr.RefCount())

	moved := ptr.Move()
	require.True(ptr.IsEmpty())
	require.Equal(1, moved.RefCount())
	require.Equal("MoveTest", moved.Get().data)

	moved.Release()
}

func TestStrong_Assign(t *testing.T) {
	require := require.New(t)
	freed := 0

	ptr := objref.New(func(self objref.Strong[*simpleWidget]) {
		self.Get().data = "AssignTest"
	})
	discarded := objref.New(func(self objref.Strong[*freeCounter]) {
		self.Get().freed = &freed
	})
	ptr2 := objref.New(func(self objref.Strong[*simpleWidget]) {
		self.Get().data = "DiscardedMessage"
	})

	ptr2.Assign(ptr)
	require.Equal(ptr.RefCount(), ptr2.RefCount())
	require.Equal(2, ptr2.RefCount())
	require.Equal("AssignTest", ptr2.Get().data)
	require.True(ptr.Equals(ptr2))

	// assigning over the only reference destroys the old object
	discarded.Assign(objref.Strong[*freeCounter]{})
	require.Equal(1, freed)
	require.True(discarded.IsEmpty())

	ptr2.Release()
	ptr.Release()
}

func TestStrong_MoveAssign(t *testing.T) {
	require := require.New(t)

	ptr := objref.New(func(self objref.Strong[*simpleWidget]) {
		self.Get().data = "MoveAssignTest"
	})
	ptr2 := objref.New(func(self objref.Strong[*simpleWidget]) {
		self.Get().data = "DiscardedMessage"
	})

	ptr2.Release()
	ptr2 = ptr.Move()

	require.True(ptr.IsEmpty())
	require.Equal(1, ptr2.RefCount())
	require.Equal("MoveAssignTest", ptr2.Get().data)

	ptr2.Release()
}

func TestStrong_SelfAssign(t *testing.T) {
	require := require.New(t)
	freed := 0

	ptr := objref.New(func(self objref.Strong[*freeCounter]) {
		self.Get().freed = &freed
	})

	ptr.Assign(ptr)
	require.False(ptr.IsEmpty())
	require.Equal(1, ptr.RefCount())
	require.Zero(freed)

	ptr.Release()
	require.Equal(1, freed)
}

func TestStrong_SelfSwap(t *testing.T) {
	require := require.New(t)

	vec := []objref.Strong[*simpleWidget]{
		objref.New(func(self objref.Strong[*simpleWidget]) {
			self.Get().data = "SelfMove"
		}),
	}
	vec[0].Swap(&vec[len(vec)-1])

	ptr := &vec[0]
	require.Equal(1, ptr.RefCount())
	require.Equal("SelfMove", ptr.Get().data)

	ptr.Release()
}

func TestStrong_Swap(t *testing.T) {
	require := require.New(t)

	a := objref.New(func(self objref.Strong[*simpleWidget]) { self.Get().data = "a" })
	b := objref.New(func(self objref.Strong[*simpleWidget]) { self.Get().data = "b" })

	a.Swap(&b)
	require.Equal("b", a.Get().data)
	require.Equal("a", b.Get().data)
	require.Equal(1, a.RefCount())
	require.Equal(1, b.RefCount())

	a.Release()
	b.Release()
}

func TestStrong_Equality(t *testing.T) {
	require := require.New(t)

	ptr1 := objref.New(func(self objref.Strong[*simpleWidget]) { self.Get().data = "1" })
	ptr2 := objref.New(func(self objref.Strong[*simpleWidget]) { self.Get().data = "2" })

	require.True(ptr1.Equals(ptr1))
	require.False(ptr1.Equals(ptr2))

	clone := ptr1.Clone()
	require.True(clone.Equals(ptr1))
	clone.Release()

	var empty objref.Strong[*simpleWidget]
	require.True(empty.Equals(objref.Strong[*simpleWidget]{}))
	require.False(ptr1.Equals(empty))

	ptr1.Release()
	ptr2.Release()
}
