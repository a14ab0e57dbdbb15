package soll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/soll"
	"github.com/tychoish/soll/cmp"
)

func TestConstruction(t *testing.T) {
	t.Run("Copy", func(t *testing.T) {
		list := soll.New(3, 1, 2)
		_, _ = list.Get(2)

		cp := list.Copy()
		assert.Equal(t, list.Slice(), cp.Slice())
		assert.Equal(t, list.AscendingSlice(), cp.AscendingSlice())
		assert.NotSame(t, list.Front(), cp.Front())
		require.NoError(t, cp.Validate())

		cp.PushBack(0)
		assert.Equal(t, 3, list.Len())
		assert.Equal(t, 4, cp.Len())
		assert.Equal(t, 1, list.Min().Value())

		var nilList *soll.List[int]
		assert.Nil(t, nilList.Copy())
	})
	t.Run("CopyRederivesTies", func(t *testing.T) {
		list := soll.New[int]()
		list.PushBack(5)
		list.PushFront(5)
		first := list.Back()
		assert.Same(t, list.Front(), list.Min())

		cp := list.Copy()
		// in the copy both values were pushed back in sequence order
		assert.Same(t, cp.Back(), cp.Min())
		assert.Same(t, first, list.Max())
	})
	t.Run("CopyKeepsOrdering", func(t *testing.T) {
		list := soll.NewFunc(cmp.Reverse(cmp.Native[int]), 1, 2, 3)
		cp := list.Copy()
		cp.PushBack(4)
		assert.Equal(t, []int{4, 3, 2, 1}, cp.AscendingSlice())
	})
	t.Run("Swap", func(t *testing.T) {
		one := soll.New(1, 2)
		two := soll.New(9, 8, 7)
		oneFront := one.Front()

		one.Swap(two)
		assert.Equal(t, []int{9, 8, 7}, one.Slice())
		assert.Equal(t, []int{1, 2}, two.Slice())
		assert.Equal(t, 3, one.Len())
		assert.Equal(t, 2, two.Len())
		assert.True(t, oneFront.In(two))
		assert.False(t, oneFront.In(one))
		require.NoError(t, one.Validate())
		require.NoError(t, two.Validate())

		one.Swap(one)
		assert.Equal(t, []int{9, 8, 7}, one.Slice())
	})
	t.Run("SwapEmpty", func(t *testing.T) {
		one := soll.New(1, 2)
		two := soll.New[int]()
		one.Swap(two)
		assert.Equal(t, 0, one.Len())
		assert.Nil(t, one.Min())
		assert.Equal(t, []int{1, 2}, two.Slice())
		require.NoError(t, one.Validate())
		require.NoError(t, two.Validate())
	})
	t.Run("Take", func(t *testing.T) {
		src := soll.New(5, 4, 6)
		elem := src.Front()
		dst := soll.New(1)
		old := dst.Front()

		dst.Take(src)
		assert.Equal(t, []int{5, 4, 6}, dst.Slice())
		assert.Equal(t, []int{4, 5, 6}, dst.AscendingSlice())
		assert.True(t, elem.In(dst))
		assert.False(t, old.Ok())

		assert.Equal(t, 0, src.Len())
		assert.Nil(t, src.Front())
		assert.Nil(t, src.Max())
		require.NoError(t, src.Validate())
		require.NoError(t, dst.Validate())

		src.PushBack(3)
		assert.Equal(t, []int{3}, src.Slice())
		assert.Equal(t, 3, dst.Len())
	})
	t.Run("TakeIntoZeroValue", func(t *testing.T) {
		src := soll.New("b", "a")
		dst := &soll.List[string]{}
		dst.Take(src)
		assert.Equal(t, []string{"a", "b"}, dst.AscendingSlice())

		dst.PushBack("c")
		assert.Equal(t, "c", dst.Max().Value())
		require.NoError(t, dst.Validate())
	})
	t.Run("Assign", func(t *testing.T) {
		src := soll.New(2, 3, 1)
		dst := soll.New(7, 7)
		old := dst.Front()

		dst.Assign(src)
		assert.Equal(t, []int{2, 3, 1}, dst.Slice())
		assert.Equal(t, []int{2, 3, 1}, src.Slice())
		assert.NotSame(t, src.Front(), dst.Front())
		assert.False(t, old.Ok())
		require.NoError(t, dst.Validate())

		dst.Assign(nil)
		assert.Equal(t, 0, dst.Len())

		dst.Assign(&soll.List[int]{})
		assert.Equal(t, 0, dst.Len())
		dst.PushBack(1)
		assert.Equal(t, 1, dst.Len())
	})
}
