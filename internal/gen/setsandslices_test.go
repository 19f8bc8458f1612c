//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnique(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, Unique([]string{"a", "a", "b", "a"}))
	require.Equal(t, []int{5, 10, 15}, Unique([]int{5, 10, 5, 15, 10}))
	require.Nil(t, Unique([]int{}))
}

func TestToSet(t *testing.T) {
	s := ToSet([]int{1, 2, 2, 3})
	require.Len(t, s, 3)
	_, ok := s[2]
	require.True(t, ok)
}

func TestIntMapKeysIntoSortedSlice(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}
	require.Equal(t, []int{1, 2, 3}, IntMapKeysIntoSortedSlice(m))
}

func TestFlatten(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4}, Flatten([][]int{{1, 2}, {3}, {4}}))
	require.Nil(t, Flatten([][]int{}))
}
