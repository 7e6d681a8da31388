// Package arr provides standalone, generic helper functions for Go slices in
// the style of lodash's array functions.
//
// All helpers operate on plain []T values, never modify their input and
// always return a freshly allocated result:
//
//	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)             // → [[1 2] [3 4] [5]]
//	rest      := arr.DropWhile([]int{1, 2, 3, 4}, func(n, _ int, _ []int) bool { return n < 3 }) // → [3 4]
//	rows      := arr.Zip([]int{1, 2, 3}, []int{4, 5})           // → [[1 4] [2 5] [3 0]]
//	found     := arr.Includes([]string{"a", "b", "c"}, "a", 1)  // → false
//
// Predicates receive (item, index, items), matching the callback shape of
// the dynamic helpers in package collections, which are built on top of
// this package.
package arr
