// SPDX-License-Identifier: MIT
// Package: fakebackend/backend
//
// helpers.go — copy helpers for deep clones.

package backend

// cloneSlice copies a slice of values; nil stays nil.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)

	return out
}

func cloneStrings(s []string) []string { return cloneSlice(s) }

// cloneIntLists copies both levels of a [][]int.
func cloneIntLists(s [][]int) [][]int {
	if s == nil {
		return nil
	}
	out := make([][]int, len(s))
	for i, row := range s {
		out[i] = cloneSlice(row)
	}

	return out
}

// uniqueStrings copies s keeping the first occurrence of each value.
func uniqueStrings(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, v := range s {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
