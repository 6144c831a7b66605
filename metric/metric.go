// Package metric measures how far apart two labelings are.
package metric

// Wrong returns the number of positions at which a and b hold different
// labels. a and b are expected to have equal length; extra positions in the
// longer one are not counted.
func Wrong[T comparable](a, b []T) int {
	n := min(len(a), len(b))
	res := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			res++
		}
	}
	return res
}

// Mismatches returns the positions counted by Wrong, in ascending order.
func Mismatches[T comparable](a, b []T) []int {
	n := min(len(a), len(b))
	var res []int
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			res = append(res, i)
		}
	}
	return res
}
