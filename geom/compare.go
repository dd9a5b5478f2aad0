package geom

import "sort"

// ComparePoints is the lexicographic order used everywhere points are sorted:
// x first, then y, with differences within Epsilon treated as ties on that
// axis. Hull construction depends on this single ordering; mixing in exact
// float comparison loses determinism on near-collinear and duplicate input.
func ComparePoints(a, b Point) int {
	if !Equal(a.X, b.X) {
		if a.X < b.X {
			return -1
		}
		return 1
	}
	if !Equal(a.Y, b.Y) {
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	return 0
}

// sortedDistinct copies the input, stable-sorts it with ComparePoints, and
// collapses each run of comparator-equal points to its first occurrence. The
// stable sort plus dedupe makes the hull sweep independent of input
// multiplicity and ordering.
func sortedDistinct(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ComparePoints(sorted[i], sorted[j]) < 0
	})

	distinct := sorted[:0]
	for _, p := range sorted {
		if len(distinct) > 0 && ComparePoints(distinct[len(distinct)-1], p) == 0 {
			continue
		}
		distinct = append(distinct, p)
	}
	return distinct
}
