// Package sorting reorders exported roster snapshots. All routines operate
// on the snapshot slice only; the roster's own ordering is never touched.
//
// Two orderings use an in-place partition-exchange sort (midpoint pivot,
// Hoare partitioning); the name ordering is produced by a transient prefix
// tree, see NameIndex.
package sorting

import (
	"strings"

	"github.com/roster-hub/student-roster/internal/domain/student"
)

// ByRoll sorts the snapshot in place by byte-wise lexicographic roll order.
// Not stable: records with equal rolls may reorder arbitrarily, which is
// acceptable since rolls are expected unique.
func ByRoll(recs []*student.Record) {
	quicksort(recs, 0, len(recs)-1, compareRoll)
}

// ByComponent sorts the snapshot in place by ascending value of the selected
// score component, ties broken by ascending lexicographic roll order so the
// result is a deterministic total order.
func ByComponent(recs []*student.Record, c student.Component) {
	quicksort(recs, 0, len(recs)-1, func(a, b *student.Record) int {
		va, vb := a.Marks().Component(c), b.Marks().Component(c)
		if va < vb {
			return -1
		}
		if va > vb {
			return 1
		}
		return compareRoll(a, b)
	})
}

func compareRoll(a, b *student.Record) int {
	return strings.Compare(a.Roll(), b.Roll())
}

// quicksort is a Hoare-partition exchange sort: midpoint pivot, symmetric
// pointer advance past equal elements, recursion on both partitions.
// Recursion depth is bounded by the element count.
func quicksort(recs []*student.Record, lo, hi int, cmp func(a, b *student.Record) int) {
	if lo >= hi {
		return
	}

	pivot := recs[(lo+hi)/2]
	i, j := lo, hi
	for i <= j {
		for cmp(recs[i], pivot) < 0 {
			i++
		}
		for cmp(recs[j], pivot) > 0 {
			j--
		}
		if i <= j {
			recs[i], recs[j] = recs[j], recs[i]
			i++
			j--
		}
	}

	if lo < j {
		quicksort(recs, lo, j, cmp)
	}
	if i < hi {
		quicksort(recs, i, hi, cmp)
	}
}
