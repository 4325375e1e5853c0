// Package roster provides the owning container for student records.
//
// The container is a hand-rolled singly linked list keyed by roll number.
// New records are prepended, so enumeration order is most-recent-first; the
// same order is used by Export and, downstream, by the name index tie-break.
// The roster assumes exclusive single-caller access; no internal locking.
package roster

import (
	"github.com/roster-hub/student-roster/internal/domain/shared"
	"github.com/roster-hub/student-roster/internal/domain/student"
)

type node struct {
	record *student.Record
	next   *node
}

// Roster owns a collection of student records. Records added to a roster
// belong to it; exported snapshots are non-owning views that must not be
// retained across a mutating call.
//
// Roll uniqueness is not enforced on Add: duplicate rolls may coexist and
// lookups return the first match in enumeration order.
type Roster struct {
	head  *node
	count int
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{}
}

// Add takes ownership of the record. Insertion is O(1): the record is
// prepended and becomes the first element in enumeration order.
func (r *Roster) Add(rec *student.Record) {
	r.head = &node{record: rec, next: r.head}
	r.count++
}

// ByRoll returns a mutable handle to the first record with the given roll
// number, or shared.ErrRollNotFound if no record matches. O(n).
func (r *Roster) ByRoll(roll string) (*student.Record, error) {
	for cur := r.head; cur != nil; cur = cur.next {
		if cur.record.Roll() == roll {
			return cur.record, nil
		}
	}
	return nil, shared.ErrRollNotFound
}

// Remove unlinks the first record with the given roll number and reports
// whether a match was found. O(n).
func (r *Roster) Remove(roll string) bool {
	var prev *node
	for cur := r.head; cur != nil; cur = cur.next {
		if cur.record.Roll() == roll {
			if prev != nil {
				prev.next = cur.next
			} else {
				r.head = cur.next
			}
			cur.record = nil
			r.count--
			return true
		}
		prev = cur
	}
	return false
}

// Export returns a snapshot of all records in enumeration order. The slice
// holds non-owning references: reordering it never affects the roster, but
// it is invalidated by any subsequent Remove of a referenced record.
func (r *Roster) Export() []*student.Record {
	if r.count == 0 {
		return nil
	}
	out := make([]*student.Record, 0, r.count)
	for cur := r.head; cur != nil; cur = cur.next {
		out = append(out, cur.record)
	}
	return out
}

// Each calls fn for every record in enumeration order until fn returns false.
func (r *Roster) Each(fn func(*student.Record) bool) {
	for cur := r.head; cur != nil; cur = cur.next {
		if !fn(cur.record) {
			return
		}
	}
}

// Len returns the current record count.
func (r *Roster) Len() int {
	return r.count
}
