package sorting

import (
	"github.com/roster-hub/student-roster/internal/domain/shared"
	"github.com/roster-hub/student-roster/internal/domain/student"
)

// The name index folds names onto a 27-symbol alphabet: 'a'..'z' at indices
// 0..25 and the space symbol at 26, so space orders after 'z'. Uppercase
// letters are lowercased; any character outside the alphabet folds to the
// space symbol.
const alphabetSize = 27

const spaceSymbol = alphabetSize - 1

func symbolIndex(c byte) int {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c >= 'a' && c <= 'z' {
		return int(c - 'a')
	}
	return spaceSymbol
}

type indexNode struct {
	children [alphabetSize]*indexNode

	// records terminating exactly at this node, in insertion order.
	records []*student.Record
}

// NameIndex is a transient prefix tree over folded record names. It is built
// per sort request from a snapshot, holds non-owning references, and is
// discarded after the sorted sequence is collected.
type NameIndex struct {
	root *indexNode
	size int
}

// NewNameIndex creates an empty name index.
func NewNameIndex() *NameIndex {
	return &NameIndex{root: &indexNode{}}
}

// Insert adds a record under its folded name. Records inserted with
// identical folded names accumulate at the same terminal node in insertion
// order.
func (ix *NameIndex) Insert(rec *student.Record) {
	cur := ix.root
	name := rec.Name()
	for i := 0; i < len(name); i++ {
		idx := symbolIndex(name[i])
		if cur.children[idx] == nil {
			cur.children[idx] = &indexNode{}
		}
		cur = cur.children[idx]
	}
	cur.records = append(cur.records, rec)
	ix.size++
}

// Collect returns all indexed records in folded-name lexicographic order.
// The traversal is pre-order: records terminating at a node are emitted
// before any of its children, children in increasing symbol order.
func (ix *NameIndex) Collect() []*student.Record {
	out := make([]*student.Record, 0, ix.size)
	return collect(ix.root, out)
}

func collect(n *indexNode, out []*student.Record) []*student.Record {
	if n == nil {
		return out
	}
	out = append(out, n.records...)
	for i := 0; i < alphabetSize; i++ {
		if n.children[i] != nil {
			out = collect(n.children[i], out)
		}
	}
	return out
}

// ByName returns a new slice with the snapshot's records in case-insensitive
// lexicographic name order; records with identical folded names keep their
// snapshot order. The input slice is not modified.
//
// A collected sequence shorter or longer than the input indicates a defect
// in the index and is reported as an error, never silently truncated.
func ByName(recs []*student.Record) ([]*student.Record, error) {
	if len(recs) == 0 {
		return nil, nil
	}

	ix := NewNameIndex()
	for _, rec := range recs {
		ix.Insert(rec)
	}

	out := ix.Collect()
	if len(out) != len(recs) {
		return nil, shared.NewDomainError("sorting", "ByName", shared.ErrInvalidState,
			"name index dropped or duplicated records")
	}
	return out, nil
}
