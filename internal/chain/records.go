package chain

import (
	"github.com/gostonefire/coursedb/course"
	"github.com/gostonefire/coursedb/dberr"
)

// Records - Is used to iterate over the courses of one chain, in insertion order.
type Records struct {
	chain []*course.Course
	next  int
}

// NewRecords - Returns a pointer to a new Records struct over the given chain, a nil chain gives an empty iterator
func NewRecords(chain []*course.Course) *Records {
	return &Records{chain: chain}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.next < len(R.chain)
}

// Next - Returns a copy of the next course in the chain.
// It returns:
//   - record is the next course.
//   - err is of type dberr.NoRecordFound if there are no more records when calling this function.
func (R *Records) Next() (record course.Course, err error) {
	if !R.HasNext() {
		err = dberr.NoRecordFound{}
		return
	}

	record = R.chain[R.next].Copy()
	R.next++

	return
}

// Len - Returns the total number of courses in the chain
func (R *Records) Len() int {
	return len(R.chain)
}
