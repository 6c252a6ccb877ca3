package coursedb

import (
	"errors"
	"fmt"
	"github.com/gostonefire/coursedb/course"
	"github.com/gostonefire/coursedb/dberr"
	"github.com/gostonefire/coursedb/internal/chain"
	"github.com/gostonefire/coursedb/internal/file"
	"io"
)

// LoadResult - Counts from a bulk load
//   - Lines is the number of lines read
//   - Added is the number of lines handed to Add, updates of existing CRNs included
//   - Skipped is the number of malformed lines that were reported and skipped
type LoadResult struct {
	Lines   int
	Added   int
	Skipped int
}

// StoreStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of courses stored
//   - UsedBuckets is the number of buckets holding at least one course
//   - LongestChain is the length of the longest chain
//   - BucketDistribution is the number of courses stored in each bucket
type StoreStat struct {
	Records            int64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// Add - Adds a course, or updates the course already stored with the same CRN.
// Adding is never an error from the caller's point of view, any failure is sent to the Reporter.
//   - id is the course identifier
//   - crn is the course reference number, the key of the course
//   - credits is the number of credits
//   - room is the room, may be empty
//   - instructor is the instructor name, may be empty
func (S *Store) Add(id string, crn, credits int, room, instructor string) {
	if S.table == nil {
		S.report().Error(dberr.UninitializedStructure{})
		return
	}

	err := S.table.Add(course.New(id, crn, credits, room, instructor))
	if err != nil {
		S.report().Error(fmt.Errorf("error while adding course %s (CRN %d): %w", id, crn, err))
	}
}

// Get - Gets the course with the given CRN.
// A miss is sent to the Reporter as a dberr.NoRecordFound.
//   - crn is the course reference number
//
// It returns:
//   - record is a copy of the stored course, changing it does not change the store
//   - found is false if no course with the CRN exists
func (S *Store) Get(crn int) (record course.Course, found bool) {
	if S.table == nil {
		S.report().Error(dberr.UninitializedStructure{})
		return
	}

	record, err := S.table.Get(crn)
	if err != nil {
		if errors.Is(err, dberr.NoRecordFound{}) {
			S.report().Warn(err)
		} else {
			S.report().Error(fmt.Errorf("error while retrieving course: %w", err))
		}
		record = course.Course{}
		return
	}

	found = true

	return
}

// ReadFile - Bulk loads courses from a file, see Load for the line format.
//   - name is the file name (including path)
//
// It returns:
//   - result is a LoadResult with line counts
//   - err is of type dberr.SourceMissing if the file does not exist, or a standard error if it could not be read
func (S *Store) ReadFile(name string) (result LoadResult, err error) {
	f, err := file.OpenSource(name)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	result, err = S.Load(f)
	if err != nil {
		err = fmt.Errorf("error while loading %s: %w", name, err)
	}

	return
}

// Load - Bulk loads courses from r, one course per line as: id crn credits room instructor
// Fields are separated by whitespace and anything after the fifth field is ignored. A line with fewer fields, or
// where crn or credits is not an integer, is sent to the Reporter as a dberr.MalformedInput and skipped.
// Every well-formed line goes through Add, so a CRN seen twice ends up with the values from its last line.
//
// It returns:
//   - result is a LoadResult with line counts
//   - err is a standard error if r could not be read, malformed lines never give an error
func (S *Store) Load(r io.Reader) (result LoadResult, err error) {
	if S.table == nil {
		S.report().Error(dberr.UninitializedStructure{})
		return
	}

	err = file.ReadLines(r, func(lineNo int, line string) error {
		result.Lines++

		fields, lineErr := file.LineToFields(lineNo, line)
		if lineErr != nil {
			S.report().Warn(lineErr)
			result.Skipped++
			return nil
		}

		S.Add(fields.ID, fields.CRN, fields.Credits, fields.Room, fields.Instructor)
		result.Added++

		return nil
	})

	return
}

// ShowAll - Returns the rendered form of every stored course.
// The order follows the internal bucket layout and is only stable for one store.
func (S *Store) ShowAll() (courses []string) {
	if S.table == nil {
		S.report().Error(dberr.UninitializedStructure{})
		return
	}

	return S.table.ShowAll()
}

// Stat - Walks through every bucket and produces a StoreStat struct.
//   - includeDistribution set to true will include a slice of length table size with number of courses per bucket, false will set StoreStat.BucketDistribution to nil.
func (S *Store) Stat(includeDistribution bool) (storeStat StoreStat) {
	if S.table == nil {
		S.report().Error(dberr.UninitializedStructure{})
		return
	}

	tableSize := S.table.GetStorageParameters().TableSize
	if includeDistribution {
		storeStat.BucketDistribution = make([]int64, tableSize)
	}

	var iter *chain.Records
	var err error
	for i := int64(0); i < tableSize; i++ {
		iter, err = S.table.GetBucket(i)
		if err != nil {
			S.report().Error(fmt.Errorf("error while reading bucket %d: %w", i, err))
			return
		}

		n := int64(iter.Len())
		storeStat.Records += n
		if n > 0 {
			storeStat.UsedBuckets++
		}
		if n > storeStat.LongestChain {
			storeStat.LongestChain = n
		}
		if includeDistribution {
			storeStat.BucketDistribution[i] = n
		}
	}

	return
}
