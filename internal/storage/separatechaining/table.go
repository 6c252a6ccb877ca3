package separatechaining

import (
	"fmt"
	"github.com/gostonefire/coursedb/course"
	"github.com/gostonefire/coursedb/dberr"
	"github.com/gostonefire/coursedb/hashfunc"
	"github.com/gostonefire/coursedb/internal/chain"
	"github.com/gostonefire/coursedb/internal/hash"
	"github.com/gostonefire/coursedb/internal/model"
)

// Table - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// It holds a fixed number of buckets where each bucket is a chain of courses sharing the same bucket number.
// A nil chain means no course has ever hashed to that bucket. The table size never changes after creation.
//
// A Table is not safe for concurrent use, callers have to serialize calls to it.
type Table struct {
	buckets           [][]*course.Course
	tableSize         int64
	records           int64
	expectedRecords   int64
	loadFactor        float64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewTable - Returns a pointer to a new table sized for the expected number of records.
// The table size is the 4k+3 prime given by hash.FourKPlusThree, unless a custom hash algorithm reports
// another size after being told the computed one.
//   - tableConf is a model.TableConf struct providing configuration parameters affecting sizing and hashing
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTable(tableConf model.TableConf) (table *Table, err error) {
	if tableConf.ExpectedRecords < 0 {
		err = fmt.Errorf("expected records can not be negative, got %d", tableConf.ExpectedRecords)
		return
	}
	if tableConf.LoadFactor == 0 {
		tableConf.LoadFactor = hash.DefaultLoadFactor
	}
	if !hash.ValidLoadFactor(tableConf.LoadFactor) {
		err = fmt.Errorf("load factor must be a finite number higher than 0 (zero), got %f", tableConf.LoadFactor)
		return
	}
	if float64(tableConf.ExpectedRecords)/tableConf.LoadFactor > float64(hash.MaxTableSize) {
		err = fmt.Errorf("%d expected records at load factor %f needs more than %d buckets",
			tableConf.ExpectedRecords, tableConf.LoadFactor, hash.MaxTableSize)
		return
	}

	tableSize := hash.FourKPlusThree(tableConf.ExpectedRecords, tableConf.LoadFactor)

	table, err = newTable(tableSize, tableConf.HashAlgorithm)
	if err != nil {
		return
	}
	table.expectedRecords = tableConf.ExpectedRecords
	table.loadFactor = tableConf.LoadFactor

	return
}

// NewTableWithCapacity - Returns a pointer to a new table with exactly capacity buckets, no prime search is done.
//   - capacity is the number of buckets, it has to be higher than 0 (zero) and at most hash.MaxTableSize
//   - hashAlgorithm is an optional custom hash algorithm, nil gives the internal crn mod capacity
func NewTableWithCapacity(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (table *Table, err error) {
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero), got %d", capacity)
		return
	}
	if capacity > hash.MaxTableSize {
		err = fmt.Errorf("capacity can not be higher than %d, got %d", hash.MaxTableSize, capacity)
		return
	}

	return newTable(capacity, hashAlgorithm)
}

// newTable - Allocates buckets for the table size as reported by the hash algorithm
func newTable(tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (table *Table, err error) {
	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewChainingHashAlgorithm(tableSize)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(tableSize)
	}

	tableSize = hashAlgorithm.GetTableSize()
	if tableSize <= 0 {
		err = fmt.Errorf("hash algorithm reports an invalid table size: %d", tableSize)
		return
	}

	table = &Table{
		buckets:           make([][]*course.Course, tableSize),
		tableSize:         tableSize,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Add - Adds the course to the table, or updates the stored course with the same CRN.
// An update overwrites every field but the CRN and leaves the record count as is. The table keeps its own copy of
// the course, so later changes to record by the caller are not seen by the table.
//   - record is the course to add
//
// It returns:
//   - err is a standard error, if something went wrong
func (T *Table) Add(record *course.Course) (err error) {
	if record == nil {
		err = fmt.Errorf("can not add a nil course")
		return
	}

	bucketNo, err := T.getBucketNo(record.CRN())
	if err != nil {
		return
	}

	// A bucket never used gets a new chain
	if T.buckets[bucketNo] == nil {
		T.buckets[bucketNo] = []*course.Course{T.own(record)}
		T.records++
		return
	}

	// Update in place if the CRN is already in the chain
	for _, c := range T.buckets[bucketNo] {
		if c.CompareTo(record) == 0 {
			c.Update(record)
			return
		}
	}

	T.buckets[bucketNo] = append(T.buckets[bucketNo], T.own(record))
	T.records++

	return
}

// Get - Gets the course that corresponds to the given CRN.
//   - crn is the course reference number to look for
//
// It returns:
//   - record is a copy of the matching course if found
//   - err is either of type dberr.NoRecordFound or a standard error, if something went wrong
func (T *Table) Get(crn int) (record course.Course, err error) {
	bucketNo, err := T.getBucketNo(crn)
	if err != nil {
		return
	}

	iter := chain.NewRecords(T.buckets[bucketNo])
	for iter.HasNext() {
		record, err = iter.Next()
		if err != nil {
			return
		}
		if record.CRN() == crn {
			return
		}
	}

	record = course.Course{}
	err = dberr.NewNoRecordFound(crn)

	return
}

// ShowAll - Returns the rendered form of every stored course, bucket by bucket and in chain order within a bucket.
// The order depends on table size and insertion history and carries no other meaning.
func (T *Table) ShowAll() (courses []string) {
	courses = make([]string, 0, T.records)
	for _, bucket := range T.buckets {
		for _, c := range bucket {
			courses = append(courses, c.String())
		}
	}

	return
}

// GetBucket - Returns an iterator over the chain in the given bucket
//   - bucketNo is the bucket number, between 0 and table size - 1
func (T *Table) GetBucket(bucketNo int64) (records *chain.Records, err error) {
	if bucketNo < 0 || bucketNo >= T.tableSize {
		err = fmt.Errorf("bucket number %d is outside the table (0 - %d)", bucketNo, T.tableSize-1)
		return
	}

	records = chain.NewRecords(T.buckets[bucketNo])

	return
}

// TableSize - Returns the number of buckets
func (T *Table) TableSize() int64 {
	return T.tableSize
}

// Len - Returns the number of stored courses
func (T *Table) Len() int64 {
	return T.records
}

// GetStorageParameters - Returns a struct with storage parameters from the Table
func (T *Table) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		ExpectedRecords:   T.expectedRecords,
		LoadFactor:        T.loadFactor,
		TableSize:         T.tableSize,
		Records:           T.records,
		InternalAlgorithm: T.internalAlgorithm,
	}

	return
}

// getBucketNo - Returns the bucket number for a CRN, checking that the hash algorithm kept inside the table
func (T *Table) getBucketNo(crn int) (bucketNo int64, err error) {
	bucketNo = T.hashAlgorithm.HashFunc1(crn)
	if bucketNo < 0 || bucketNo >= T.tableSize {
		err = fmt.Errorf("received bucket number from hash algorithm is outside permitted range")
		return
	}

	return
}

// own - Returns a table owned copy of the course
func (T *Table) own(record *course.Course) *course.Course {
	c := record.Copy()
	return &c
}
