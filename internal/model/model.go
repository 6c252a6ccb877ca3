package model

import "github.com/gostonefire/coursedb/hashfunc"

// StorageParameters - Represents parameters of a created table
type StorageParameters struct {
	ExpectedRecords   int64
	LoadFactor        float64
	TableSize         int64
	Records           int64
	InternalAlgorithm bool
}

// TableConf - Is a struct to be passed in the call to NewTable and contains configuration that affects
// the sizing and bucket selection of the table.
//   - ExpectedRecords is the number of records to size the table for
//   - LoadFactor is the ratio of expected records to buckets, zero means the default of 1.5
//   - HashAlgorithm is the hash function to use, nil means the internal crn mod table size
type TableConf struct {
	ExpectedRecords int64
	LoadFactor      float64
	HashAlgorithm   hashfunc.HashAlgorithm
}
