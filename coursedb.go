// Package coursedb is an in memory course record store keyed on CRN (course reference number).
//
// Records live in a fixed size hash table using separate chaining, sized at creation to the smallest 4k+3 prime
// that covers the expected number of courses at a load factor of 1.5. The Store is a facade over the table that
// never panics and reports recoverable conditions (lookup misses, malformed input lines, an uninitialized store)
// through a Reporter instead of returning them. The one error the Store passes on is a missing bulk load file.
//
// A Store is not safe for concurrent use.
package coursedb

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/gostonefire/coursedb/course"
	"github.com/gostonefire/coursedb/hashfunc"
	"github.com/gostonefire/coursedb/internal/chain"
	"github.com/gostonefire/coursedb/internal/logger"
	"github.com/gostonefire/coursedb/internal/model"
	"github.com/gostonefire/coursedb/internal/storage/separatechaining"
	"github.com/rs/zerolog/log"
)

// DefaultExpectedRecords - Number of courses a store created by NewDefaultStore is sized for
const DefaultExpectedRecords int64 = 20

// Reporter - Receives the conditions the Store recovers from instead of returning them
type Reporter interface {
	// Warn - Called for conditions that are part of normal use, such as a lookup miss or a skipped input line
	Warn(err error)
	// Error - Called for conditions that point at a misuse or a fault, such as an uninitialized store
	Error(err error)
}

// NopReporter - A Reporter that discards everything
type NopReporter struct{}

// Warn - Discards err
func (NopReporter) Warn(error) {}

// Error - Discards err
func (NopReporter) Error(error) {}

// Table - Interface for the hash table implementation behind the Store
type Table interface {
	Add(record *course.Course) (err error)
	Get(crn int) (record course.Course, err error)
	ShowAll() (courses []string)
	GetBucket(bucketNo int64) (records *chain.Records, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// StoreInfo - Information structure containing some information about the store created
//   - ID is a random identifier of the store instance, handy when logging from several stores
//   - TableSize is the fixed number of buckets in the hash table
//   - ExpectedRecords is the number of records the table was sized for, zero when created with an explicit capacity
//   - LoadFactor is the load factor used for sizing, zero when created with an explicit capacity
//   - InternalAlgorithm is true if the internal crn mod table size bucket selection is used
type StoreInfo struct {
	ID                uuid.UUID
	TableSize         int64
	ExpectedRecords   int64
	LoadFactor        float64
	InternalAlgorithm bool
}

// Store - The main implementation struct
type Store struct {
	id       uuid.UUID
	table    Table
	reporter Reporter
}

// Option - Configures a Store at creation
type Option func(*storeOptions)

type storeOptions struct {
	reporter      Reporter
	loadFactor    float64
	hashAlgorithm hashfunc.HashAlgorithm
}

// WithReporter - Sets the Reporter receiving recovered conditions, default is a zerolog backed reporter
// writing to the global zerolog logger.
func WithReporter(reporter Reporter) Option {
	return func(o *storeOptions) { o.reporter = reporter }
}

// WithLoadFactor - Sets the load factor used for sizing the table, default is 1.5.
// It has no effect on NewStoreWithCapacity.
func WithLoadFactor(loadFactor float64) Option {
	return func(o *storeOptions) { o.loadFactor = loadFactor }
}

// WithHashAlgorithm - Sets a custom bucket selection algorithm following the hashfunc.HashAlgorithm interface
func WithHashAlgorithm(hashAlgorithm hashfunc.HashAlgorithm) Option {
	return func(o *storeOptions) { o.hashAlgorithm = hashAlgorithm }
}

// NewStore - Returns a new store with a table sized for a number of expected courses.
//   - expectedRecords is the number of courses the table should be sized for, it can not be negative
//   - opts are optional Option values
//
// It returns:
//   - store is a pointer to a Store struct
//   - storeInfo is a StoreInfo struct containing some data regarding the store created.
//   - err is a normal go Error which should be nil if everything went ok
func NewStore(expectedRecords int64, opts ...Option) (store *Store, storeInfo StoreInfo, err error) {
	o := applyOptions(opts)

	table, err := separatechaining.NewTable(model.TableConf{
		ExpectedRecords: expectedRecords,
		LoadFactor:      o.loadFactor,
		HashAlgorithm:   o.hashAlgorithm,
	})
	if err != nil {
		err = fmt.Errorf("error while creating course table: %w", err)
		return
	}

	store = &Store{id: uuid.New(), table: table, reporter: o.reporter}
	storeInfo = store.Info()

	return
}

// NewStoreWithCapacity - Returns a new store with a table of exactly capacity buckets, no prime search is done.
// This is mainly for tests where bucket placement has to be known.
//   - capacity is the number of buckets, it has to be higher than 0 (zero)
//   - opts are optional Option values
func NewStoreWithCapacity(capacity int64, opts ...Option) (store *Store, storeInfo StoreInfo, err error) {
	o := applyOptions(opts)

	table, err := separatechaining.NewTableWithCapacity(capacity, o.hashAlgorithm)
	if err != nil {
		err = fmt.Errorf("error while creating course table: %w", err)
		return
	}

	store = &Store{id: uuid.New(), table: table, reporter: o.reporter}
	storeInfo = store.Info()

	return
}

// NewDefaultStore - Returns a new store sized for DefaultExpectedRecords courses
func NewDefaultStore(opts ...Option) (store *Store, storeInfo StoreInfo, err error) {
	return NewStore(DefaultExpectedRecords, opts...)
}

// Info - Returns a StoreInfo struct describing the store, a zero StoreInfo if the store is not initialized
func (S *Store) Info() (storeInfo StoreInfo) {
	if S.table == nil {
		return
	}

	sp := S.table.GetStorageParameters()
	storeInfo = StoreInfo{
		ID:                S.id,
		TableSize:         sp.TableSize,
		ExpectedRecords:   sp.ExpectedRecords,
		LoadFactor:        sp.LoadFactor,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// report - Returns the reporter to use, falling back to the global zerolog logger
func (S *Store) report() Reporter {
	if S.reporter == nil {
		return logger.NewReporter(log.Logger)
	}
	return S.reporter
}

// applyOptions - Collects options into a storeOptions struct
func applyOptions(opts []Option) (o storeOptions) {
	for _, opt := range opts {
		opt(&o)
	}

	return
}
