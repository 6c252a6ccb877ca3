package hashfunc

// HashAlgorithm - Interface that permits an implementation using the course store to supply a custom bucket
// selection algorithm suited for its particular distribution of CRNs.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the table is created. If a custom hash algorithm is supplied that already has a table size,
	// it will be overwritten by the table size the store was created with.
	//   - tableSize is the number of buckets (chains) the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given a CRN it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(crn int) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	GetTableSize() int64
}
