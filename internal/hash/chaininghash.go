package hash

// ChainingHashAlgorithm - The internally used bucket selection algorithm. It maps a CRN to a bucket by
// bucket = crn mod tableSize, where tableSize is normally a 4k+3 prime as given by FourKPlusThree.
// A negative remainder is folded back into range by adding tableSize.
type ChainingHashAlgorithm struct {
	tableSize int64
}

// NewChainingHashAlgorithm - Returns a pointer to a new ChainingHashAlgorithm instance
func NewChainingHashAlgorithm(tableSize int64) *ChainingHashAlgorithm {
	ha := &ChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The size is taken as is, any prime search has to be done by the caller.
//   - tableSize is the number of buckets the table will address
func (C *ChainingHashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// HashFunc1 - Given a CRN it generates an index (bucket) between 0 and table size - 1
func (C *ChainingHashAlgorithm) HashFunc1(crn int) int64 {
	if C.tableSize <= 0 {
		return -1
	}

	h := int64(crn) % C.tableSize
	if h < 0 {
		h += C.tableSize
	}

	return h
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *ChainingHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}
