//go:build unit

package dberr

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestErrors_Is(t *testing.T) {
	t.Run("matches wrapped errors of the same kind", func(t *testing.T) {
		// Prepare
		notFound := fmt.Errorf("lookup: %w", NewNoRecordFound(42))
		malformed := fmt.Errorf("load: %w", NewMalformedInput(3, "a b", "expected 5 fields, got 2"))
		missing := fmt.Errorf("load: %w", NewSourceMissing("courses.txt"))

		// Execute and Check
		assert.True(t, errors.Is(notFound, NoRecordFound{}), "no record found")
		assert.True(t, errors.Is(malformed, MalformedInput{}), "malformed input")
		assert.True(t, errors.Is(missing, SourceMissing{}), "source missing")
		assert.False(t, errors.Is(notFound, SourceMissing{}), "different kinds do not match")
		assert.True(t, errors.Is(UninitializedStructure{}, UninitializedStructure{}), "uninitialized")
		assert.True(t, errors.Is(fmt.Errorf("add: %w", UninitializedStructure{msg: "no table"}), UninitializedStructure{}), "uninitialized with message")
		assert.False(t, errors.Is(UninitializedStructure{}, NoRecordFound{}), "uninitialized is not a miss")
	})
}

func TestErrors_Error(t *testing.T) {
	t.Run("has default and detailed messages", func(t *testing.T) {
		assert.Equal(t, "no record found", NoRecordFound{}.Error(), "default message")
		assert.Equal(t, "no record found for CRN 42", NewNoRecordFound(42).Error(), "detailed message")
		assert.Equal(t, "file not found: x.txt", NewSourceMissing("x.txt").Error(), "detailed message")
		assert.Equal(t, `incomplete course entry on line 2: too few fields: "a b"`, NewMalformedInput(2, "a b", "too few fields").Error(), "detailed message")
		assert.Equal(t, "course table is not initialized", UninitializedStructure{}.Error(), "default message")
	})
}
