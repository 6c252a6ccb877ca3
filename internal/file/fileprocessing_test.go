//go:build unit

package file

import (
	"errors"
	"fmt"
	"github.com/gostonefire/coursedb/dberr"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenSource(t *testing.T) {
	t.Run("opens an existing file", func(t *testing.T) {
		// Prepare
		name := filepath.Join(t.TempDir(), "courses.txt")
		err := os.WriteFile(name, []byte("CMSC100 12345 3 SW203 Sally\n"), 0644)
		assert.NoError(t, err, "write test file")

		// Execute
		f, err := OpenSource(name)

		// Check
		assert.NoError(t, err, "open file")
		assert.NotNil(t, f, "has file")
		_ = f.Close()
	})

	t.Run("source missing when file does not exist", func(t *testing.T) {
		// Execute
		_, err := OpenSource(filepath.Join(t.TempDir(), "nope.txt"))

		// Check
		assert.True(t, errors.Is(err, dberr.SourceMissing{}), "source missing")
	})

	t.Run("source missing when name is a directory", func(t *testing.T) {
		// Execute
		_, err := OpenSource(t.TempDir())

		// Check
		assert.True(t, errors.Is(err, dberr.SourceMissing{}), "source missing")
	})
}

func TestReadLines(t *testing.T) {
	t.Run("reads all lines with and without final line ending", func(t *testing.T) {
		for _, input := range []string{"a\r\nb\n\nc\n", "a\nb\n\nc"} {
			// Prepare
			var lines []string
			var numbers []int

			// Execute
			err := ReadLines(strings.NewReader(input), func(lineNo int, line string) error {
				numbers = append(numbers, lineNo)
				lines = append(lines, line)
				return nil
			})

			// Check
			assert.NoError(t, err, "read lines")
			assert.Equal(t, []string{"a", "b", "", "c"}, lines, "correct lines")
			assert.Equal(t, []int{1, 2, 3, 4}, numbers, "correct line numbers")
		}
	})

	t.Run("empty input gives no lines", func(t *testing.T) {
		// Prepare
		var calls int

		// Execute
		err := ReadLines(strings.NewReader(""), func(int, string) error { calls++; return nil })

		// Check
		assert.NoError(t, err, "read lines")
		assert.Zero(t, calls, "no calls")
	})

	t.Run("stops at first error from callback", func(t *testing.T) {
		// Prepare
		var calls int

		// Execute
		err := ReadLines(strings.NewReader("a\nb\nc\n"), func(lineNo int, line string) error {
			calls++
			if lineNo == 2 {
				return fmt.Errorf("stop")
			}
			return nil
		})

		// Check
		assert.Error(t, err)
		assert.Equal(t, 2, calls, "stopped at second line")
	})

	t.Run("returns reader errors", func(t *testing.T) {
		// Execute
		err := ReadLines(&failingReader{}, func(int, string) error { return nil })

		// Check
		assert.Error(t, err)
	})
}

// failingReader - Test reader that always fails
type failingReader struct{}

func (F *failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }
