//go:build stress

package test

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/coursedb"
	"github.com/gostonefire/coursedb/dberr"
	"github.com/stretchr/testify/assert"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// countingReporter - Reporter counting warnings and errors
type countingReporter struct {
	warnings int
	errors   int
}

func (C *countingReporter) Warn(error)  { C.warnings++ }
func (C *countingReporter) Error(error) { C.errors++ }

func createAndStoreTestdata(amount int, crnOffset int, fileName string) error {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	w := bufio.NewWriter(f)
	for i := 0; i < amount; i++ {
		_, err = fmt.Fprintf(w, "CMSC%d %d %d RM%d Instructor%d\n", rand.Intn(1000), crnOffset+i, rand.Intn(5), rand.Intn(500), rand.Intn(100))
		if err != nil {
			return err
		}
	}

	return w.Flush()
}

func getTestdata(fileName string, store *coursedb.Store, reporter *countingReporter) error {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	var line string
	fr := bufio.NewReader(f)

	for {
		line, err = fr.ReadString('\n')
		if errors.Is(err, io.EOF) {
			break
		}
		fields := strings.Fields(line)
		crn, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}

		warnings := reporter.warnings
		c, found := store.Get(crn)
		if !found {
			return dberr.NewNoRecordFound(crn)
		}
		if reporter.warnings != warnings {
			return fmt.Errorf("hit reported as warning")
		}
		want := fmt.Sprintf("Course:%s CRN:%s Credits:%s Instructor:%s Room:%s", fields[0], fields[1], fields[2], fields[4], fields[3])
		if c.String() != want {
			return fmt.Errorf("got %s, want %s", c.String(), want)
		}
	}

	return nil
}

type TestCaseStressTest struct {
	name            string
	expectedRecords int64
	nTestdata       int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for table sizes", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{name: "sized for data", expectedRecords: 200000, nTestdata: 200000},
			{name: "undersized", expectedRecords: 1000, nTestdata: 100000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of courses when %s", test.name), func(t *testing.T) {
				// Prepare test data
				rand.Seed(123)
				dir := t.TempDir()
				file1 := filepath.Join(dir, "testdata_1.txt")
				file2 := filepath.Join(dir, "testdata_2.txt")
				err := createAndStoreTestdata(test.nTestdata, 0, file1)
				assert.NoError(t, err, "create testdata 1")
				// Second set overlaps the upper half of the first
				err = createAndStoreTestdata(test.nTestdata, test.nTestdata/2, file2)
				assert.NoError(t, err, "create testdata 2")

				// Prepare store
				reporter := &countingReporter{}
				store, info, err := coursedb.NewStore(test.expectedRecords, coursedb.WithReporter(reporter))
				assert.NoError(t, err, "create store")

				// Load both sets
				_, err = store.ReadFile(file1)
				assert.NoError(t, err, "load test set 1")
				_, err = store.ReadFile(file2)
				assert.NoError(t, err, "load test set 2")
				assert.Zero(t, reporter.warnings, "no warnings while loading")
				assert.Zero(t, reporter.errors, "no errors while loading")

				// Second set wins for overlapping CRNs
				err = getTestdata(file2, store, reporter)
				assert.NoError(t, err, "get test set 2")

				// Get stats
				stat := store.Stat(true)
				assert.Equal(t, int64(test.nTestdata+test.nTestdata/2), stat.Records, "correct number of records")
				assert.Equal(t, int(info.TableSize), len(stat.BucketDistribution), "one entry per bucket")
				assert.Len(t, store.ShowAll(), test.nTestdata+test.nTestdata/2, "show all lists every record")

				// Misses
				_, found := store.Get(-1)
				assert.False(t, found, "negative CRN not found")
				assert.Equal(t, 1, reporter.warnings, "miss reported")
			})
		}
	})
}
