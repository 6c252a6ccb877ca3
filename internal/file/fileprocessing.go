package file

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/coursedb/dberr"
	"io"
	"io/fs"
	"os"
	"strings"
)

// OpenSource - Opens a bulk load file for reading.
// It returns an error of type dberr.SourceMissing if the file does not exist, or if it is a directory.
func OpenSource(name string) (file *os.File, err error) {
	stat, err := os.Stat(name)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && stat.IsDir()) {
		err = dberr.NewSourceMissing(name)
		return
	}
	if err != nil {
		err = fmt.Errorf("error while checking file %s: %w", name, err)
		return
	}

	file, err = os.OpenFile(name, os.O_RDONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while opening file %s: %w", name, err)
		return
	}

	return
}

// ReadLines - Reads r line by line and calls fn with the 1-based line number and the line stripped of its line ending.
// A last line without line ending is also processed. Reading stops at the first error from fn.
func ReadLines(r io.Reader, fn func(lineNo int, line string) error) (err error) {
	var line string
	var lineNo int
	fr := bufio.NewReader(r)

	for {
		line, err = fr.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			err = fmt.Errorf("error while reading line %d: %w", lineNo+1, err)
			return
		}
		eof := err != nil
		err = nil

		// Nothing after the last line ending
		if eof && line == "" {
			return
		}

		lineNo++
		err = fn(lineNo, strings.TrimRight(line, "\n\r"))
		if err != nil || eof {
			return
		}
	}
}
