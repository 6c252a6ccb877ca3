package file

import (
	"fmt"
	"github.com/gostonefire/coursedb/dberr"
	"strconv"
	"strings"
)

// FieldsPerLine - Number of whitespace separated fields making up one course on an input line
const FieldsPerLine int = 5

// Fields - Represents the fields of one course as read from an input line
type Fields struct {
	ID         string
	CRN        int
	Credits    int
	Room       string
	Instructor string
}

// LineToFields - Splits an input line on whitespace into course fields in the order id, crn, credits, room, instructor.
// Fields after the fifth are ignored.
//   - lineNo is the line number, used in error reporting only
//   - line is the raw input line
//
// It returns:
//   - fields is a Fields struct
//   - err is of type dberr.MalformedInput if there are too few fields or crn/credits are not integers
func LineToFields(lineNo int, line string) (fields Fields, err error) {
	tokens := strings.Fields(line)
	if len(tokens) < FieldsPerLine {
		err = dberr.NewMalformedInput(lineNo, line, fmt.Sprintf("expected %d fields, got %d", FieldsPerLine, len(tokens)))
		return
	}

	crn, err := strconv.Atoi(tokens[1])
	if err != nil {
		err = dberr.NewMalformedInput(lineNo, line, fmt.Sprintf("CRN %q is not an integer", tokens[1]))
		return
	}
	credits, err := strconv.Atoi(tokens[2])
	if err != nil {
		err = dberr.NewMalformedInput(lineNo, line, fmt.Sprintf("credits %q is not an integer", tokens[2]))
		return
	}

	fields = Fields{
		ID:         tokens[0],
		CRN:        crn,
		Credits:    credits,
		Room:       tokens[3],
		Instructor: tokens[4],
	}

	return
}
