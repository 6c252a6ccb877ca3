package dberr

import "fmt"

// NoRecordFound - Custom error to inform that no record was found for a CRN
type NoRecordFound struct {
	CRN int
	msg string
}

// NewNoRecordFound - Returns a NoRecordFound error for the given CRN
func NewNoRecordFound(crn int) NoRecordFound {
	return NoRecordFound{CRN: crn, msg: fmt.Sprintf("no record found for CRN %d", crn)}
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Any NoRecordFound matches, regardless of CRN, so errors.Is(err, NoRecordFound{}) works
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// MalformedInput - Custom error to inform that an input line could not be turned into a record
type MalformedInput struct {
	LineNo int
	Line   string
	msg    string
}

// NewMalformedInput - Returns a MalformedInput error for the given line and reason
func NewMalformedInput(lineNo int, line, reason string) MalformedInput {
	return MalformedInput{
		LineNo: lineNo,
		Line:   line,
		msg:    fmt.Sprintf("incomplete course entry on line %d: %s: %q", lineNo, reason, line),
	}
}

// Error - Used to notify that an input line was skipped
func (M MalformedInput) Error() string {
	if M.msg == "" {
		return "malformed input"
	}
	return M.msg
}

// Is - Any MalformedInput matches
func (M MalformedInput) Is(target error) bool {
	_, ok := target.(MalformedInput)
	return ok
}

// SourceMissing - Custom error to inform that a bulk load source does not exist
type SourceMissing struct {
	Name string
	msg  string
}

// NewSourceMissing - Returns a SourceMissing error for the named source
func NewSourceMissing(name string) SourceMissing {
	return SourceMissing{Name: name, msg: fmt.Sprintf("file not found: %s", name)}
}

// Error - Used to notify that the source is missing
func (S SourceMissing) Error() string {
	if S.msg == "" {
		return "file not found"
	}
	return S.msg
}

// Is - Any SourceMissing matches
func (S SourceMissing) Is(target error) bool {
	_, ok := target.(SourceMissing)
	return ok
}

// UninitializedStructure - Custom error to inform that the underlying table was never created
type UninitializedStructure struct {
	msg string
}

// Error - Used to notify that the table is missing
func (U UninitializedStructure) Error() string {
	if U.msg == "" {
		return "course table is not initialized"
	}
	return U.msg
}

// Is - Any UninitializedStructure matches
func (U UninitializedStructure) Is(target error) bool {
	_, ok := target.(UninitializedStructure)
	return ok
}
