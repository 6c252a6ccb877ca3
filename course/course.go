// Package course holds the record type stored in the course database.
package course

import "fmt"

// Course - Represents one course record.
// Courses are ordered by CRN only, and the CRN is fixed once the course is created since it is also the hash input.
// No validation is done on any field, empty strings stand in for an absent room or instructor.
type Course struct {
	id         string
	crn        int
	credits    int
	room       string
	instructor string
}

// New - Returns a pointer to a new Course
func New(id string, crn, credits int, room, instructor string) *Course {
	return &Course{
		id:         id,
		crn:        crn,
		credits:    credits,
		room:       room,
		instructor: instructor,
	}
}

// ID - Returns the course identifier, e.g. CMSC100
func (C *Course) ID() string { return C.id }

// SetID - Sets the course identifier
func (C *Course) SetID(id string) { C.id = id }

// CRN - Returns the course reference number
func (C *Course) CRN() int { return C.crn }

// Credits - Returns the number of credits
func (C *Course) Credits() int { return C.credits }

// SetCredits - Sets the number of credits
func (C *Course) SetCredits(credits int) { C.credits = credits }

// Room - Returns the room
func (C *Course) Room() string { return C.room }

// SetRoom - Sets the room
func (C *Course) SetRoom(room string) { C.room = room }

// Instructor - Returns the instructor name
func (C *Course) Instructor() string { return C.instructor }

// SetInstructor - Sets the instructor name
func (C *Course) SetInstructor(instructor string) { C.instructor = instructor }

// CompareTo - Compares two courses by CRN.
// It returns 0 if the CRNs are equal, -1 if this CRN is smaller and 1 if it is greater.
func (C *Course) CompareTo(other *Course) int {
	switch {
	case C.crn == other.crn:
		return 0
	case C.crn < other.crn:
		return -1
	default:
		return 1
	}
}

// Update - Overwrites every field but the CRN with the values from other
func (C *Course) Update(other *Course) {
	C.id = other.id
	C.credits = other.credits
	C.room = other.room
	C.instructor = other.instructor
}

// Copy - Returns a detached copy of the course
func (C *Course) Copy() Course {
	return *C
}

// String - Renders the course as Course:<id> CRN:<crn> Credits:<credits> Instructor:<instructor> Room:<room>
func (C Course) String() string {
	return fmt.Sprintf("Course:%s CRN:%d Credits:%d Instructor:%s Room:%s", C.id, C.crn, C.credits, C.instructor, C.room)
}
