package models

// Role defines the two account types in the system.
type Role string

const (
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// SubmissionStatus defines the timeliness of a submission. It is computed
// once when the submission is stored and is never recomputed, so a later
// due-date edit does not change it.
type SubmissionStatus string

const (
	StatusOnTime SubmissionStatus = "ON_TIME"
	StatusLate   SubmissionStatus = "LATE"
)
