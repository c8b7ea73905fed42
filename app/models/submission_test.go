package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimelinessFor(t *testing.T) {
	due := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, StatusOnTime, TimelinessFor(due.Add(-time.Hour), due))
	assert.Equal(t, StatusLate, TimelinessFor(due.Add(time.Second), due))

	// Exactly at the deadline counts as on time.
	assert.Equal(t, StatusOnTime, TimelinessFor(due, due))
}

func TestSubmissionIsGraded(t *testing.T) {
	s := &Submission{}
	assert.False(t, s.IsGraded())

	points := 85
	s.Points = &points
	assert.True(t, s.IsGraded())

	// A grade of zero still counts as graded.
	zero := 0
	s.Points = &zero
	assert.True(t, s.IsGraded())
}
