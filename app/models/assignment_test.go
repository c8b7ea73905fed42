package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionAssignments(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	past := &Assignment{ID: "a1", DueDate: now.Add(-24 * time.Hour)}
	future := &Assignment{ID: "a2", DueDate: now.Add(24 * time.Hour)}
	atNow := &Assignment{ID: "a3", DueDate: now}

	upcoming, missing := PartitionAssignments([]*Assignment{past, future, atNow}, now)

	require.Len(t, missing, 1)
	assert.Equal(t, "a1", missing[0].ID)

	// A due date equal to now is still submittable, so it is upcoming.
	require.Len(t, upcoming, 2)
	assert.Equal(t, "a2", upcoming[0].ID)
	assert.Equal(t, "a3", upcoming[1].ID)
}

func TestPartitionAssignmentsEmpty(t *testing.T) {
	upcoming, missing := PartitionAssignments(nil, time.Now())
	assert.Empty(t, upcoming)
	assert.Empty(t, missing)
}
