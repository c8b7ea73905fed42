package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSubmissionForStudentPropagatesErrors(t *testing.T) {
	db, err := sql.Open("postgres", "postgres://localhost/classcompanion_test?sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// A failing database must surface as an error, never as the
	// (nil, nil) "not submitted yet" result.
	submission, err := GetSubmissionForStudent(db, "a1", "s1")
	assert.Error(t, err)
	assert.Nil(t, submission)
	assert.NotErrorIs(t, err, sql.ErrNoRows)
}
