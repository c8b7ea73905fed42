package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePoints(t *testing.T) {
	assert.NoError(t, ValidatePoints(0, 100))
	assert.NoError(t, ValidatePoints(100, 100))
	assert.NoError(t, ValidatePoints(73, 100))

	assert.Error(t, ValidatePoints(-1, 100))
	assert.Error(t, ValidatePoints(101, 100))
	assert.Error(t, ValidatePoints(105, 100))

	// Zero-point assignments only accept a zero grade.
	assert.NoError(t, ValidatePoints(0, 0))
	assert.Error(t, ValidatePoints(1, 0))
}
