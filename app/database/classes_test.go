package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code, err := NewClassCode()
		require.NoError(t, err)
		assert.Len(t, code, ClassCodeLength)

		for _, ch := range code {
			assert.True(t, strings.ContainsRune(classCodeAlphabet, ch),
				"code %q contains %q outside the alphabet", code, ch)
		}
		seen[code] = true
	}

	// 100 draws from a 36^6 space should not collide.
	assert.Greater(t, len(seen), 95)
}
