package main

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestResponseStatus(t *testing.T) {
	// No error: the status already written stands.
	assert.Equal(t, 200, responseStatus(nil, 200))
	assert.Equal(t, 302, responseStatus(nil, 302))

	// Fiber errors carry their own code; the pre-error response status
	// must not leak into the metrics.
	assert.Equal(t, 404, responseStatus(fiber.NewError(fiber.StatusNotFound, "missing"), 200))
	assert.Equal(t, 403, responseStatus(fiber.ErrForbidden, 200))

	// Plain errors become 500s, matching the ErrorHandler default.
	assert.Equal(t, 500, responseStatus(errors.New("boom"), 200))
}
