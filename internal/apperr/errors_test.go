package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapping(t *testing.T) {
	err := NotFound("recipe")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "recipe not found", err.Error())

	err = Invalid("rating must be between %d and %d", 1, 5)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Equal(t, "invalid input: rating must be between 1 and 5", err.Error())

	err = Conflict("receipt_number %q already recorded", "R-1")
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, `conflict: receipt_number "R-1" already recorded`, err.Error())
}
