package elematch_test

import (
	"errors"
	"testing"

	"github.com/MartinCastroAlvarez/elematch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := elematch.Errorf(elematch.ENOTFOUND, "no element with id %q", "test")

	assert.Equal(t, elematch.ENOTFOUND, elematch.ErrorCode(err))
	assert.Equal(t, "no element with id \"test\"", elematch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, elematch.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, elematch.EINTERNAL, elematch.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, elematch.ErrorMessage(nil))
}
