//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"couponbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("unknown package")

	t.Run("mark is visible to the standard errors.Is", func(t *testing.T) {
		cause := errs.New("no package with id 9")
		err := errs.Mark(cause, sentinel)

		assert.True(t, errors.Is(err, sentinel))
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		assert.Same(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("marks stack", func(t *testing.T) {
		outer := errs.New("database operation failed")
		err := errs.Mark(errs.Mark(errs.New("boom"), sentinel), outer)

		assert.True(t, errors.Is(err, outer))
		assert.True(t, errors.Is(err, sentinel))
	})

	t.Run("unrelated sentinel does not match", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), sentinel)
		assert.False(t, errors.Is(err, errs.New("invalid redemption")))
	})
}
