//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"meeting-room-approval/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	errRoomMissing := errs.Kind("room missing", errs.ErrNotFound)

	t.Run("sentinel carries its kind", func(t *testing.T) {
		assert.True(t, errs.Is(errRoomMissing, errs.ErrNotFound))
		assert.False(t, errs.Is(errRoomMissing, errs.ErrConflict))
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		wrapped := errs.Wrap(errRoomMissing, "create meeting request")
		assert.True(t, errs.Is(wrapped, errRoomMissing))
		assert.True(t, errs.Is(wrapped, errs.ErrNotFound))
	})

	t.Run("plain errors are not classified", func(t *testing.T) {
		assert.False(t, errs.Is(errors.New("boom"), errs.ErrPersistence))
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
}

func TestMark(t *testing.T) {
	errTxBegin := errs.Kind("begin transaction", errs.ErrPersistence)
	cause := errors.New("connection refused")

	marked := errs.Mark(cause, errTxBegin)

	assert.True(t, errs.Is(marked, errTxBegin))
	assert.True(t, errs.Is(marked, errs.ErrPersistence))
	assert.True(t, errs.Is(marked, cause))
	assert.Equal(t, "connection refused", marked.Error())
}

func TestKindOf(t *testing.T) {
	errFull := errs.Kind("room is full", errs.ErrConflict)
	errOther := errs.Kind("room is closed", errs.ErrConflict)

	assert.Equal(t, errs.ErrConflict, errs.KindOf(errs.Wrap(errFull, "approve")))
	assert.Nil(t, errs.KindOf(errors.New("plain")))
	assert.False(t, errs.Is(errFull, errOther))
}
