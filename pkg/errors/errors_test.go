package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrInvalidMarker, "marker must be a single character")

	assert.Equal(t, ErrInvalidMarker, err.Code)
	assert.Equal(t, "[INVALID_MARKER] marker must be a single character", err.Error())
	assert.Nil(t, err.Wrapped)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrInvalidDepth, "unknown depth %q", "ultra")

	assert.Equal(t, `[INVALID_DEPTH] unknown depth "ultra"`, err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("read failed")
	err := Wrap(inner, ErrConfigLoad, "could not load config")

	assert.Equal(t, "[CONFIG_LOAD] could not load config: read failed", err.Error())
	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrConfigLoad, "not an error"))
	assert.Nil(t, Wrapf(nil, ErrConfigLoad, "not an error %d", 1))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := Newf(ErrInvalidMarker, "marker %q has %d characters", "&&", 2)

	assert.True(t, stderrors.Is(err, New(ErrInvalidMarker, "")))
	assert.False(t, stderrors.Is(err, New(ErrInvalidDepth, "")))
}

func TestIsErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(ErrConfigParse, "bad toml"))

	assert.True(t, IsErrorCode(wrapped, ErrConfigParse))
	assert.False(t, IsErrorCode(wrapped, ErrConfigLoad))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrConfigParse))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrInvalidDepth, GetErrorCode(New(ErrInvalidDepth, "bad")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrInvalidMarker, "bad marker").WithDetail("marker", "ab")

	assert.Equal(t, "ab", err.Details["marker"])
}
