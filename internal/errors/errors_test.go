package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.True(t, Is(deepWrapped, origErr))
}

func TestIndexError(t *testing.T) {
	err := NewIndexError("jump", 4, 3)
	assert.Equal(t, "jump: index out of range: index 4 not in [0, 2]", err.Error())
	assert.Equal(t, 4, err.Index())
	assert.Equal(t, 3, err.Count())
	assert.True(t, IsIndexOutOfRange(err))
	assert.True(t, IsIndexOutOfRange(Wrap(err, "pager")))
	assert.False(t, IsIndexOutOfRange(ErrNoPages))
}

func TestCheckIndex(t *testing.T) {
	assert.NoError(t, CheckIndex("op", 0, 1))
	assert.NoError(t, CheckIndex("op", 2, 3))
	assert.Error(t, CheckIndex("op", 3, 3))
	assert.Error(t, CheckIndex("op", -1, 3))
	assert.Error(t, CheckIndex("op", 0, 0))
}

func TestEmptyData(t *testing.T) {
	assert.True(t, IsEmptyData(ErrNoPages))
	assert.True(t, IsEmptyData(ErrNoTitles))
	assert.True(t, Is(Wrap(ErrNoTitles, "strip"), ErrNoTitles))
	assert.Equal(t, CountMismatch, KindOf(ErrCountMismatch))
}

func TestKindOfWrappedCause(t *testing.T) {
	assert.Equal(t, CountMismatch, KindOf(Wrapf(ErrCountMismatch, "%d pages, %d titles", 3, 2)))
	assert.True(t, IsEmptyData(Wrap(ErrNoPages, "pager")))
	assert.True(t, IsEmptyData(Wrap(Wrap(ErrNoTitles, "strip"), "gui")))
	assert.True(t, IsEmptyData(fmt.Errorf("build: %w", ErrNoPages)))

	cfgErr := NewConfigError("missing", "path", ConfigNotFound, nil)
	assert.Equal(t, ConfigNotFound, KindOf(Wrap(cfgErr, "load")))
	assert.True(t, IsInvalidConfig(Wrap(ErrInvalidConfig, "load")))

	assert.Equal(t, Unknown, KindOf(Wrap(New("plain"), "context")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "style", InvalidConfig, nil)
	assert.Equal(t, "invalid value: style", configErr.Error())
	assert.Equal(t, "style", configErr.Param())

	origErr := fmt.Errorf("unknown name")
	configErr = NewConfigError("invalid value", "style", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: style: unknown name", configErr.Error())
	assert.Equal(t, origErr, Unwrap(configErr))

	assert.True(t, IsInvalidConfig(configErr))
	assert.True(t, IsInvalidConfig(ErrInvalidConfig))
	assert.False(t, IsInvalidConfig(New("plain")))
	assert.False(t, IsInvalidConfig(NewConfigError("missing", "", ConfigNotFound, nil)))
}
