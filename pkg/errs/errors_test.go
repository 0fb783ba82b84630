package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := Newf(ErrKindUnknown, "vehicle.parse_kind", "you can't have a %q vehicle", "tiger")

	assert.Contains(t, err.Error(), "ERR-KIND-001")
	assert.Contains(t, err.Error(), "vehicle.parse_kind")
	assert.Contains(t, err.Error(), `"tiger"`)
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrConfig, "config.load"))
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "config.load", errors.New("boom"))

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrValidation))
	assert.False(t, IsCode(errors.New("plain"), ErrConfig))

	// Works through wrapping
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsCode(wrapped, ErrConfig))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := New(ErrInternal, "op", cause)

	assert.ErrorIs(t, err, cause)
}

func TestUserMessage(t *testing.T) {
	err := Newf(ErrKindUnknown, "fleet.build", "bad kind").
		WithResource("fleet[2]").
		WithAdvice("valid kinds: car, bike, truck")

	msg := err.UserMessage()
	assert.Contains(t, msg, "ERR-KIND-001")
	assert.Contains(t, msg, "fleet[2]")
	assert.Contains(t, msg, "valid kinds")
}

func TestAsVroom(t *testing.T) {
	err := New(ErrFleetClosed, "fleet.close", errors.New("already closed"))

	require.NotNil(t, AsVroom(fmt.Errorf("wrap: %w", err)))
	assert.Nil(t, AsVroom(errors.New("plain")))
}
