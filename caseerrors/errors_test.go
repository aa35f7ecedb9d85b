package caseerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *InputError
		want string
	}{
		{
			name: "non-string value",
			err:  NewInputError(123),
			want: "Input must be a string (got int)",
		},
		{
			name: "nil value",
			err:  &InputError{Message: "Input must be a string"},
			want: "Input must be a string",
		},
		{
			name: "empty message falls back",
			err:  &InputError{Value: 4.2},
			want: "invalid input (got float64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestInputError_Is(t *testing.T) {
	err := NewInputError([]string{"not", "a", "string"})

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrConvention))

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, []string{"not", "a", "string"}, inputErr.Value)
}

func TestInputError_Wrapped(t *testing.T) {
	// Sentinel matching must survive fmt.Errorf %w wrapping.
	err := fmt.Errorf("convert failed: %w", NewInputError(true))

	assert.True(t, errors.Is(err, ErrInvalidInput))

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, true, inputErr.Value)
}

func TestConventionError(t *testing.T) {
	err := &ConventionError{Name: "scream", Message: "valid values: camel, snake"}

	assert.True(t, errors.Is(err, ErrConvention))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "unknown convention: scream: valid values: camel, snake", err.Error())
}

func TestConventionError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ConventionError{Name: "x", Cause: cause}

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "boom")
}

func TestLimitError(t *testing.T) {
	tests := []struct {
		name string
		err  *LimitError
		want string
	}{
		{
			name: "limit and actual",
			err:  &LimitError{Resource: "nesting_depth", Limit: 100, Actual: 101},
			want: "resource limit exceeded: nesting_depth (limit: 100, actual: 101)",
		},
		{
			name: "limit only",
			err:  &LimitError{Resource: "input_bytes", Limit: 1048576},
			want: "resource limit exceeded: input_bytes (limit: 1048576)",
		},
		{
			name: "message only",
			err:  &LimitError{Message: "document too large"},
			want: "resource limit exceeded: document too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrLimit))
		})
	}
}
