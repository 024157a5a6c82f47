package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexErrorIncludesInput(t *testing.T) {
	t.Parallel()

	err := NewHexError("#12GG34", "expected 6 hex digits", nil)

	var hexErr *HexError
	require.ErrorAs(t, err, &hexErr)
	require.Equal(t, "#12GG34", hexErr.Input)
	require.Contains(t, err.Error(), "#12GG34")
	require.Contains(t, err.Error(), "expected 6 hex digits")
}

func TestHexErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("value out of range")
	err := NewHexError("#FFFFFFFFFFFFFFFFF", "too long", underlying)

	require.True(t, stdErrors.Is(err, underlying))
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("palette.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "palette.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "palette.yaml")
}

func TestParseErrorWithoutLineOmitsLineNumber(t *testing.T) {
	t.Parallel()

	err := NewParseError("palette.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: palette.yaml: no such file", err.Error())
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("colors[1].hex", "duplicate entry name", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colors[1].hex", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate entry name")
}
