package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := New(KindValidation, "invalid input")
	assert.Equal(t, "invalid input", err.Error())

	wrapped := Wrap(err, KindInternal, "failed to validate")
	assert.Equal(t, "failed to validate: invalid input", wrapped.Error())
	assert.True(t, errors.Is(wrapped, err))
}

func TestGetKind(t *testing.T) {
	assert.Equal(t, KindValidation, GetKind(New(KindValidation, "x")))
	assert.Equal(t, KindIO, GetKind(Wrapf(fmt.Errorf("boom"), KindIO, "read %s", "f")))
	assert.Equal(t, KindUnknown, GetKind(fmt.Errorf("plain")))
	assert.Nil(t, Wrap(nil, KindIO, "nothing"))
}

func TestGetAttributes_ThroughOuterWrap(t *testing.T) {
	inner := MissingInput("SUBNET_LAN")
	err := fmt.Errorf("resolve: %w", Wrap(inner, KindInternal, "load router"))

	assert.Equal(t, "resolve: load router: SUBNET_LAN is not set", err.Error())
	assert.Equal(t, KindInternal, GetKind(err))
	assert.Equal(t, "SUBNET_LAN", Field(err))
	assert.True(t, errors.Is(err, inner))
}

func TestMissingInput(t *testing.T) {
	err := MissingInput("INTERFACE_LAN")
	assert.Equal(t, "INTERFACE_LAN is not set", err.Error())
	assert.Equal(t, KindMissing, GetKind(err))
	assert.Equal(t, "INTERFACE_LAN", Field(err))
}

func TestInvalidFormat(t *testing.T) {
	reason := fmt.Errorf("invalid port number: %q", "abc")
	err := InvalidFormat("TCP_ACCEPT_LAN", "abc", reason)

	assert.Equal(t, `TCP_ACCEPT_LAN: invalid port number: "abc"`, err.Error())
	assert.Equal(t, KindValidation, GetKind(err))
	assert.True(t, errors.Is(err, reason))

	attrs := GetAttributes(err)
	assert.Equal(t, "TCP_ACCEPT_LAN", attrs["field"])
	assert.Equal(t, "abc", attrs["value"])
}

func TestList(t *testing.T) {
	var l List
	require.NoError(t, l.Err())
	assert.Equal(t, 0, l.Len())

	l.Add(MissingInput("A"))
	l.Add(nil)
	l.Add(MissingInput("B"))

	assert.Equal(t, 2, l.Len())
	require.Error(t, l.Err())

	parts := Split(l.Err())
	require.Len(t, parts, 2)
	assert.Equal(t, "A", Field(parts[0]))
	assert.Equal(t, "B", Field(parts[1]))
	assert.Equal(t, l.Errors(), parts)
}
