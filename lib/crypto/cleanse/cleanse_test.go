// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package cleanse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*13 + 1)
	}
	return b
}

func Test_Cleanse(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 31, 32, 1000} {
		b := filled(n)

		Cleanse(b)

		assert.Equal(t, make([]byte, n), b, "length %d", n)
	}
}

func Test_Cleanse_nil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { Cleanse(nil) })
}

func Test_Cleanse_subslice(t *testing.T) {
	t.Parallel()

	b := filled(64)
	Cleanse(b[16:48])

	assert.Equal(t, filled(64)[:16], b[:16])
	assert.Equal(t, make([]byte, 32), b[16:48])
	assert.Equal(t, filled(64)[48:], b[48:])
}

func Test_CleanseAll(t *testing.T) {
	t.Parallel()

	a, b := filled(32), filled(64)

	CleanseAll(a, nil, b)

	assert.Equal(t, make([]byte, 32), a)
	assert.Equal(t, make([]byte, 64), b)
}

func Test_SecureBuffer(t *testing.T) {
	t.Parallel()

	buf := NewSecureBuffer(32)
	require.Equal(t, 32, buf.Len())
	raw := buf.Bytes()
	copy(raw, filled(32))

	buf.Close()

	assert.Equal(t, make([]byte, 32), raw)
	assert.Zero(t, buf.Len())
	assert.NotPanics(t, buf.Close)
}

func Test_SecureBuffer_wipesOnErrorPath(t *testing.T) {
	t.Parallel()

	var raw []byte
	errDummy := errors.New("dummy")

	useKey := func() error {
		buf := NewSecureBuffer(16)
		defer buf.Close()
		raw = buf.Bytes()
		copy(raw, filled(16))
		return errDummy
	}

	err := useKey()

	assert.ErrorIs(t, err, errDummy)
	assert.Equal(t, make([]byte, 16), raw)
}

func Test_NewSecureBuffer_negative(t *testing.T) {
	t.Parallel()

	buf := NewSecureBuffer(-1)

	assert.Zero(t, buf.Len())
}
