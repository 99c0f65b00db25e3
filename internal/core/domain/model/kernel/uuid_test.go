package kernel_test

import (
	"testing"

	"ruboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.False(t, id1.IsEqual(id2))
	assert.NotEqual(t, uuid.Nil.String(), id1.String())
}

func TestUUIDFromString(t *testing.T) {
	const canonical = "550e8400-e29b-41d4-a716-446655440000"

	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", canonical, false},
		{"braced", "{" + canonical + "}", false},
		{"urn", "urn:uuid:" + canonical, false},
		{"no hyphens", "550e8400e29b41d4a716446655440000", false},
		{"garbage", "not-a-uuid", true},
		{"empty", "", true},
		{"nil uuid", uuid.Nil.String(), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, canonical, id.String())
		})
	}
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("all zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID
	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	require.NoError(t, kernel.NewUUID().Validate())
}
