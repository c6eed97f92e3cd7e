package kernel_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDFromString_RouteParameter(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		want    string
		wantErr bool
	}{
		{name: "canonical", param: "550e8400-e29b-41d4-a716-446655440000", want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "bare hex", param: "550e8400e29b41d4a716446655440000", want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "legacy numeric id", param: "4", wantErr: true},
		{name: "empty", param: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.param)

			if tt.wantErr {
				require.ErrorContains(t, err, "invalid UUID format")
				assert.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestUUIDFromBytes_StoredIdentifier(t *testing.T) {
	t.Run("round trip through the stored column", func(t *testing.T) {
		id := kernel.NewUUID()
		stored := id.Bytes()

		loaded, err := kernel.UUIDFromBytes(stored[:])

		require.NoError(t, err)
		assert.True(t, loaded.IsEqual(id))
	})

	t.Run("nil identifier is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("truncated identifier is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		require.ErrorContains(t, err, "invalid UUID format")
	})
}

func TestUUID_IsZero(t *testing.T) {
	// An anonymous employee and a form result that ran no command both carry the zero id.
	var anonymous kernel.UUID

	assert.True(t, anonymous.IsZero())
	require.ErrorIs(t, anonymous.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.False(t, kernel.NewUUID().IsZero())
	assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
}
