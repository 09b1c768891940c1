package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"W", KeyW},
		{"w", KeyW},
		{" LeftShift ", KeyLeftShift},
		{"escape", KeyEscape},
		{"F5", KeyF5},
		{"0", Key0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeySuggestsClosestName(t *testing.T) {
	_, err := ParseKey("LeftShfit")
	require.ErrorIs(t, err, ErrUnknownKeyName)
	assert.Contains(t, err.Error(), `did you mean "LeftShift"`)

	_, err = ParseKey("definitely-not-a-key")
	require.ErrorIs(t, err, ErrUnknownKeyName)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "LeftControl", KeyLeftControl.String())
	assert.Equal(t, "Key(7)", Key(7).String())
	assert.Equal(t, "Right", MouseRight.String())
}
