package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "None", KindNone.String())
	assert.Equal(t, "KeyPressed", KindKeyPressed.String())
	assert.Equal(t, "MouseScrolled", KindMouseScrolled.String())
	assert.Equal(t, "Kind(200)", Kind(200).String())
}

func TestKind_Valid(t *testing.T) {
	assert.False(t, KindNone.Valid())
	assert.False(t, kindCount.Valid())
	for _, k := range Kinds() {
		assert.True(t, k.Valid(), k.String())
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 14)
	assert.Equal(t, KindWindowClose, kinds[0])
	assert.Equal(t, KindMouseScrolled, kinds[len(kinds)-1])
	assert.NotContains(t, kinds, KindNone)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("keypressed")
	require.NoError(t, err)
	assert.Equal(t, KindKeyPressed, k)

	k, err = ParseKind("WindowResize")
	require.NoError(t, err)
	assert.Equal(t, KindWindowResize, k)

	_, err = ParseKind("None")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = ParseKind("Explode")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
