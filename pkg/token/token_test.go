package token

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Format(t *testing.T) {
	code, err := New()

	require.NoError(t, err)
	assert.Len(t, code, 32)

	raw, err := hex.DecodeString(code)
	require.NoError(t, err)
	assert.Len(t, raw, 16, "codes carry 128 bits of entropy")
}

func TestNew_NoCollisions(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		code, err := New()
		require.NoError(t, err)

		_, dup := seen[code]
		require.False(t, dup, "duplicate code generated")
		seen[code] = struct{}{}
	}
}
