package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcurrencyToken(t *testing.T) {
	t.Parallel()

	t.Run("new tokens never repeat", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			tok := NewConcurrencyToken()
			require.Len(t, tok, 16)
			_, dup := seen[tok.String()]
			require.False(t, dup)
			seen[tok.String()] = struct{}{}
		}
	})

	t.Run("parse accepts the encoded form", func(t *testing.T) {
		tok := NewConcurrencyToken()

		parsed, err := ParseConcurrencyToken(tok.String())
		require.NoError(t, err)
		require.True(t, tok.Equal(parsed))
		require.False(t, tok.Equal(NewConcurrencyToken()))
	})

	t.Run("parse rejects garbage and empty input", func(t *testing.T) {
		_, err := ParseConcurrencyToken("not base64!")
		require.Error(t, err)

		_, err = ParseConcurrencyToken("")
		require.Error(t, err)
	})
}
