package random_test

import (
	"testing"
	"unicode"

	"github.com/emberops/firedesk/internal/random"
	"github.com/stretchr/testify/require"
)

func TestLetters(t *testing.T) {
	s, err := random.Letters(20)
	require.NoError(t, err)
	require.Len(t, s, 20)
	for _, r := range s {
		require.True(t, unicode.IsLetter(r))
	}

	empty, err := random.Letters(0)
	require.NoError(t, err)
	require.Empty(t, empty)
}
