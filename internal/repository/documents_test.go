package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLikeRegex(t *testing.T) {
	t.Log("plain pattern is quoted")
	{
		require.Equal(t, `a\.b`, likeRegex("a.b").Pattern)
	}

	t.Log("wildcard is translated")
	{
		require.Equal(t, `C.*1`, likeRegex("C*1").Pattern)
		require.Equal(t, `.*`, likeRegex("*").Pattern)
		require.Equal(t, `a\+b.*c\(`, likeRegex("a+b*c(").Pattern)
	}

	t.Log("regex is case sensitive")
	{
		require.Empty(t, likeRegex("abc").Options)
	}
}
