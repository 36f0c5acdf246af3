package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "myboard", NormalizeName("  My Board "))
	require.Equal(t, "스타게시판", NormalizeName("스타 게시판"))
}

func TestMatchName(t *testing.T) {
	require.True(t, MatchName("Star Board", []string{"star"}))
	require.True(t, MatchName("Star Board", []string{"nope", "AR BO"}))
	require.False(t, MatchName("Star Board", []string{"fan"}))
	require.False(t, MatchName("Star Board", []string{""}))
	require.False(t, MatchName("Star Board", nil))
}
