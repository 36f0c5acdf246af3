package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateStamp(t *testing.T) {
	utc := time.Date(2021, time.January, 1, 20, 0, 0, 0, time.UTC)
	// 20:00 UTC is already past midnight in Seoul
	require.Equal(t, "20210102", DateStamp(utc))

	kst := time.Date(2021, time.January, 1, 20, 0, 0, 0, Location)
	require.Equal(t, "20210101", DateStamp(kst))
}
