package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocationFallsBack(t *testing.T) {
	t.Parallel()

	require.False(t, IsValid(""))
	require.False(t, IsValid("Mars/Olympus_Mons"))
	require.True(t, IsValid("UTC"))

	require.Equal(t, time.UTC, Location("UTC"))
	require.Equal(t, Location(DefaultTimezone).String(), Location("Mars/Olympus_Mons").String())
}

func TestClockUsesLocation(t *testing.T) {
	t.Parallel()

	now := Clock("UTC")()
	require.Equal(t, time.UTC, now.Location())
	require.WithinDuration(t, time.Now(), now, time.Minute)
}
