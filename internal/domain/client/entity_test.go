package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	c := New("Ana", "912345678", time.Date(1990, 5, 17, 15, 30, 0, 0, time.FixedZone("BRT", -3*3600)))

	require.Equal(t, "Ana", c.Name)
	require.Equal(t, "912345678", c.PhoneNumber)
	require.True(t, c.IsActive)
	require.False(t, c.IsRemoved)
	require.Nil(t, c.RemovedAt)
	require.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), c.BirthDate)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	t.Run("absent birth date keeps the stored one", func(t *testing.T) {
		c := &Client{Name: "Ana", PhoneNumber: "1", BirthDate: birth}

		Merge(c, Changes{Name: "Ana Maria", PhoneNumber: "2"})

		require.Equal(t, "Ana Maria", c.Name)
		require.Equal(t, "2", c.PhoneNumber)
		require.Equal(t, birth, c.BirthDate)
	})

	t.Run("present birth date overwrites", func(t *testing.T) {
		c := &Client{Name: "Ana", PhoneNumber: "1", BirthDate: birth}
		next := time.Date(1991, 1, 2, 0, 0, 0, 0, time.UTC)

		Merge(c, Changes{Name: "Ana", PhoneNumber: "1", BirthDate: &next})

		require.Equal(t, next, c.BirthDate)
	})

	t.Run("status and removal are untouched", func(t *testing.T) {
		c := &Client{IsActive: false}

		Merge(c, Changes{Name: "x", PhoneNumber: "y"})

		require.False(t, c.IsActive)
		require.False(t, c.IsRemoved)
	})
}

func TestSetStatusAndRemove(t *testing.T) {
	t.Parallel()

	c := New("Ana", "1", time.Now())

	SetStatus(c, false)
	require.False(t, c.IsActive)
	SetStatus(c, true)
	require.True(t, c.IsActive)

	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	Remove(c, now)
	require.True(t, c.IsRemoved)
	require.NotNil(t, c.RemovedAt)
	require.Equal(t, now, *c.RemovedAt)
}
