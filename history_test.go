package prompter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputHistoryPreviousNextRoundTrip(t *testing.T) {
	h := &inputHistory{index: -1}
	h.Add("first")
	h.Add("second")

	v, ok := h.Previous("typing")
	require.True(t, ok)
	require.Equal(t, "second", v)

	v, ok = h.Previous("")
	require.True(t, ok)
	require.Equal(t, "first", v)

	_, ok = h.Previous("")
	require.False(t, ok, "Previous() past the oldest entry should return ok=false")

	v, ok = h.Next("")
	require.True(t, ok)
	require.Equal(t, "second", v)

	v, ok = h.Next("")
	require.True(t, ok, "Next() past the newest entry should restore the pending buffer")
	require.Equal(t, "typing", v)
}

func TestInputHistorySuppressesAdjacentDuplicates(t *testing.T) {
	h := &inputHistory{index: -1}
	h.Add("same")
	h.Add("same")
	require.Equal(t, "same", h.entry(0))
	require.Equal(t, "", h.entry(1), "adjacent duplicate should be suppressed")
}

func TestInputHistoryEmptyNextBeforeNavigating(t *testing.T) {
	h := &inputHistory{index: -1}
	_, ok := h.Next("x")
	require.False(t, ok, "Next() before any Previous() should return ok=false")
}
