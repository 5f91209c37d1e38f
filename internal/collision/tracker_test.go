package collision

import (
	"testing"

	"github.com/bocu1-go/bocu1/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Contents())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("hello", 0x1234567890abcdef)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"hello"}, tracker.Contents())

	err = tracker.Track("world", 0xfedcba0987654321)
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"hello", "world"}, tracker.Contents())
}

func TestTracker_Track_EmptyContent(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("", 0x1234567890abcdef)

	require.ErrorIs(t, err, errs.ErrEmptyContent)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("hello", 0x1234567890abcdef)
	require.NoError(t, err)
	require.False(t, tracker.HasCollision())

	// Same hash, different content: collision flagged, not an error.
	err = tracker.Track("world", 0x1234567890abcdef)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"hello", "world"}, tracker.Contents())
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("hello", 0x1234567890abcdef)
	require.NoError(t, err)

	err = tracker.Track("hello", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrContentAlreadyAdded)
	require.False(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Contents_PreservesOrder(t *testing.T) {
	tracker := NewTracker()

	entries := []struct {
		content string
		hash    uint64
	}{
		{"alpha", 0x0001},
		{"beta", 0x0002},
		{"gamma", 0x0003},
		{"delta", 0x0004},
	}

	for _, e := range entries {
		require.NoError(t, tracker.Track(e.content, e.hash))
	}

	contents := tracker.Contents()
	require.Equal(t, 4, len(contents))
	require.Equal(t, "alpha", contents[0])
	require.Equal(t, "beta", contents[1])
	require.Equal(t, "gamma", contents[2])
	require.Equal(t, "delta", contents[3])
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.Track("hello", 0x1234567890abcdef)
	_ = tracker.Track("world", 0xfedcba0987654321)
	require.Equal(t, 2, tracker.Count())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Contents())

	err := tracker.Track("again", 0x1111111111111111)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.Equal(t, []string{"again"}, tracker.Contents())
}

func TestTracker_Reset_PreservesCapacity(t *testing.T) {
	tracker := NewTracker()

	for i := 0; i < 100; i++ {
		_ = tracker.Track("content", uint64(i))
	}

	initialCap := cap(tracker.contentsList)

	tracker.Reset()

	require.Equal(t, 0, len(tracker.contentsList))
	require.GreaterOrEqual(t, cap(tracker.contentsList), initialCap)
}

func TestTracker_HasCollision_Persists(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.Track("hello", 0x1234567890abcdef)
	require.False(t, tracker.HasCollision())

	_ = tracker.Track("world", 0x1234567890abcdef)
	require.True(t, tracker.HasCollision())

	_ = tracker.Track("more", 0xfedcba0987654321)
	require.True(t, tracker.HasCollision())
}

func TestTracker_MultipleCollisions(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("content1", 0x0001)
	require.NoError(t, err)

	err = tracker.Track("content2", 0x0001)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())

	err = tracker.Track("content3", 0x0002)
	require.NoError(t, err)
	err = tracker.Track("content4", 0x0002)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())

	require.Equal(t, 4, tracker.Count())
}
