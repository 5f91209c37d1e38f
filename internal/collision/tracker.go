// Package collision tracks xxHash64 digests of the strings added to a
// blob.TextBlobSet, so the set can store each distinct string's BOCU-1
// encoding exactly once and detect the rare case where two different
// strings hash to the same 64-bit digest.
package collision

import (
	"github.com/bocu1-go/bocu1/errs"
)

// Tracker maps content hashes to the original strings that produced them.
// It maintains both the hash → content map used for collision detection and
// an ordered list of contents for deterministic blob serialization.
type Tracker struct {
	contents     map[uint64]string // hash -> content
	contentsList []string          // insertion order, for serialization
	hasCollision bool
}

// NewTracker creates a new, empty collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		contents:     make(map[uint64]string),
		contentsList: make([]string, 0),
	}
}

// Track records content under its hash. It returns errs.ErrEmptyContent for
// an empty string and errs.ErrContentAlreadyAdded if the exact same content
// was already tracked. If hash collides with a *different* prior content,
// Track does not fail: it records the collision (see HasCollision) so the
// caller can fall back to storing full content alongside the hash instead of
// relying on the hash alone to distinguish entries.
func (t *Tracker) Track(content string, hash uint64) error {
	if content == "" {
		return errs.ErrEmptyContent
	}

	if existing, exists := t.contents[hash]; exists {
		if existing == content {
			return errs.ErrContentAlreadyAdded
		}
		t.hasCollision = true
	}

	t.contents[hash] = content
	t.contentsList = append(t.contentsList, content)

	return nil
}

// HasCollision reports whether two distinct strings tracked so far produced
// the same hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Contents returns the tracked strings in the order Track was called.
func (t *Tracker) Contents() []string {
	return t.contentsList
}

// Count returns the number of distinct strings tracked.
func (t *Tracker) Count() int {
	return len(t.contentsList)
}

// Reset clears all tracked content and collision state, preserving the
// tracker's internal capacity so it can be reused without reallocating.
func (t *Tracker) Reset() {
	for k := range t.contents {
		delete(t.contents, k)
	}
	t.contentsList = t.contentsList[:0]
	t.hasCollision = false
}
