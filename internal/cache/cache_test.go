package cache

import (
	"fmt"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for deterministic expiry tests.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestCache(ttl time.Duration, maxEntries int) (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return New(ttl, maxEntries, WithClock(clock.Now)), clock
}

func TestGetSetRoundTrip(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(DefaultTTL, DefaultMaxEntries)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set("k", "v")
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Fatalf("expected hit with v, got %v (hit=%v)", got, ok)
	}
}

func TestExpiryIsLazy(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(5*time.Minute, DefaultMaxEntries)
	c.Set("k", 1)

	clock.Advance(5*time.Minute - time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry inside the TTL should hit")
	}

	clock.Advance(2 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry past the TTL should miss")
	}
	// The lazy eviction removed it.
	if c.Len() != 0 {
		t.Errorf("expected expired entry evicted on access, len=%d", c.Len())
	}
}

func TestKeyWindowRollover(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(DefaultTTL, DefaultMaxEntries)

	k1 := c.Key("flashcards", 3, 5)
	clock.Advance(10 * time.Second)
	k2 := c.Key("flashcards", 3, 5)
	if k1 != k2 {
		t.Errorf("keys inside one window should match: %q vs %q", k1, k2)
	}

	clock.Advance(time.Minute)
	k3 := c.Key("flashcards", 3, 5)
	if k3 == k1 {
		t.Error("key should change after the window rolls over")
	}
}

func TestKeyShapeSeparation(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(DefaultTTL, DefaultMaxEntries)

	keys := []string{
		c.Key("flashcards", 3, 5),
		c.Key("quiz", 3, 5),
		c.Key("quiz", 3, 5, "hard"),
		c.Key("quiz", 3, 5, "mixed"),
		c.Key("quiz", 4, 5, "mixed"),
		c.Key("quiz", 3, 6, "mixed"),
		c.Key("quiz", 3, 5, "mixed", "enhanced"),
	}
	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("key collision: %q", k)
		}
		seen[k] = true
	}
}

func TestSetSweepsExpiredPastCap(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(5*time.Minute, 10)

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("old_%d", i), i)
	}
	clock.Advance(6 * time.Minute)

	// Under the cap nothing is swept eagerly.
	if c.Len() != 10 {
		t.Fatalf("expected 10 entries before sweep, got %d", c.Len())
	}

	// Crossing the cap sweeps all expired entries, keeping the new one.
	c.Set("fresh", "v")
	if c.Len() != 1 {
		t.Errorf("expected sweep to leave only the fresh entry, len=%d", c.Len())
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("fresh entry should survive the sweep")
	}
}

func TestLiveEntriesSurviveSweep(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(5*time.Minute, 3)
	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	// All entries are live, so the sweep removes nothing: the cache is
	// allowed to sit above its cap between windows.
	if c.Len() != 5 {
		t.Errorf("expected live entries kept past the cap, len=%d", c.Len())
	}
}
