package cache

import (
	"testing"
	"time"
)

func TestCacheHitAndMiss(t *testing.T) {
	c := New(NewMemoryStore(), time.Minute)

	if _, ok := c.Get("accounts"); ok {
		t.Error("expected a miss on an empty cache")
	}

	c.Set("accounts", []byte(`{"accounts":[]}`))
	value, ok := c.Get("accounts")
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if string(value) != `{"accounts":[]}` {
		t.Errorf("unexpected cached value: %s", value)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(NewMemoryStore(), time.Minute)

	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("accounts", []byte("payload"))

	current = current.Add(30 * time.Second)
	if _, ok := c.Get("accounts"); !ok {
		t.Error("entry should still be valid before the TTL")
	}

	current = current.Add(45 * time.Second)
	if _, ok := c.Get("accounts"); ok {
		t.Error("entry should have expired")
	}

	// Expired entries are evicted from the store
	if _, ok := c.store.Get("accounts"); ok {
		t.Error("expired entry should have been deleted")
	}
}
