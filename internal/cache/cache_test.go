package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New[string, int]()

	c.Set("a", 1, time.Minute)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", v, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) returned ok for absent key")
	}
}

func TestCacheExpiration(t *testing.T) {
	c := New[string, int]()

	c.Set("a", 1, -time.Second)
	if _, ok := c.Get("a"); ok {
		t.Error("Get returned ok for expired entry")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string, int]()

	c.Set("a", 1, time.Minute)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Get returned ok after Delete")
	}
}

func TestCacheOverwrite(t *testing.T) {
	c := New[int64, string]()

	c.Set(7, "first", time.Minute)
	c.Set(7, "second", time.Minute)
	if v, _ := c.Get(7); v != "second" {
		t.Errorf("Get(7) = %q, want %q", v, "second")
	}
}
