package cache

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New(Config{MaxItems: 10})

	if _, ok := c.Get("missing"); ok {
		t.Fatal("Get on empty cache reported a hit")
	}

	c.Set("a", Entry{Value: 42})
	entry, ok := c.Get("a")
	if !ok || entry.Value != 42 {
		t.Errorf("Get(a) = %v, %v, want 42, true", entry, ok)
	}

	c.Set("a", Entry{Value: 43})
	if entry, _ := c.Get("a"); entry.Value != 43 {
		t.Errorf("Get(a) after overwrite = %v, want 43", entry.Value)
	}
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}

	hits, misses, rate := c.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses, want 2 and 1", hits, misses)
	}
	if math.Abs(rate-66.666) > 0.01 {
		t.Errorf("hit rate = %v, want about 66.67", rate)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(Config{MaxItems: 2})
	c.Set("a", Entry{Value: 1})
	c.Set("b", Entry{Value: 2})
	c.Get("a")
	c.Set("c", Entry{Value: 3})

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, key := range []string{"a", "c"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("%s should still be cached", key)
		}
	}
}

func TestDeleteClear(t *testing.T) {
	c := New(DefaultConfig())
	c.Set("a", Entry{Value: 1})
	c.Set("b", Entry{Value: 2})

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("a still cached after Delete")
	}
	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d", c.Size())
	}
}

func TestGetOrSet(t *testing.T) {
	c := New(Config{MaxItems: 10})
	calls := 0
	compute := func() Entry {
		calls++
		return Entry{Value: "result"}
	}

	if _, hit := c.GetOrSet("k", compute, nil); hit {
		t.Error("first GetOrSet reported a hit")
	}
	entry, hit := c.GetOrSet("k", compute, nil)
	if !hit || entry.Value != "result" || calls != 1 {
		t.Errorf("second GetOrSet = %v, hit %v, calls %d", entry, hit, calls)
	}

	failing := func() Entry { return Entry{Err: errors.New("boom")} }
	skip := func(e Entry) bool { return e.Err == nil }
	c.GetOrSet("f", failing, skip)
	if _, ok := c.Get("f"); ok {
		t.Error("entry rejected by store was cached")
	}
}

func TestKey(t *testing.T) {
	a, ok := Key("quality.cpk", map[string]interface{}{"usl": 10, "lsl": 4})
	if !ok {
		t.Fatal("Key rejected a plain record")
	}
	b, _ := Key("quality.cpk", map[string]interface{}{"lsl": 4, "usl": 10})
	if a != b {
		t.Error("equal records gave different keys")
	}

	c, _ := Key("quality.cp", map[string]interface{}{"usl": 10, "lsl": 4})
	if a == c {
		t.Error("different formulas gave the same key")
	}
	d, _ := Key("quality.cpk", map[string]interface{}{"usl": "10", "lsl": 4})
	if a == d {
		t.Error("string and number values gave the same key")
	}

	if _, ok := Key("quality.cpk", map[string]interface{}{"usl": math.NaN()}); ok {
		t.Error("Key accepted NaN")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(Config{MaxItems: 16})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := string(rune('a' + (n+j)%26))
				c.GetOrSet(key, func() Entry { return Entry{Value: j} }, nil)
			}
		}(i)
	}
	wg.Wait()

	if c.Size() > 16 {
		t.Errorf("Size() = %d exceeds MaxItems", c.Size())
	}
}
