package weather

import (
	"testing"
	"time"
)

func TestCache_SetAndGet(t *testing.T) {
	c := NewCache[string, string](1 * time.Second)
	c.Set("key1", "value1")

	val, ok := c.Get("key1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if val != "value1" {
		t.Errorf("expected value1, got %s", val)
	}
}

func TestCache_Expiry(t *testing.T) {
	c := NewCache[string, string](50 * time.Millisecond)
	c.Set("key1", "value1")

	time.Sleep(100 * time.Millisecond)

	_, ok := c.Get("key1")
	if ok {
		t.Fatal("expected cache miss after TTL")
	}
}

func TestCache_StructKeys(t *testing.T) {
	c := NewCache[viewModelKey, ViewModel](1 * time.Second)
	key := viewModelKey{report: metricReport(), units: Metric}
	c.Set(key, ViewModel{Mood: "Crisp & Clear"})

	vm, ok := c.Get(key)
	if !ok {
		t.Fatal("expected cache hit for struct key")
	}
	if vm.Mood != "Crisp & Clear" {
		t.Errorf("expected stored view model, got %+v", vm)
	}

	other := key
	other.units = Imperial
	if _, ok := c.Get(other); ok {
		t.Fatal("expected miss for a different unit system")
	}
}
