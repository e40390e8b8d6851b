package clock

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLocal_OffsetMath(t *testing.T) {
	l := NewLocal(3600)

	at := l.At(time.Unix(1700000000, 0))
	if got := at.Unix(); got != 1700003600 {
		t.Errorf("At shifted to unix %d, want 1700003600", got)
	}

	ahead := l.Now().Sub(time.Now().UTC())
	if ahead < 59*time.Minute || ahead > 61*time.Minute {
		t.Errorf("Now is %v ahead of UTC, want about 1h", ahead)
	}

	behind := NewLocal(-18000) // UTC-5
	if d := time.Now().UTC().Sub(behind.Now()); d < 4*time.Hour || d > 6*time.Hour {
		t.Errorf("negative offset not applied: %v behind UTC", d)
	}
}

func TestLocal_StartTicksAndStops(t *testing.T) {
	l := NewLocal(7200)

	var mu sync.Mutex
	var ticks []time.Time
	stop := l.Start(context.Background(), 10*time.Millisecond, func(ts time.Time) {
		mu.Lock()
		ticks = append(ticks, ts)
		mu.Unlock()
	})

	time.Sleep(80 * time.Millisecond)
	stop()

	mu.Lock()
	n := len(ticks)
	for i := 1; i < n; i++ {
		if ticks[i].Before(ticks[i-1]) {
			t.Fatal("ticks went backwards")
		}
	}
	var last time.Time
	if n > 0 {
		last = ticks[n-1]
	}
	mu.Unlock()

	if n < 3 {
		t.Fatalf("expected at least 3 ticks, got %d", n)
	}
	if ahead := last.Sub(time.Now().UTC()); ahead < time.Hour || ahead > 3*time.Hour {
		t.Errorf("tick not in the local frame: %v ahead of UTC", ahead)
	}

	// At most one in-flight callback may land after stop.
	time.Sleep(40 * time.Millisecond)
	mu.Lock()
	after := len(ticks)
	mu.Unlock()
	if after > n+1 {
		t.Fatalf("ticker kept firing after stop: %d then %d ticks", n, after)
	}
}

func TestLocal_StartHonorsParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	count := 0
	NewLocal(0).Start(ctx, 10*time.Millisecond, func(time.Time) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	time.Sleep(35 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	mu.Lock()
	n := count
	mu.Unlock()
	if n == 0 {
		t.Fatal("expected ticks before cancellation")
	}

	time.Sleep(40 * time.Millisecond)
	mu.Lock()
	after := count
	mu.Unlock()
	if after > n+1 {
		t.Fatalf("ticker survived context cancellation: %d then %d ticks", n, after)
	}
}
