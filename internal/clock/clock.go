package clock

import (
	"context"
	"time"
)

// Local shifts wall-clock time by a fixed UTC offset, with no timezone data.
type Local struct {
	offset time.Duration
}

func NewLocal(utcOffsetSeconds int) Local {
	return Local{offset: time.Duration(utcOffsetSeconds) * time.Second}
}

func (l Local) Now() time.Time {
	return time.Now().UTC().Add(l.offset)
}

func (l Local) At(t time.Time) time.Time {
	return t.UTC().Add(l.offset)
}

// Start emits the local time once per interval until the returned stop
// function is called or ctx ends. No emission happens after a stop.
func (l Local) Start(ctx context.Context, interval time.Duration, fn func(time.Time)) (stop func()) {
	tickCtx, cancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-tickCtx.Done():
				return
			case <-ticker.C:
				if tickCtx.Err() != nil {
					return
				}
				fn(l.Now())
			}
		}
	}()
	return cancel
}
