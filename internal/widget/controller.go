// Package widget owns the request lifecycle: one event-loop goroutine holds
// all mutable state and publishes immutable snapshots after every change.
package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vane/internal/clock"
	"vane/internal/openweather"
	"vane/internal/weather"
)

const (
	msgMissingKey   = "Weather service credential is not configured."
	msgCityNotFound = "City not found. Try a different name."
	msgUnreachable  = "Weather service is unreachable. Check your connection."
)

// Fetcher retrieves current conditions for a city; *openweather.Client is one.
type Fetcher interface {
	CurrentByCity(ctx context.Context, city string, units weather.Units) (weather.Report, error)
}

type Config struct {
	APIKey       string
	Units        weather.Units
	TickInterval time.Duration
}

type command struct {
	kind  commandKind
	query string
}

type commandKind int

const (
	cmdSetQuery commandKind = iota
	cmdToggleUnits
	cmdRetry
)

type fetchResult struct {
	gen    uint64
	report weather.Report
	err    error
}

type clockTick struct {
	gen uint64
	now time.Time
}

// loopState is owned exclusively by the Run goroutine. Generation numbers
// let the loop discard results and ticks from a superseded request or timer
// before they can touch state.
type loopState struct {
	fetchGen    uint64
	clockGen    uint64
	cancelFetch context.CancelFunc
	stopClock   func()
	results     chan fetchResult
	ticks       chan clockTick
}

type Controller struct {
	fetcher Fetcher
	apiKey  string
	tick    time.Duration
	deriver *weather.Deriver

	commands chan command
	updates  chan Snapshot
	done     chan struct{}

	mu   sync.RWMutex
	snap Snapshot
}

func New(fetcher Fetcher, cfg Config) *Controller {
	units := cfg.Units
	if units != weather.Metric && units != weather.Imperial {
		units = weather.Metric
	}
	tick := cfg.TickInterval
	if tick <= 0 {
		tick = time.Second
	}
	return &Controller{
		fetcher:  fetcher,
		apiKey:   cfg.APIKey,
		tick:     tick,
		deriver:  weather.NewDeriver(10 * time.Minute),
		commands: make(chan command, 16),
		updates:  make(chan Snapshot, 32),
		done:     make(chan struct{}),
		snap:     Snapshot{State: StateIdle, Units: units},
	}
}

// SetQuery submits a city query; blank clears the widget back to idle.
func (c *Controller) SetQuery(query string) {
	c.send(command{kind: cmdSetQuery, query: query})
}

// ToggleUnits flips the display units; a held report is re-derived locally
// with no network call.
func (c *Controller) ToggleUnits() {
	c.send(command{kind: cmdToggleUnits})
}

// Retry re-issues the current query. No-op while idle.
func (c *Controller) Retry() {
	c.send(command{kind: cmdRetry})
}

func (c *Controller) send(cmd command) {
	select {
	case c.commands <- cmd:
	case <-c.done:
	}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Updates streams published snapshots. Slow readers lose old snapshots,
// never new ones. The channel closes when Run returns.
func (c *Controller) Updates() <-chan Snapshot {
	return c.updates
}

// Run drives the event loop until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) {
	st := &loopState{
		results: make(chan fetchResult, 4),
		ticks:   make(chan clockTick, 1),
	}

	defer func() {
		if st.cancelFetch != nil {
			st.cancelFetch()
		}
		if st.stopClock != nil {
			st.stopClock()
		}
		close(c.done)
		close(c.updates)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-c.commands:
			switch cmd.kind {
			case cmdSetQuery:
				c.handleQuery(ctx, st, cmd.query)
			case cmdToggleUnits:
				c.handleToggle()
			case cmdRetry:
				c.handleRetry(ctx, st)
			}
		case res := <-st.results:
			c.handleResult(ctx, st, res)
		case tk := <-st.ticks:
			c.handleTick(st, tk)
		}
	}
}

func (c *Controller) handleQuery(ctx context.Context, st *loopState, query string) {
	query = strings.TrimSpace(query)
	invalidateFetch(st)
	invalidateClock(st)

	cur := c.Snapshot()

	if query == "" {
		c.publish(Snapshot{State: StateIdle, Units: cur.Units})
		return
	}
	if c.apiKey == "" {
		slog.Warn("query refused, no api key configured", "city", query)
		c.publish(Snapshot{State: StateError, Query: query, Units: cur.Units, Message: msgMissingKey})
		return
	}

	c.publish(Snapshot{State: StateLoading, Query: query, Units: cur.Units})
	c.startFetch(ctx, st, query, cur.Units)
}

func (c *Controller) handleRetry(ctx context.Context, st *loopState) {
	cur := c.Snapshot()
	if strings.TrimSpace(cur.Query) == "" {
		return
	}
	c.handleQuery(ctx, st, cur.Query)
}

func (c *Controller) handleToggle() {
	cur := c.Snapshot()
	cur.Units = cur.Units.Other()
	if cur.State == StateSuccess {
		cur.View = c.deriver.ViewModel(cur.Report, cur.Units)
	}
	c.publish(cur)
}

func (c *Controller) startFetch(ctx context.Context, st *loopState, query string, units weather.Units) {
	st.fetchGen++
	gen := st.fetchGen

	fetchCtx, cancel := context.WithCancel(ctx)
	st.cancelFetch = cancel

	attempt := uuid.NewString()
	slog.Info("fetching current weather", "attempt", attempt, "city", query, "units", units)

	go func() {
		start := time.Now()
		report, err := c.fetcher.CurrentByCity(fetchCtx, query, units)
		slog.Debug("fetch settled", "attempt", attempt, "duration", time.Since(start), "err", err)
		select {
		case st.results <- fetchResult{gen: gen, report: report, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (c *Controller) handleResult(ctx context.Context, st *loopState, res fetchResult) {
	if res.gen != st.fetchGen {
		slog.Debug("dropping superseded fetch result", "gen", res.gen, "current", st.fetchGen)
		return
	}
	if st.cancelFetch != nil {
		st.cancelFetch()
		st.cancelFetch = nil
	}

	cur := c.Snapshot()

	if res.err != nil {
		if errors.Is(res.err, context.Canceled) {
			return
		}
		slog.Error("fetch failed", "city", cur.Query, "err", res.err)
		c.publish(Snapshot{State: StateError, Query: cur.Query, Units: cur.Units, Message: messageFor(res.err)})
		return
	}

	report := res.report
	local := clock.NewLocal(report.UTCOffsetSeconds)
	c.publish(Snapshot{
		State:     StateSuccess,
		Query:     cur.Query,
		Units:     cur.Units,
		Report:    report,
		View:      c.deriver.ViewModel(report, cur.Units),
		LocalTime: local.At(report.ObservedAt),
	})
	c.startClock(ctx, st, report.UTCOffsetSeconds)
}

func (c *Controller) startClock(ctx context.Context, st *loopState, utcOffsetSeconds int) {
	invalidateClock(st)
	st.clockGen++
	gen := st.clockGen

	local := clock.NewLocal(utcOffsetSeconds)
	ticks := st.ticks
	st.stopClock = local.Start(ctx, c.tick, func(now time.Time) {
		select {
		case ticks <- clockTick{gen: gen, now: now}:
		default:
		}
	})
}

func (c *Controller) handleTick(st *loopState, tk clockTick) {
	if tk.gen != st.clockGen {
		return
	}
	cur := c.Snapshot()
	if cur.State != StateSuccess {
		return
	}
	cur.LocalTime = tk.now
	c.publish(cur)
}

// invalidateFetch cancels any in-flight request and bumps the generation so
// a result that already escaped the cancel cannot land.
func invalidateFetch(st *loopState) {
	if st.cancelFetch != nil {
		st.cancelFetch()
		st.cancelFetch = nil
	}
	st.fetchGen++
}

func invalidateClock(st *loopState) {
	if st.stopClock != nil {
		st.stopClock()
		st.stopClock = nil
	}
	st.clockGen++
}

// publish records snap as current, evicting the oldest pending update if
// the reader has fallen behind.
func (c *Controller) publish(snap Snapshot) {
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	for {
		select {
		case c.updates <- snap:
			return
		default:
			select {
			case <-c.updates:
			default:
			}
		}
	}
}

func messageFor(err error) string {
	if errors.Is(err, openweather.ErrCityNotFound) {
		return msgCityNotFound
	}
	var statusErr *openweather.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Weather service error (%s). Try again shortly.", statusErr.Status)
	}
	return msgUnreachable
}
