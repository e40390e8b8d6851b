package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"vane/internal/config"
	"vane/internal/openweather"
	"vane/internal/view"
	"vane/internal/weather"
	"vane/internal/widget"
)

const clearScreen = "\033[H\033[2J"

var errQuit = errors.New("quit")

func main() {
	dotenvErr := godotenv.Load()

	cfg := config.Load()

	city := flag.String("city", "", "initial city to look up")
	unitsFlag := flag.String("units", cfg.Units, "unit system: metric or imperial")
	baseURL := flag.String("base-url", cfg.BaseURL, "OpenWeatherMap API base URL")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if dotenvErr != nil && !errors.Is(dotenvErr, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "err", dotenvErr)
	}

	units, err := weather.ParseUnits(*unitsFlag)
	if err != nil {
		slog.Error("invalid units flag", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		slog.Info("shutting down")
		cancel()
	}()

	client := openweather.NewClient(*baseURL, cfg.APIKey)
	ctrl := widget.New(client, widget.Config{
		APIKey: cfg.APIKey,
		Units:  units,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ctrl.Run(gctx)
		return nil
	})
	g.Go(func() error {
		renderLoop(gctx, ctrl)
		return nil
	})
	g.Go(func() error {
		return inputLoop(gctx, ctrl)
	})

	if *city != "" {
		ctrl.SetQuery(*city)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		slog.Error("widget stopped", "err", err)
		os.Exit(1)
	}
	slog.Info("widget stopped")
}

// renderLoop redraws the screen for every published snapshot.
func renderLoop(ctx context.Context, ctrl *widget.Controller) {
	draw(ctrl.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-ctrl.Updates():
			if !ok {
				return
			}
			draw(snap)
		}
	}
}

func draw(snap widget.Snapshot) {
	fmt.Print(clearScreen + view.Render(snap) + "\n")
}

// inputLoop treats every stdin line as a query, with /-prefixed commands.
// Stdin is read on its own goroutine so shutdown does not wait on a blocked
// read.
func inputLoop(ctx context.Context, ctrl *widget.Controller) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Error("stdin read failed", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			switch cmd := strings.TrimSpace(line); cmd {
			case "/quit":
				return errQuit
			case "/units":
				ctrl.ToggleUnits()
			case "/retry":
				ctrl.Retry()
			case "/clear":
				ctrl.SetQuery("")
			default:
				ctrl.SetQuery(cmd)
			}
		}
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
