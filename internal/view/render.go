// Package view turns widget snapshots into terminal text.
package view

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vane/internal/clock"
	"vane/internal/weather"
	"vane/internal/widget"
)

const idleScreen = `Type a city name to look up the weather.
Commands: /units  /retry  /clear  /quit`

var glyphs = map[weather.Icon]string{
	weather.IconClear:   "☀",
	weather.IconClouds:  "☁",
	weather.IconRain:    "🌧",
	weather.IconSnow:    "❄",
	weather.IconFog:     "🌫",
	weather.IconThunder: "⛈",
}

// Render maps a snapshot to exactly one of four layouts. Only fields
// belonging to the matched state are read.
func Render(snap widget.Snapshot) string {
	switch snap.State {
	case widget.StateLoading:
		return fmt.Sprintf("Looking up %q ...", snap.Query)
	case widget.StateError:
		return fmt.Sprintf("! %s\n  Type /retry to try again.", snap.Message)
	case widget.StateSuccess:
		return renderReport(snap)
	default:
		return idleScreen
	}
}

func renderReport(snap widget.Snapshot) string {
	r := snap.Report
	v := snap.View

	name := r.Name
	if r.Country != "" {
		name += ", " + r.Country
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", glyph(v.Icon), name)
	fmt.Fprintf(&b, "   %s\n\n", cases.Title(language.English).String(r.Description))
	fmt.Fprintf(&b, "   %d%s  feels like %d%s\n", v.Temperature, v.TempUnit, v.FeelsLike, v.TempUnit)
	fmt.Fprintf(&b, "   %s\n\n", v.Mood)
	fmt.Fprintf(&b, "   humidity %d%%   wind %s\n", r.Humidity, v.Wind)

	observed := clock.NewLocal(r.UTCOffsetSeconds).At(r.ObservedAt)
	fmt.Fprintf(&b, "   local time %s   observed %s",
		snap.LocalTime.Format("15:04:05"), observed.Format("15:04"))
	return b.String()
}

func glyph(icon weather.Icon) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return glyphs[weather.IconClear]
}
