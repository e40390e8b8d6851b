package weather

import (
	"fmt"
	"time"
)

type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case Metric, Imperial:
		return Units(s), nil
	}
	return "", fmt.Errorf("unknown unit system %q (want metric or imperial)", s)
}

func (u Units) Other() Units {
	if u == Metric {
		return Imperial
	}
	return Metric
}

// Report is one parsed current-weather payload. Temperature and FeelsLike
// are in the unit system the request asked for (recorded in Units);
// WindSpeed is m/s regardless.
type Report struct {
	Name             string
	Country          string
	Condition        string // coarse label, e.g. "Clear"
	Description      string // finer free text, e.g. "light rain"
	ConditionID      int
	Temperature      float64
	FeelsLike        float64
	Humidity         int
	WindSpeed        float64
	ObservedAt       time.Time
	UTCOffsetSeconds int
	Units            Units
}

type ViewModel struct {
	Temperature int // rounded to the nearest whole display unit
	FeelsLike   int
	TempUnit    string // "°C" or "°F"
	Wind        string // formatted with unit, e.g. "18.0 km/h"
	Mood        string
	Icon        Icon
}
