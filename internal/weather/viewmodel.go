package weather

import (
	"fmt"
	"math"
	"time"
)

const (
	msToKMH = 3.6
	msToMPH = 2.23694
)

func CToF(c float64) float64 { return c*9/5 + 32 }
func FToC(f float64) float64 { return (f - 32) * 5 / 9 }

// BuildViewModel derives display values from a report. The report keeps the
// unit system it was fetched with, which may differ from the display system
// after a toggle; the mood classifier always receives Celsius.
func BuildViewModel(r Report, units Units) ViewModel {
	tempUnit := "°C"
	if units == Imperial {
		tempUnit = "°F"
	}

	var wind string
	if units == Metric {
		wind = fmt.Sprintf("%.1f km/h", r.WindSpeed*msToKMH)
	} else {
		wind = fmt.Sprintf("%.1f mph", r.WindSpeed*msToMPH)
	}

	return ViewModel{
		Temperature: int(math.Round(convertTemp(r.Temperature, r.Units, units))),
		FeelsLike:   int(math.Round(convertTemp(r.FeelsLike, r.Units, units))),
		TempUnit:    tempUnit,
		Wind:        wind,
		Mood:        Classify(r.Condition, r.Description, toCelsius(r.Temperature, r.Units)),
		Icon:        IconFor(r.ConditionID, r.Condition),
	}
}

func convertTemp(v float64, from, to Units) float64 {
	if from == to {
		return v
	}
	if to == Imperial {
		return CToF(v)
	}
	return FToC(v)
}

func toCelsius(v float64, from Units) float64 {
	if from == Imperial {
		return FToC(v)
	}
	return v
}

type viewModelKey struct {
	report Report
	units  Units
}

// Deriver memoizes BuildViewModel. A miss and a hit produce identical
// values; expiry only costs a recompute.
type Deriver struct {
	memo *Cache[viewModelKey, ViewModel]
}

func NewDeriver(ttl time.Duration) *Deriver {
	return &Deriver{memo: NewCache[viewModelKey, ViewModel](ttl)}
}

func (d *Deriver) ViewModel(r Report, units Units) ViewModel {
	key := viewModelKey{report: r, units: units}
	if vm, ok := d.memo.Get(key); ok {
		return vm
	}
	vm := BuildViewModel(r, units)
	d.memo.Set(key, vm)
	return vm
}
