package weather

import "strings"

type tempBucket int

const (
	bucketCold tempBucket = iota // < 6 °C
	bucketCool                   // 6–16
	bucketMild                   // 16–24
	bucketWarm                   // 24–32
	bucketHot                    // >= 32
)

// bucketFor buckets a Celsius temperature. Boundaries are lower-inclusive:
// 6 is cool, 16 is mild, 24 is warm, 32 is hot.
func bucketFor(celsius float64) tempBucket {
	switch {
	case celsius < 6:
		return bucketCold
	case celsius < 16:
		return bucketCool
	case celsius < 24:
		return bucketMild
	case celsius < 32:
		return bucketWarm
	default:
		return bucketHot
	}
}

type moodRule struct {
	keywords []string
	phrases  [5]string // indexed by tempBucket
}

// Rule order matters: the first keyword found in the condition label wins.
var moodRules = []moodRule{
	{[]string{"clear"}, [5]string{"Bitter & Brilliant", "Crisp & Clear", "Perfectly Sunny", "Warm & Golden", "Blazing Sunshine"}},
	{[]string{"cloud"}, [5]string{"Cold & Grey", "Cool & Cloudy", "Mild & Overcast", "Warm & Muggy", "Hot Under Heavy Skies"}},
	{[]string{"rain", "drizzle"}, [5]string{"Freezing Rain", "Chilly Rain", "Mild Rain", "Warm Rain", "Tropical Rain"}},
	{[]string{"snow"}, [5]string{"Deep Winter Snow", "Soft Snowfall", "Slushy Snow", "Unlikely Snow", "Impossible Snow"}},
	{[]string{"thunder"}, [5]string{"Icy Thunderstorms", "Brooding Thunder", "Rolling Thunder", "Electric & Sultry", "Violent Summer Storms"}},
	{[]string{"mist", "fog"}, [5]string{"Freezing Fog", "Cold Mist", "Soft Haze", "Warm Haze", "Shimmering Heat Haze"}},
}

// Fallback when no condition keyword matches.
var neutralMoods = [5]string{"Bundle Up", "Light Jacket Weather", "Comfortably Mild", "Pleasantly Warm", "Scorching"}

const (
	moodLightRain = "A Gentle Drizzle"
	moodHeavyRain = "Serious Rain, Stay Dry"
)

// Classify maps a condition label, its description and a Celsius temperature
// to a short mood phrase. Callers holding Fahrenheit must convert first.
func Classify(condition, description string, tempCelsius float64) string {
	bucket := bucketFor(tempCelsius)

	base := neutralMoods[bucket]
	cond := strings.ToLower(condition)
rules:
	for _, rule := range moodRules {
		for _, kw := range rule.keywords {
			if strings.Contains(cond, kw) {
				base = rule.phrases[bucket]
				break rules
			}
		}
	}

	// Overrides apply to rainy base phrases only; "light" wins over
	// "heavy"/"shower" when both appear.
	if strings.Contains(strings.ToLower(base), "rain") {
		desc := strings.ToLower(description)
		if strings.Contains(desc, "light") {
			return moodLightRain
		}
		if strings.Contains(desc, "heavy") || strings.Contains(desc, "shower") {
			return moodHeavyRain
		}
	}
	return base
}
