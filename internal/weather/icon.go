package weather

import "strings"

type Icon string

const (
	IconClear   Icon = "clear"
	IconClouds  Icon = "clouds"
	IconRain    Icon = "rain"
	IconSnow    Icon = "snow"
	IconFog     Icon = "fog"
	IconThunder Icon = "thunder"
)

// IconFor buckets a condition id into an icon category. Ids outside every
// defined range fall back to substring matching on the label.
func IconFor(conditionID int, condition string) Icon {
	switch {
	case conditionID >= 200 && conditionID < 300:
		return IconThunder
	case conditionID >= 300 && conditionID < 600:
		return IconRain
	case conditionID >= 600 && conditionID < 700:
		return IconSnow
	case conditionID >= 700 && conditionID < 800:
		return IconFog
	case conditionID == 800:
		return IconClear
	case conditionID > 800:
		return IconClouds
	}

	cond := strings.ToLower(condition)
	switch {
	case strings.Contains(cond, "rain"):
		return IconRain
	case strings.Contains(cond, "cloud"):
		return IconClouds
	default:
		return IconClear
	}
}
