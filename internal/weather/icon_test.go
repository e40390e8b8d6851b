package weather

import "testing"

func TestIconFor_Ranges(t *testing.T) {
	cases := []struct {
		id   int
		want Icon
	}{
		{200, IconThunder},
		{232, IconThunder},
		{299, IconThunder},
		{300, IconRain},
		{502, IconRain},
		{599, IconRain},
		{600, IconSnow},
		{622, IconSnow},
		{699, IconSnow},
		{700, IconFog},
		{741, IconFog},
		{799, IconFog},
		{800, IconClear},
		{801, IconClouds},
		{804, IconClouds},
		{950, IconClouds},
	}
	for _, tc := range cases {
		got := IconFor(tc.id, "ignored")
		if got != tc.want {
			t.Errorf("IconFor(%d) = %q, want %q", tc.id, got, tc.want)
		}
		if again := IconFor(tc.id, "ignored"); again != got {
			t.Errorf("IconFor(%d) not stable: %q then %q", tc.id, got, again)
		}
	}
}

func TestIconFor_LabelFallback(t *testing.T) {
	cases := []struct {
		id        int
		condition string
		want      Icon
	}{
		{0, "Rain", IconRain},
		{0, "light rain", IconRain},
		{0, "Clouds", IconClouds},
		{0, "Clear", IconClear},
		{0, "", IconClear},
		{0, "Volcanic ash", IconClear},
		{199, "cloudy", IconClouds},
		{-1, "rainy", IconRain},
	}
	for _, tc := range cases {
		got := IconFor(tc.id, tc.condition)
		if got != tc.want {
			t.Errorf("IconFor(%d, %q) = %q, want %q", tc.id, tc.condition, got, tc.want)
		}
	}
}
