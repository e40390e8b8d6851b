package config

import "os"

type Config struct {
	APIKey   string
	BaseURL  string
	Units    string
	LogLevel string
}

func Load() Config {
	return Config{
		APIKey:   getEnv("OPENWEATHER_API_KEY", ""),
		BaseURL:  getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		Units:    getEnv("WIDGET_UNITS", "metric"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
