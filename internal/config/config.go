package config

import (
	"os"
	"strconv"

	"bidstar/utils"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the marketplace server.
// Entity-kind rules (genre caps, trial window) live here rather than as
// inline literals so the asymmetry between artists and labels stays explicit.
type Config struct {
	Port                     string
	TrialDays                int
	TrialMaxPosts            int
	ArtistGenreLimit         int
	LabelGenreLimit          int // 0 means uncapped
	RequireActiveTrialToPost bool
}

// Load reads configuration from the environment, with an optional .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file found, using environment defaults", map[string]any{})
	}

	return Config{
		Port:                     getEnv("PORT", "8080"),
		TrialDays:                getEnvInt("TRIAL_DAYS", 20),
		TrialMaxPosts:            getEnvInt("TRIAL_MAX_POSTS", 20),
		ArtistGenreLimit:         getEnvInt("ARTIST_GENRE_LIMIT", 3),
		LabelGenreLimit:          getEnvInt("LABEL_GENRE_LIMIT", 0),
		RequireActiveTrialToPost: getEnvBool("REQUIRE_ACTIVE_TRIAL_TO_POST", false),
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.Warn("invalid integer in environment, using fallback", map[string]any{
			"key":   key,
			"value": v,
		})
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		utils.Warn("invalid boolean in environment, using fallback", map[string]any{
			"key":   key,
			"value": v,
		})
		return fallback
	}
	return b
}
