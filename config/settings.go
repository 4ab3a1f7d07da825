package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings is the explicit configuration object handed to services at
// construction. Everything env-driven is read once here so the matching
// pipeline itself never touches process state.
type Settings struct {
	Port         string
	MongoURI     string
	DatabaseName string
	RedisAddr    string // optional; empty disables the suggestion cache

	SecretKey      string
	AccessTokenTTL time.Duration

	IntentTTL     time.Duration
	MinMatchScore float64
	MaxCandidates int

	CORSOrigins []string
}

func LoadSettings() Settings {
	s := Settings{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017/"),
		DatabaseName:   getEnv("DATABASE_NAME", "campus_connect"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		SecretKey:      getEnv("SECRET_KEY", "dev-secret-key-12345"),
		AccessTokenTTL: time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		IntentTTL:      time.Duration(getEnvInt("INTENT_EXPIRATION_HOURS", 48)) * time.Hour,
		MinMatchScore:  float64(getEnvInt("MIN_MATCH_SCORE", 20)),
		MaxCandidates:  getEnvInt("MAX_CANDIDATES", 10),
	}

	origins := getEnv("CORS_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			s.CORSOrigins = append(s.CORSOrigins, o)
		}
	}
	return s
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
		return fallback
	}
	return n
}
