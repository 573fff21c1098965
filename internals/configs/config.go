package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string

	// Token lifetimes are deployment knobs, not a fixed contract.
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Media serving
	MediaRoot    string // disk root for uploads
	MediaBaseURL string // absolute prefix exposed to clients, e.g. https://api.x.org/media
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	AccessTokenTTL = getDuration("JWT_ACCESS_TTL", 30*time.Minute)
	RefreshTokenTTL = getDuration("JWT_REFRESH_TTL", 720*time.Hour)

	MediaRoot = GetEnv("MEDIA_ROOT", "./media")
	MediaBaseURL = GetEnv("MEDIA_BASE_URL", "/media")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️ %s=%q is not a duration, using default %s", key, v, def)
		return def
	}
	return d
}
