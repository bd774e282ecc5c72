package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	AllowedOrigins string
)

// TrustedProxies parses TRUSTED_PROXIES (comma-separated IPs/CIDRs) into the
// ranges whose X-Forwarded-For the server believes. Unset, it covers only
// loopback and the private ranges the platform's edge proxies sit in, so a
// direct client cannot spoof its IP past the rate limiters.
func TrustedProxies() []string {
	raw := GetEnv("TRUSTED_PROXIES")
	if strings.TrimSpace(raw) == "" {
		return []string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AllowedOrigins = GetEnv("ALLOWED_ORIGINS")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set! Admin routes will reject every request.")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
