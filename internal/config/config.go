package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. MySQL, Redis, RabbitMQ and JWT verification are
// all optional subsystems: when their variables are unset the server runs on
// the embedded seed catalog, skips response caching and rate limiting, and
// treats every request as the "guest" identity.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	DBUser string // database username (empty disables MySQL catalog loading)
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name

	JWTSecret string // secret used to verify externally issued JWTs (empty = guests only)

	PaymentMinINR int // smallest amount the demo payment provider accepts
	PaymentMaxINR int // largest amount the demo payment provider accepts

	DefaultRadiusKm float64 // nearby-search radius when the client omits one
}

// Load reads a .env file when present, then builds a Config from the
// environment. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Env:  must("APP_ENV"),
		Port: must("APP_PORT"),

		DBUser: os.Getenv("DB_USER"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: os.Getenv("DB_HOST"),
		DBPort: getenv("DB_PORT", "3306"),
		DBName: getenv("DB_NAME", "besturf"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		PaymentMinINR: intenv("PAYMENT_MIN_INR", 100),
		PaymentMaxINR: intenv("PAYMENT_MAX_INR", 50000),

		DefaultRadiusKm: floatenv("NEARBY_DEFAULT_RADIUS_KM", 50),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intenv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

func floatenv(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid float for %s: %q", key, v)
	}
	return f
}
