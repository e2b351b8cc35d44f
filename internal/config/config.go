// Package config centralises all environment configuration for the triage API.
// It should be imported only by `cmd/` binaries (and test code). Business‑logic
// layers receive an already‑built Config instance via dependency‑injection.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime option the server needs.
// Keep it flat and simple—prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port string

	// Browser UI; empty disables static serving
	StaticDir string

	// Corpus seeding
	SeedDefaultCorpus bool
	MongoURI          string // optional; seeds guides/tickets when set
	DBName            string
	MongoTimeout      time.Duration

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load parses the environment (and an optional .env file) into Config.
// Every option has a default, so an empty environment runs the built‑in corpus.
func Load() Config {
	// godotenv.Load() is a no‑op if .env doesn't exist—safe in production.
	_ = godotenv.Load()

	return Config{
		Port:              getEnv("PORT", "3000"),
		StaticDir:         getEnv("STATIC_DIR", ""),
		SeedDefaultCorpus: getBool("SEED_DEFAULT_CORPUS", true),
		MongoURI:          getEnv("MONGODB_URI", ""),
		DBName:            getEnv("MONGODB_DB", "triage"),
		MongoTimeout:      getDuration("MONGO_TIMEOUT_SEC", 10),
		ReadTimeout:       getDuration("READ_TIMEOUT_SEC", 5),
		WriteTimeout:      getDuration("WRITE_TIMEOUT_SEC", 10),
	}
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			return time.Duration(sec) * time.Second
		}
		log.Printf("invalid %s=%q; using default %ds", key, v, defaultSec)
	}
	return time.Duration(defaultSec) * time.Second
}

// getBool reads a boolean (1/0, true/false, …) from env, falling back to defaultVal.
func getBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid %s=%q; using default %t", key, v, defaultVal)
	}
	return defaultVal
}
