package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env into the process environment. Missing file is fine — the
// system environment is used as-is.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️ No .env file found — using system environment variables")
	} else {
		log.Println("✅ .env file loaded")
	}
}

// Port returns the listening port, defaulting to the original shop's 8000.
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return port
}

// BaseURL is the public origin used to build the payment callback URLs.
func BaseURL() string {
	if base := os.Getenv("BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:" + Port()
}
