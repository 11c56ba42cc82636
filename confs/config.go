package confs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present
// and validates essential settings.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	// Tokens cannot be signed or verified without a secret, so a missing
	// JWT_SECRET must stop the process here instead of failing per request.
	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}

	return nil
}

// JWTSecret returns the configured token signing key.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}
