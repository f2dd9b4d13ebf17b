package config

import (
	"os"
	"strconv"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "skillswap-dev-secret-do-not-use-in-production"
	}
	JWTSecret = []byte(secret)
	JWTExpiration = expirationFromEnv()
}

// expirationFromEnv reads JWT_EXPIRATION_HOURS, falling back to 24 hours when
// unset or unusable.
func expirationFromEnv() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
