package config

import (
	"os"
	"time"
)

// Pagination defaults applied when the query string carries no usable value.
const (
	DefaultLimit = 10
	DefaultSkip  = 0
)

// TokenLifetime is how long an issued session token stays valid.
const TokenLifetime = 10 * time.Hour

func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}
