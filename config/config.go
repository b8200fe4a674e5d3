package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config returns the value of the given key from .env, falling back to the
// process environment when no .env file is present.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Print("[CONFIG] no .env file, using process environment")
		}
	})
	return os.Getenv(key)
}

// ConfigDefault returns the value of key, or def when the key is unset.
func ConfigDefault(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

// Int reads key as an integer, falling back to def on missing or bad values.
func Int(key string, def int) int {
	v := Config(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[CONFIG] %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}

// Bool reads key as a boolean ("true", "1", "yes" count as true).
func Bool(key string, def bool) bool {
	v := Config(key)
	if v == "" {
		return def
	}
	switch v {
	case "true", "TRUE", "True", "1", "yes":
		return true
	case "false", "FALSE", "False", "0", "no":
		return false
	}
	log.Printf("[CONFIG] %s=%q is not a boolean, using %v", key, v, def)
	return def
}

// Seconds reads key as a number of seconds and returns it as a Duration.
func Seconds(key string, def time.Duration) time.Duration {
	v := Config(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[CONFIG] %s=%q is not a positive number of seconds, using %s", key, v, def)
		return def
	}
	return time.Duration(n) * time.Second
}
