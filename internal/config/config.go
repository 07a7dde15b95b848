package config

import "os"

// Config holds huffpackd settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
}

// Load reads configuration from the environment.
func Load() Config {
	addr := os.Getenv("HUFFPACKD_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{Addr: addr}
}
