package cmd

import "time"

// Config carries the process configuration, loaded from the environment.
type Config struct {
	HTTPPort            string
	OrderServiceURL     string
	OrderServiceTimeout time.Duration
	CacheTTL            time.Duration
}
