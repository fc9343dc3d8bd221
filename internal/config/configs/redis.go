package configs

// Redis configures the optional status change publisher. An empty URL
// disables publishing.
type Redis struct {
	// URL is a redis:// connection string understood by redis.ParseURL.
	URL string `env:"URL"`
	// Channel is the pub/sub channel status changes are published on.
	Channel string `env:"CHANNEL" envDefault:"keywords.status_changed"`
}

// Enabled reports whether a Redis URL was configured.
func (c Redis) Enabled() bool {
	return c.URL != ""
}
