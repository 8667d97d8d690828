package config

import "codeberg.org/algorave/errorpages/internal/i18n"

type Config struct {
	Port               string
	Environment        string
	DefaultLanguage    i18n.Language
	CORSAllowedOrigins []string
	RateLimit          string
	RedisURL           string
	TrustedProxies     []string // nil trusts no proxy
}

// reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

type PreviewFlags struct {
	Language string
	Status   int
	Details  string
	JSON     bool
}
