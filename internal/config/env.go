package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ulule/limiter/v3"

	"codeberg.org/algorave/errorpages/internal/i18n"
)

const (
	defaultPort      = "8080"
	defaultRateLimit = "100-M"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	port := os.Getenv("PORT")
	environment := os.Getenv("ENVIRONMENT")
	defaultLang := os.Getenv("DEFAULT_LANGUAGE")
	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	rateLimit := os.Getenv("RATE_LIMIT")

	if port == "" {
		port = defaultPort
	}

	if environment == "" {
		environment = "development"
	}

	lang := i18n.En
	if defaultLang != "" {
		parsed, ok := i18n.ParseLanguage(defaultLang)
		if !ok {
			return nil, fmt.Errorf("DEFAULT_LANGUAGE %q is not supported", defaultLang)
		}

		lang = parsed
	}

	if rateLimit == "" {
		rateLimit = defaultRateLimit
	}

	if _, err := limiter.NewRateFromFormatted(rateLimit); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT %q is invalid: %w", rateLimit, err)
	}

	return &Config{
		Port:               port,
		Environment:        environment,
		DefaultLanguage:    lang,
		CORSAllowedOrigins: splitList(origins, []string{"*"}),
		RateLimit:          rateLimit,
		RedisURL:           os.Getenv("REDIS_URL"),
		TrustedProxies:     splitList(os.Getenv("TRUSTED_PROXIES"), nil),
	}, nil
}

func splitList(value string, fallback []string) []string {
	var out []string

	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	if len(out) == 0 {
		return fallback
	}

	return out
}
