package config

import "os"

type Environment struct {
	IsDevelopment bool
	Auth0Domain   string
	Auth0Audience string
	SentryDSN     string
}

// LoadEnvironment reads settings from the environment. Called from main
// after godotenv has run, unlike a package init, so .env values are visible.
func LoadEnvironment() Environment {
	return Environment{
		IsDevelopment: os.Getenv("APP_ENV") != "production",
		Auth0Domain:   os.Getenv("AUTH0_DOMAIN"),
		Auth0Audience: os.Getenv("AUTH0_AUDIENCE"),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
	}
}
