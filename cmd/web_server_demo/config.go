package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type config struct {
	// AuthURL is the full authorization URL issued for the integration,
	// carrying client_id, redirect_uri and scope as query parameters.
	AuthURL      string `env:"WEBEX_AUTH_URL,required,notEmpty"`
	ClientSecret string `env:"WEBEX_CLIENT_SECRET,required,notEmpty"`

	// State overrides the anti-replay state value. When empty a random one
	// is generated at startup.
	State string `env:"WEBEX_STATE"`

	Port int `env:"PORT" envDefault:"8080"`

	// SessionSecret keys the session cookie store. When empty a random one
	// is generated at startup, which invalidates cookies across restarts.
	SessionSecret string `env:"SESSION_SECRET"`

	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`
}

func loadConfig() (*config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse environment: %w", err)
	}

	return &cfg, nil
}
