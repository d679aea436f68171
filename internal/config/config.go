package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Environment Environment `env:"ENV" envDefault:"development"`
	Logger      Logger      `envPrefix:"LOGGER_"`
	HTTP        HTTP        `envPrefix:"HTTP_"`
	Storage     Storage     `envPrefix:"STORAGE_"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "SCRIBE_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
