package config

import (
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	HTTPPort         string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
}

func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	// In all cases the default behavior should be for the docker compose setup
	err := k.Load(confmap.Provider(map[string]interface{}{
		"http.port":         "9446",
		"postgres.address":  "localhost",
		"postgres.port":     "5433",
		"postgres.db":       "postgres",
		"postgres.username": "postgres",
		"postgres.password": "testpassword",
	}, "."), nil)
	if err != nil {
		return nil, err
	}

	// HTTP_PORT -> http.port, POSTGRES_ADDRESS -> postgres.address, etc.
	err = k.Load(env.Provider("", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	}), nil)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:         k.String("http.port"),
		PostgresAddress:  k.String("postgres.address"),
		PostgresPort:     k.String("postgres.port"),
		PostgresDB:       k.String("postgres.db"),
		PostgresUsername: k.String("postgres.username"),
		PostgresPassword: k.String("postgres.password"),
	}, nil
}
