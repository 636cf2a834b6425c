// Package config loads locgen settings from environment variables.
//
// Structs are described with `env` and `envDefault` tags
// (github.com/caarlos0/env/v11) and parsed once per type; optional .env files
// are read with github.com/joho/godotenv. Command-line flags are applied on
// top of the loaded value by the caller:
//
//	if err := config.LoadEnv(c.String("env-file")); err != nil {
//		return err
//	}
//	var cfg Settings
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	if c.IsSet("target") {
//		cfg.Target = c.String("target")
//	}
//
// ResetCache clears parsed values; tests use it after changing the
// environment.
package config
