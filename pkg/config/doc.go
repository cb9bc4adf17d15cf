// Package config loads typed configuration from the environment.
//
// Structs are described with github.com/caarlos0/env/v11 tags. A .env file
// in the working directory, when present, is read once with
// github.com/joho/godotenv before the first parse. Load caches the result
// per type so packages can ask for their own config without re-parsing:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Parse skips the cache and accepts an explicit variable map, which keeps
// tests independent of the process environment.
package config
