// Package config resolves the session settings from, in order of precedence,
// QUILL_* environment variables, an optional config file and built-in
// defaults. A .env file in the working directory is folded into the
// environment first.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultPort = 4816

type Config struct {
	Editor  string
	Port    int
	DataDir string
}

// Load reads the configuration. A missing config file is fine, a malformed
// one is not.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("quill")
	v.AutomaticEnv()
	v.SetDefault("port", defaultPort)
	v.SetDefault("editor", os.Getenv("EDITOR"))

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return Config{
		Editor:  v.GetString("editor"),
		Port:    v.GetInt("port"),
		DataDir: v.GetString("data_dir"),
	}, nil
}

func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quill"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "quill"), nil
}
