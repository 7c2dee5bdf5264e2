// Package config loads and manages the taskpad configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

const (
	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = "TASKPAD_CONFIG_PATH"

	// DefaultFileName is the CWD-relative configuration file.
	DefaultFileName = ".taskpad.yaml"
)

// defaultConfigYAML is the content written by Init on first run.
const defaultConfigYAML = `# Taskpad configuration

# Default persister: a file path (csv, json, xml) or a database
# connection string (sqlite:///path, mongodb://host, :memory:).
persister: tasks.csv

# Mutation policies.
force_drop: false
force_copy: false
drop_after_copy: false
`

// Path returns the configuration file location following the precedence
// chain: TASKPAD_CONFIG_PATH env > $(CWD)/.taskpad.yaml.
func Path() string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultFileName
}

// Load reads the configuration file at Path. A missing file is not an
// error; defaults apply for every key the file does not set.
func Load() (types.Config, error) {
	cfg := types.DefaultConfig()

	v := viper.New()
	v.SetConfigFile(Path())
	v.SetConfigType("yaml")
	v.SetDefault("persister", cfg.Persister)
	v.SetDefault("force_drop", cfg.ForceDrop)
	v.SetDefault("force_copy", cfg.ForceCopy)
	v.SetDefault("drop_after_copy", cfg.DropAfterCopy)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// Init creates the default configuration file at Path if it does not
// exist. An existing file is left untouched (idempotent).
func Init() error {
	path := Path()

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// Remove deletes the configuration file at Path.
func Remove() error {
	if err := os.Remove(Path()); err != nil {
		return fmt.Errorf("remove config file: %w", err)
	}
	return nil
}
