package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrConfigExists is returned by WriteExample when the target exists.
var ErrConfigExists = errors.New("config file already exists")

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todo configuration file
# Values can be overridden by environment variables or CLI flags

# Directory holding the storage document (TODO_DATA)
data_dir = "."

# Storage document name
data_file = "todos.json"

# classic, neon or mono (TODO_THEME)
theme = "classic"

# debug, info, warn or error (TODO_LOG_LEVEL)
log_level = "info"

# Log file used while the interactive UI is open (default <data_dir>/todo.log)
# log_file = "/tmp/todo.log"

# One [[list]] per widget. Keys must be unique.
[[list]]
title = "Мои дела"
key = "my"

[[list]]
title = "Дела папы"
key = "dad"

[[list]]
title = "Дела мамы"
key = "mom"
`
}

// WriteExample writes ExampleConfig to path unless something is there.
func WriteExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrConfigExists)
	}
	if err := os.WriteFile(path, []byte(ExampleConfig()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Encode renders the resolved configuration as TOML.
func (c *Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("toml encode: %w", err)
	}
	return buf.String(), nil
}
