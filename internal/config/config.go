// Package config resolves settings for the todo binary.
//
// Sources, lowest priority first:
//  1. Defaults
//  2. TOML file (-config, $TODO_CONFIG, ./todo.toml, ./.todo.toml, then
//     <user config dir>/todo/todo.toml)
//  3. Environment variables (TODO_DATA, TODO_THEME, TODO_LOG_LEVEL)
//  4. CLI flags
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

const (
	DefaultTitle    = "Список дел"
	DefaultListKey  = "todoList"
	DefaultLogLevel = "info"
	DefaultTheme    = "classic"
	LogFileName     = "todo.log"
)

// List declares one widget: its heading and storage key.
type List struct {
	Title string `toml:"title"`
	Key   string `toml:"key"`
}

// Config is the resolved configuration.
type Config struct {
	DataDir  string `toml:"data_dir"`
	DataFile string `toml:"data_file"`
	Theme    string `toml:"theme"`
	LogLevel string `toml:"log_level"`
	// LogFile receives logs while the interactive UI owns the terminal.
	// Empty means <data dir>/todo.log.
	LogFile string `toml:"log_file"`
	Lists   []List `toml:"list"`

	// Set from flags only.
	AssumeYes  bool   `toml:"-"`
	Ephemeral  bool   `toml:"-"`
	ConfigFile string `toml:"-"`
}

type flagValues struct {
	config, data, list, title, theme, logLevel string
	yes, ephemeral                             bool
}

func registerFlags(fs *flag.FlagSet, f *flagValues) {
	fs.StringVar(&f.config, "config", "", "path to a TOML config file")
	fs.StringVar(&f.data, "data", "", "directory holding "+store.DefaultFileName)
	fs.StringVar(&f.list, "list", "", "storage key of the list (default "+DefaultListKey+")")
	fs.StringVar(&f.title, "title", "", "widget title (default "+DefaultTitle+")")
	fs.StringVar(&f.theme, "theme", "", "color theme: "+strings.Join(ui.Themes, ", "))
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&f.yes, "y", false, "answer yes to confirmation prompts")
	fs.BoolVar(&f.ephemeral, "ephemeral", false, "keep lists in memory only")
}

// Load parses args with fs and resolves the configuration. Positional
// arguments stay available through fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	var f flagValues
	registerFlags(fs, &f)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{}
	setDefaults(cfg)

	path := f.config
	if path == "" {
		path = strings.TrimSpace(os.Getenv("TODO_CONFIG"))
	}
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
	}

	loadFromEnv(cfg)
	applyFlags(cfg, fs, &f)

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.DataDir = "."
	cfg.DataFile = store.DefaultFileName
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
}

func findConfigFile() string {
	for _, name := range []string{"todo.toml", ".todo.toml"} {
		if fileExists(name) {
			return name
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "todo", "todo.toml")
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("TODO_DATA")); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
}

func applyFlags(cfg *Config, fs *flag.FlagSet, f *flagValues) {
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["data"] {
		cfg.DataDir = f.data
	}
	if set["theme"] {
		cfg.Theme = f.theme
	}
	if set["log-level"] {
		cfg.LogLevel = f.logLevel
	}
	cfg.AssumeYes = f.yes
	cfg.Ephemeral = f.ephemeral

	// -list picks a single list; -title renames it.
	switch {
	case set["list"]:
		cfg.Lists = []List{{Title: f.title, Key: f.list}}
	case set["title"] && len(cfg.Lists) > 0:
		cfg.Lists[0].Title = f.title
	case set["title"]:
		cfg.Lists = []List{{Title: f.title}}
	}
}

func finalizeConfig(cfg *Config) error {
	if err := ui.ValidTheme(cfg.Theme); err != nil {
		return err
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = store.DefaultFileName
	}
	if len(cfg.Lists) == 0 {
		cfg.Lists = []List{{}}
	}
	seen := map[string]bool{}
	for i := range cfg.Lists {
		l := &cfg.Lists[i]
		l.Key = strings.TrimSpace(l.Key)
		if l.Key == "" {
			l.Key = DefaultListKey
		}
		if l.Title == "" {
			l.Title = DefaultTitle
		}
		if seen[l.Key] {
			return fmt.Errorf("list key %q declared twice", l.Key)
		}
		seen[l.Key] = true
	}
	return nil
}

// DataPath is the storage document location.
func (c *Config) DataPath() string {
	return filepath.Join(c.DataDir, c.DataFile)
}

// LogPath is where logs go while the interactive UI runs.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, LogFileName)
}

// Level is the parsed log level.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Primary is the first declared list; CLI subcommands act on it.
func (c *Config) Primary() List {
	if len(c.Lists) == 0 {
		return List{Title: DefaultTitle, Key: DefaultListKey}
	}
	return c.Lists[0]
}
