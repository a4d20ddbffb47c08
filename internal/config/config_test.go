package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	for _, k := range []string{"TODO_CONFIG", "TODO_DATA", "TODO_THEME", "TODO_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return dir
}

func load(t *testing.T, args ...string) (*Config, *flag.FlagSet, error) {
	t.Helper()
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	cfg, err := Load(fs, args)
	return cfg, fs, err
}

func TestDefaults(t *testing.T) {
	isolate(t)
	cfg, fs, err := load(t, "ls")
	require.NoError(t, err)
	require.Equal(t, []string{"ls"}, fs.Args())
	require.Equal(t, []List{{Title: DefaultTitle, Key: DefaultListKey}}, cfg.Lists)
	require.Equal(t, filepath.Join(".", "todos.json"), cfg.DataPath())
	require.Equal(t, filepath.Join(".", "todo.log"), cfg.LogPath())
	require.Equal(t, log.InfoLevel, cfg.Level())
	require.Equal(t, "", cfg.ConfigFile)
}

func TestProjectFileEnvAndFlags(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("todo.toml", []byte(ExampleConfig()), 0o644))
	t.Setenv("TODO_THEME", "neon")
	t.Setenv("TODO_DATA", "/from/env")

	cfg, _, err := load(t, "-data", "/from/flag", "-log-level", "debug", "ui")
	require.NoError(t, err)
	require.Equal(t, "todo.toml", cfg.ConfigFile)
	require.Equal(t, "neon", cfg.Theme)
	require.Equal(t, "/from/flag", cfg.DataDir)
	require.Equal(t, log.DebugLevel, cfg.Level())
	require.Len(t, cfg.Lists, 3)
	require.Equal(t, List{Title: "Дела папы", Key: "dad"}, cfg.Lists[1])
	require.Equal(t, "my", cfg.Primary().Key)
}

func TestListFlagsOverrideFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("todo.toml", []byte(ExampleConfig()), 0o644))

	cfg, _, err := load(t, "-list", "work")
	require.NoError(t, err)
	require.Equal(t, []List{{Title: DefaultTitle, Key: "work"}}, cfg.Lists)

	cfg, _, err = load(t, "-title", "Покупки")
	require.NoError(t, err)
	require.Equal(t, List{Title: "Покупки", Key: "my"}, cfg.Primary())
}

func TestExplicitConfigPath(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(p, []byte("theme = \"mono\"\n[[list]]\nkey = \"x\"\n"), 0o644))

	cfg, _, err := load(t, "-config", p)
	require.NoError(t, err)
	require.Equal(t, "mono", cfg.Theme)
	require.Equal(t, []List{{Title: DefaultTitle, Key: "x"}}, cfg.Lists)
}

func TestInvalidConfig(t *testing.T) {
	dir := isolate(t)
	cases := map[string]string{
		"unknown key":  "colour = \"red\"\n",
		"bad theme":    "theme = \"solarized\"\n",
		"bad level":    "log_level = \"loud\"\n",
		"dup keys":     "[[list]]\nkey = \"a\"\n[[list]]\nkey = \"a\"\n",
		"broken toml":  "theme = \n",
		"default dups": "[[list]]\ntitle = \"one\"\n[[list]]\ntitle = \"two\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, "bad.toml")
			require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
			_, _, err := load(t, "-config", p)
			require.Error(t, err)
		})
	}
}

func TestWriteExample(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "todo.toml")
	require.NoError(t, WriteExample(p))
	require.ErrorIs(t, WriteExample(p), ErrConfigExists)

	cfg, _, err := load(t)
	require.NoError(t, err)
	out, err := cfg.Encode()
	require.NoError(t, err)
	require.Contains(t, out, `key = "mom"`)
	require.NotContains(t, out, "AssumeYes")
}
