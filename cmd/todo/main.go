package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = cli.PrintHelp
	cfg, err := config.Load(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}
	ui.SetTheme(cfg.Theme)

	// Hand the remaining args to the CLI runner.
	code := cli.Run(fs.Args(), cli.Options{Config: cfg})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
