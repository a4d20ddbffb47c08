package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/widget"
)

// Options carry the resolved config plus optional overrides for tests.
type Options struct {
	Config  *config.Config
	Storage store.Storage // nil: file at Config.DataPath(), memory with -ephemeral
	Logger  *log.Logger   // nil: built from Config
	Stdin   io.Reader     // answers to confirmation prompts; nil means os.Stdin
}

type env struct {
	cfg    *config.Config
	store  *jsonstore.Store
	logger *log.Logger
	in     *bufio.Reader
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// No subcommand opens the interactive widget.
func Run(args []string, opt Options) int {
	cmd, a := "ui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "ui", "ls", "add", "done", "rm", "lists", "config":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(os.Stderr)
		PrintHelp()
		return 2
	}

	e, closeLog, err := newEnv(cmd, opt)
	if err != nil {
		ui.Fail("setup: " + err.Error())
		return 1
	}
	defer closeLog()

	switch cmd {
	case "ui":
		return e.doUI()

	case "ls":
		group := len(a) == 1 && (a[0] == "-g" || a[0] == "--group")
		if len(a) > 0 && !group {
			ui.Fail("usage: todo ls [--group]")
			return 2
		}
		return e.doList(group)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: todo add <name...>")
			return 2
		}
		return e.doAdd(strings.Join(a, " "))

	case "done", "rm":
		if len(a) != 1 {
			ui.Fail("usage: todo " + cmd + " <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(cmd + ": not a number: " + a[0])
			return 2
		}
		if cmd == "done" {
			return e.doToggle(id)
		}
		return e.doRemove(id)

	case "lists":
		return e.doLists()
	}

	// config
	switch {
	case len(a) == 0:
		return e.doShowConfig()
	case a[0] == "init" && len(a) <= 2:
		path := "todo.toml"
		if len(a) == 2 {
			path = a[1]
		}
		return doInitConfig(path)
	}
	ui.Fail("usage: todo config [init [path]]")
	return 2
}

func PrintHelp() {
	fmt.Printf(`todo - a tiny to-do list widget

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  ui                 Open the interactive widget(s) (default)
  ls [--group]       List items
  add <name...>      Add a new item (name can be multiple words)
  done <id>          Toggle done for the item with this id
  rm <id>            Remove the item with this id (asks first; -y skips)
  lists              Show stored list keys
  config [init]      Print the resolved config, or write an example todo.toml

Flags:
  -config <path>   -data <dir>   -list <key>   -title <text>
  -theme <name>    -log-level <level>   -y   -ephemeral

Examples:
  todo add "Buy milk"
  todo ls
  todo done 2
  todo -list dad rm 3
`)
}

func newEnv(cmd string, opt Options) (*env, func(), error) {
	cfg := opt.Config
	closeLog := func() {}

	logger := opt.Logger
	if logger == nil {
		var out io.Writer = os.Stderr
		if cmd == "ui" {
			// the alt screen owns the terminal; keep logs off it
			p := cfg.LogPath()
			if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
				return nil, closeLog, fmt.Errorf("log dir: %w", err)
			}
			f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, closeLog, fmt.Errorf("open log: %w", err)
			}
			out, closeLog = f, func() { f.Close() }
		}
		logger = log.NewWithOptions(out, log.Options{
			Level:           cfg.Level(),
			Prefix:          "todo",
			ReportTimestamp: cmd == "ui",
		})
	}

	kv := opt.Storage
	if kv == nil {
		if cfg.Ephemeral {
			kv = store.NewMemory()
		} else {
			kv = store.NewFile(cfg.DataPath(), store.WithLogger(logger))
		}
	}

	in := opt.Stdin
	if in == nil {
		in = os.Stdin
	}
	return &env{
		cfg:    cfg,
		store:  jsonstore.New(kv, logger),
		logger: logger,
		in:     bufio.NewReader(in),
	}, closeLog, nil
}

// app builds a headless widget over the primary list so CLI commands go
// through the same add/toggle/delete handlers as the interactive UI.
func (e *env) app() *widget.App {
	l := e.cfg.Primary()
	return widget.CreateTodoApp(nil, e.store, l.Title, l.Key,
		widget.WithLogger(e.logger),
		widget.WithTheme(ui.Current()),
		widget.WithConfirmer(widget.ConfirmFunc(e.confirm)))
}

func (e *env) confirm(question string) bool {
	if e.cfg.AssumeYes {
		return true
	}
	ui.Printf("%s [y/N] ", question)
	line, err := e.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		e.logger.Warn("read answer", "err", err)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}

// -------------- subcommand impls ----------------

func (e *env) doUI() int {
	page := widget.NewPage()
	for _, l := range e.cfg.Lists {
		widget.CreateTodoApp(page, e.store, l.Title, l.Key,
			widget.WithLogger(e.logger),
			widget.WithTheme(ui.Current()))
	}
	if err := widget.Run(page, tea.WithAltScreen()); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func (e *env) doList(group bool) int {
	l := e.cfg.Primary()
	items := e.store.Load(l.Key)
	t := ui.Current()

	d, p := stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, l.Title),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymUnchecked), p,
		ui.C(t.Accent, "Всего"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Совет: новое дело добавляет `todo add \"Купить молоко\"`"))
	ui.Panel(lines)
	return 0
}

func (e *env) doAdd(name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		ui.Fail("add: пустое название")
		return 2
	}
	a := e.app()
	a.Form().SetValue(name)
	if err := a.Submit(); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	items := a.List().Items()
	ui.OK(fmt.Sprintf("добавлено #%d", items[len(items)-1].ID))
	return 0
}

func (e *env) doToggle(id int) int {
	a := e.app()
	if !e.exists(a, id) {
		return 2
	}
	if err := a.Toggle(id); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	it, _ := a.List().Get(id)
	if it.Done {
		ui.OK("выполнено")
	} else {
		ui.OK("не выполнено")
	}
	return 0
}

func (e *env) doRemove(id int) int {
	a := e.app()
	if !e.exists(a, id) {
		return 2
	}
	if err := a.Delete(id); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	if _, still := a.List().Get(id); still {
		ui.Println(ui.C(ui.Current().Muted, "оставлено"))
		return 0
	}
	ui.OK("удалено")
	return 0
}

func (e *env) exists(a *widget.App, id int) bool {
	if _, ok := a.List().Get(id); ok {
		return true
	}
	ui.Fail(fmt.Sprintf("нет дела с id %d в списке %q", id, a.Key()))
	ui.Hint("Подсказка: `todo ls` покажет доступные id")
	return false
}

func (e *env) doLists() int {
	keys, err := e.store.Keys()
	if err != nil {
		ui.Fail("lists: " + err.Error())
		return 1
	}
	if len(keys) == 0 {
		ui.Println(ui.C(ui.Current().Muted, "нет списков"))
		return 0
	}
	for _, k := range keys {
		ui.Println(k)
	}
	return 0
}

func (e *env) doShowConfig() int {
	out, err := e.cfg.Encode()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.Printf("%s", out)
	return 0
}

func doInitConfig(path string) int {
	if err := config.WriteExample(path); err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	ui.OK("записан " + path)
	return 0
}

// -------------- rendering helpers --------------

func stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "нет дел")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		idx := fmt.Sprintf("%2d.", it.ID)
		box := t.BoxUnchecked
		color := t.Muted
		if it.Done {
			box, color = t.BoxChecked, t.Success
		}
		name := it.Name
		if len([]rune(name)) > 80 {
			name = string([]rune(name)[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C("\033[2m", idx), ui.C(color, box), name))
	}
	return out
}

func groupLines(items []model.Item) []string {
	t := ui.Current()
	var pend, done []model.Item
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, ui.C(t.Accent, "В работе"))
	if len(pend) == 0 {
		lines = append(lines, ui.C(t.Muted, "(нет)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Accent, "Выполнено"))
	if len(done) == 0 {
		lines = append(lines, ui.C(t.Muted, "(нет)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
