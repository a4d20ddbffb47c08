package cli_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/ui"
)

type harness struct {
	t      *testing.T
	kv     store.Storage
	cfg    *config.Config
	stdin  string
	out    bytes.Buffer
	errOut bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ui.SetTheme("mono")
	h := &harness{
		t:  t,
		kv: store.NewMemory(),
		cfg: &config.Config{
			DataDir:  t.TempDir(),
			DataFile: store.DefaultFileName,
			Theme:    "mono",
			LogLevel: "info",
			Lists:    []config.List{{Title: config.DefaultTitle, Key: config.DefaultListKey}},
		},
	}
	ui.SetOutput(&h.out, &h.errOut)
	t.Cleanup(func() {
		ui.SetOutput(nil, nil)
		ui.SetTheme("classic")
	})
	return h
}

func (h *harness) run(args ...string) int {
	h.out.Reset()
	h.errOut.Reset()
	return cli.Run(args, cli.Options{
		Config:  h.cfg,
		Storage: h.kv,
		Logger:  log.New(io.Discard),
		Stdin:   strings.NewReader(h.stdin),
	})
}

func (h *harness) items() []model.Item {
	return jsonstore.New(h.kv, log.New(io.Discard)).Load(config.DefaultListKey)
}

func TestAddAndList(t *testing.T) {
	h := newHarness(t)

	require.Equal(t, 0, h.run("add", "Buy", "milk"))
	require.Contains(t, h.out.String(), "добавлено #1")
	require.Equal(t, 0, h.run("add", "Walk the dog"))
	require.Equal(t, []model.Item{{ID: 1, Name: "Buy milk"}, {ID: 2, Name: "Walk the dog"}}, h.items())

	require.Equal(t, 0, h.run("ls"))
	out := h.out.String()
	require.Contains(t, out, "Список дел")
	require.Contains(t, out, " 1. [ ] Buy milk")
	require.Contains(t, out, " 2. [ ] Walk the dog")
}

func TestAddEmpty(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 2, h.run("add"))
	require.Equal(t, 2, h.run("add", "  "))
	require.Contains(t, h.errOut.String(), "пустое название")
	require.Empty(t, h.items())
}

func TestDone(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("add", "a"))

	require.Equal(t, 0, h.run("done", "1"))
	require.True(t, h.items()[0].Done)
	require.Equal(t, 0, h.run("ls", "--group"))
	require.Contains(t, h.out.String(), "Выполнено")
	require.Contains(t, h.out.String(), " 1. [x] a")

	require.Equal(t, 0, h.run("done", "1"))
	require.False(t, h.items()[0].Done)

	require.Equal(t, 2, h.run("done", "7"))
	require.Contains(t, h.errOut.String(), "нет дела с id 7")
	require.Equal(t, 2, h.run("done", "one"))
	require.Equal(t, 2, h.run("done"))
}

func TestRemoveAsksFirst(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("add", "a"))
	require.Equal(t, 0, h.run("add", "b"))

	h.stdin = "n\n"
	require.Equal(t, 0, h.run("rm", "2"))
	require.Contains(t, h.out.String(), "Вы уверены? [y/N]")
	require.Contains(t, h.out.String(), "оставлено")
	require.Len(t, h.items(), 2)

	h.stdin = ""
	require.Equal(t, 0, h.run("rm", "2"))
	require.Len(t, h.items(), 2, "EOF means no")

	h.stdin = "да\n"
	require.Equal(t, 0, h.run("rm", "2"))
	require.Contains(t, h.out.String(), "удалено")
	require.Equal(t, []model.Item{{ID: 1, Name: "a"}}, h.items())

	require.Equal(t, 2, h.run("rm", "2"))
}

func TestRemoveAssumeYes(t *testing.T) {
	h := newHarness(t)
	h.cfg.AssumeYes = true
	require.Equal(t, 0, h.run("add", "a"))
	require.Equal(t, 0, h.run("rm", "1"))
	require.NotContains(t, h.out.String(), "[y/N]")
	require.Empty(t, h.items())
}

func TestListsAndOtherKeys(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("lists"))
	require.Contains(t, h.out.String(), "нет списков")

	require.Equal(t, 0, h.run("add", "mine"))
	h.cfg.Lists = []config.List{{Title: "Дела папы", Key: "dad"}}
	require.Equal(t, 0, h.run("add", "his"))

	require.Equal(t, 0, h.run("lists"))
	require.Equal(t, "dad\ntodoList\n", h.out.String())
	require.Len(t, h.items(), 1)
}

func TestConfigCommand(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("config"))
	require.Contains(t, h.out.String(), `key = "todoList"`)
	require.Equal(t, 2, h.run("config", "bogus"))
}

func TestUsageErrors(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 2, h.run("frobnicate"))
	require.Contains(t, h.errOut.String(), "unknown subcommand")
	require.Equal(t, 2, h.run("ls", "extra"))
}

type fullStorage struct{ *store.Memory }

func (fullStorage) Set(string, string) error { return errors.New("quota exceeded") }

func TestSaveFailure(t *testing.T) {
	h := newHarness(t)
	h.kv = fullStorage{store.NewMemory()}
	require.Equal(t, 1, h.run("add", "a"))
	require.Contains(t, h.errOut.String(), "quota exceeded")
}
