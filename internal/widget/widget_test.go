package widget_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/todolist"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/widget"
)

func monoTheme(t *testing.T) ui.Theme {
	t.Helper()
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })
	return ui.Current()
}

func TestItemViewCompletedMarker(t *testing.T) {
	th := monoTheme(t)

	v := widget.NewItemView(model.Item{ID: 1, Name: "Buy milk"}, th)
	require.False(t, v.Completed())
	require.Contains(t, v.Render(0, false, widget.ControlNone), "[ ] Buy milk")
	require.Contains(t, v.Render(0, false, widget.ControlNone), "[Готово]")
	require.Contains(t, v.Render(0, false, widget.ControlNone), "[Удалить]")

	done := widget.NewItemView(model.Item{ID: 2, Name: "Walk", Done: true}, th)
	require.True(t, done.Completed())
	require.Contains(t, done.Render(0, false, widget.ControlNone), "[x]")

	done.SetCompleted(false)
	require.Contains(t, done.Render(0, false, widget.ControlNone), "[ ]")
}

func TestItemViewDoesNotTouchItem(t *testing.T) {
	it := model.Item{ID: 3, Name: "a", Done: true}
	v := widget.NewItemView(it, ui.Current())
	v.SetCompleted(false)
	v.Name = "b"
	require.Equal(t, model.Item{ID: 3, Name: "a", Done: true}, it)
}

func TestFormEnableRule(t *testing.T) {
	f := widget.NewForm(ui.Current())
	require.True(t, f.Button.Disabled, "disabled at construction")

	f.SetValue("   ")
	require.True(t, f.Button.Disabled)

	f.SetValue(" a ")
	require.False(t, f.Button.Disabled)

	f.Reset()
	require.Equal(t, "", f.Value())
	require.True(t, f.Button.Disabled)
}

func TestFormDisabledButtonDoesNotSubmit(t *testing.T) {
	f := widget.NewForm(ui.Current())
	calls := 0
	f.OnSubmit = func() error { calls++; return nil }

	require.NoError(t, f.Button.Press())
	require.Zero(t, calls)

	f.SetValue("x")
	require.NoError(t, f.Button.Press())
	require.Equal(t, 1, calls)
}

func TestContainer(t *testing.T) {
	th := monoTheme(t)
	c := widget.NewContainer(th)
	require.Contains(t, c.Render(-1, widget.ControlNone), "нет дел")

	for i, name := range []string{"a", "bb", "ccc"} {
		c.Append(widget.NewItemView(model.Item{ID: i + 1, Name: name}, th))
	}
	require.Equal(t, 3, c.Len())
	require.Equal(t, 1, c.Index(2))
	require.True(t, c.Remove(2))
	require.False(t, c.Remove(2))
	require.Equal(t, -1, c.Index(2))
	require.Nil(t, c.Row(5))
	require.Equal(t, 3, c.Row(1).ID)
	require.Contains(t, c.Render(1, widget.ControlDone), "> [ ] ccc")
}

func bound(t *testing.T, confirm widget.Confirmer, names ...string) (*todolist.List, *widget.Container, *memPersister) {
	t.Helper()
	p := &memPersister{data: map[string][]model.Item{}}
	list, _ := todolist.Open(p, "todoList")
	rows := widget.NewContainer(ui.Current())
	for _, n := range names {
		it, err := list.Add(n)
		require.NoError(t, err)
		v := widget.NewItemView(it, ui.Current())
		widget.Bind(v, it, list, confirm, rows)
		rows.Append(v)
	}
	return list, rows, p
}

func yes(string) bool { return true }
func no(string) bool  { return false }

func TestBindDone(t *testing.T) {
	list, rows, p := bound(t, widget.ConfirmFunc(yes), "a", "b")
	row := rows.Row(1)

	require.NoError(t, row.DoneButton.Press())
	require.True(t, row.Completed())
	require.True(t, p.data["todoList"][1].Done)

	require.NoError(t, row.DoneButton.Press())
	require.False(t, row.Completed())
	require.False(t, p.data["todoList"][1].Done)
	require.Equal(t, 2, list.Len())
}

func TestBindDoneAfterItemGone(t *testing.T) {
	list, rows, p := bound(t, widget.ConfirmFunc(yes), "a")
	row := rows.Row(0)
	_, err := list.Remove(1)
	require.NoError(t, err)
	saves := p.saves

	require.NoError(t, row.DoneButton.Press())
	require.False(t, row.Completed())
	require.Equal(t, saves, p.saves, "no write for a missing id")
}

func TestBindDelete(t *testing.T) {
	var asked string
	confirm := widget.ConfirmFunc(func(q string) bool { asked = q; return true })
	list, rows, p := bound(t, confirm, "a", "b", "c")

	require.NoError(t, rows.Row(1).DeleteButton.Press())
	require.Equal(t, widget.DeleteQuestion, asked)
	require.Equal(t, 2, rows.Len())
	require.Equal(t, -1, rows.Index(2))
	require.Equal(t, []model.Item{{ID: 1, Name: "a"}, {ID: 3, Name: "c"}}, list.Items())
	require.Equal(t, list.Items(), p.data["todoList"])
}

func TestBindDeleteDeclined(t *testing.T) {
	list, rows, p := bound(t, widget.ConfirmFunc(no), "a")
	saves := p.saves

	require.NoError(t, rows.Row(0).DeleteButton.Press())
	require.Equal(t, 1, rows.Len())
	require.Equal(t, 1, list.Len())
	require.Equal(t, saves, p.saves)
}

type memPersister struct {
	data  map[string][]model.Item
	saves int
	err   error
}

func (m *memPersister) Load(key string) []model.Item { return m.data[key] }

func (m *memPersister) Save(key string, items []model.Item) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.data[key] = items
	return nil
}
