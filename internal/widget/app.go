package widget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/todolist"
	"github.com/idilsaglam/todolist/internal/ui"
)

const (
	DefaultTitle   = "Список дел"
	DefaultListKey = "todoList"
)

// Phase is where an App is in its lifecycle. Commands move it from Ready
// to Adding, Toggling or Deleting and back within one call.
type Phase int

const (
	Uninitialized Phase = iota
	Loaded
	Ready
	Adding
	Toggling
	Deleting
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Loaded:
		return "loaded"
	case Ready:
		return "ready"
	case Adding:
		return "adding"
	case Toggling:
		return "toggling"
	case Deleting:
		return "deleting"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

type focusArea int

const (
	focusInput focusArea = iota
	focusSubmit
	focusList
)

// App is one to-do widget: title, add form and item rows over a single
// todolist.List. Several Apps can share a Page and a storage backend as
// long as their keys differ.
type App struct {
	title   string
	list    *todolist.List
	form    *Form
	rows    *Container
	confirm Confirmer

	phase    Phase
	focus    focusArea
	selected int
	control  int
	active   bool
	width    int
	err      error

	// modal confirmation, set through Confirm
	question string
	onYes    func() error

	keys   KeyMap
	help   help.Model
	theme  ui.Theme
	styles ui.Styles
	logger *log.Logger
}

type Option func(*App)

// WithConfirmer replaces the built-in modal y/n prompt.
func WithConfirmer(c Confirmer) Option { return func(a *App) { a.confirm = c } }

func WithTheme(t ui.Theme) Option { return func(a *App) { a.theme = t } }

func WithLogger(l *log.Logger) Option { return func(a *App) { a.logger = l } }

func WithKeyMap(k KeyMap) Option { return func(a *App) { a.keys = k } }

// CreateTodoApp loads the list stored under listType, builds the widget and
// attaches it to page (page may be nil). Empty title and listType fall back
// to DefaultTitle and DefaultListKey.
func CreateTodoApp(page *Page, store todolist.Persister, title, listType string, opts ...Option) *App {
	if title == "" {
		title = DefaultTitle
	}
	if listType == "" {
		listType = DefaultListKey
	}
	a := &App{
		title:   title,
		control: ControlDone,
		width:   60,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   ui.Current(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = log.Default()
	}
	if a.confirm == nil {
		a.confirm = a
	}
	a.styles = ui.StylesFor(a.theme)
	a.help.Styles.ShortKey = a.styles.Help
	a.help.Styles.ShortDesc = a.styles.Help

	a.load(store, listType)
	if page != nil {
		page.Add(a)
	}
	return a
}

func (a *App) load(store todolist.Persister, key string) {
	list, dropped := todolist.Open(store, key)
	if dropped > 0 {
		a.logger.Warn("dropped invalid stored items", "key", key, "dropped", dropped)
	}
	a.list = list
	a.phase = Loaded

	a.form = NewForm(a.theme)
	a.form.OnSubmit = a.add
	a.rows = NewContainer(a.theme)
	for _, it := range list.Items() {
		a.render(it)
	}
	a.phase = Ready
	a.logger.Debug("todo app ready", "key", key, "items", list.Len())
}

func (a *App) render(it model.Item) {
	v := NewItemView(it, a.theme)
	Bind(v, it, a.list, a.confirm, a.rows)
	a.rows.Append(v)
}

func (a *App) add() error {
	if strings.TrimSpace(a.form.Value()) == "" {
		return nil
	}
	it, err := a.list.Add(a.form.Value())
	switch {
	case errors.Is(err, todolist.ErrEmptyName), errors.Is(err, todolist.ErrDuplicateID):
		return err
	}
	// a failed save still leaves it in the list, so it is rendered too
	a.render(it)
	a.form.Reset()
	return err
}

func (a *App) Title() string              { return a.title }
func (a *App) Key() string                { return a.list.Key() }
func (a *App) List() *todolist.List       { return a.list }
func (a *App) Form() *Form                { return a.form }
func (a *App) Rows() *Container           { return a.rows }
func (a *App) Phase() Phase               { return a.phase }
func (a *App) Err() error                 { return a.err }
func (a *App) Confirming() (string, bool) { return a.question, a.onYes != nil }

// Typing reports whether keystrokes currently go to the text input.
func (a *App) Typing() bool { return a.active && a.focus == focusInput }

// Submit runs the add flow with the current input value.
func (a *App) Submit() error { return a.dispatch(Adding, a.form.Submit) }

// Toggle presses "Готово" on the row for id.
func (a *App) Toggle(id int) error {
	row := a.rows.Row(a.rows.Index(id))
	if row == nil {
		return nil
	}
	return a.dispatch(Toggling, row.DoneButton.Press)
}

// Delete presses "Удалить" on the row for id. With the built-in confirmer
// this only opens the prompt; Answer finishes it.
func (a *App) Delete(id int) error {
	row := a.rows.Row(a.rows.Index(id))
	if row == nil {
		return nil
	}
	return a.dispatch(Deleting, row.DeleteButton.Press)
}

// Confirm implements Confirmer with a modal prompt drawn by View.
func (a *App) Confirm(question string, yes func() error) error {
	a.question, a.onYes = question, yes
	return nil
}

// Answer resolves a pending Confirm.
func (a *App) Answer(yes bool) error {
	fn := a.onYes
	a.question, a.onYes = "", nil
	if fn == nil || !yes {
		return nil
	}
	err := a.dispatch(Deleting, fn)
	a.clampSelection()
	return err
}

func (a *App) dispatch(p Phase, fn func() error) error {
	a.phase = p
	err := fn()
	a.phase = Ready
	if err != nil {
		a.err = err
		a.logger.Error("command failed", "key", a.list.Key(), "phase", p, "err", err)
	}
	return err
}

// SetActive gives the widget keyboard focus or takes it away.
func (a *App) SetActive(on bool) tea.Cmd {
	a.active = on
	if on && a.focus == focusInput {
		return a.form.Focus()
	}
	a.form.Blur()
	return nil
}

// Update handles one message. It runs to completion before the next one.
func (a *App) Update(msg tea.Msg) tea.Cmd {
	if a.err != nil {
		return nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		return nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	if a.focus == focusInput {
		return a.form.Update(msg)
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.onYes != nil {
		switch {
		case key.Matches(msg, a.keys.Yes):
			_ = a.Answer(true)
		case key.Matches(msg, a.keys.No):
			_ = a.Answer(false)
		}
		return a.clampSelection()
	}

	switch {
	case key.Matches(msg, a.keys.Next):
		return a.moveFocus(1)
	case key.Matches(msg, a.keys.Prev):
		return a.moveFocus(-1)
	}

	switch a.focus {
	case focusInput:
		if key.Matches(msg, a.keys.Press) {
			_ = a.Submit()
			return nil
		}
		return a.form.Update(msg)
	case focusSubmit:
		if key.Matches(msg, a.keys.Press, a.keys.Done) {
			_ = a.dispatch(Adding, a.form.Button.Press)
		}
		return nil
	}

	row := a.rows.Row(a.selected)
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.selected > 0 {
			a.selected--
		}
	case key.Matches(msg, a.keys.Down):
		if a.selected < a.rows.Len()-1 {
			a.selected++
		}
	case key.Matches(msg, a.keys.Left):
		a.control = ControlDone
	case key.Matches(msg, a.keys.Right):
		a.control = ControlDelete
	case row == nil:
	case key.Matches(msg, a.keys.Press):
		a.press(row, a.control)
	case key.Matches(msg, a.keys.Done):
		a.press(row, ControlDone)
	case key.Matches(msg, a.keys.Delete):
		a.press(row, ControlDelete)
	}
	return a.clampSelection()
}

func (a *App) press(row *ItemView, control int) {
	p := Toggling
	if control == ControlDelete {
		p = Deleting
	}
	_ = a.dispatch(p, row.Control(control).Press)
}

// clampSelection keeps the selected row valid; an emptied list hands focus
// back to the input.
func (a *App) clampSelection() tea.Cmd {
	n := a.rows.Len()
	if a.selected >= n {
		a.selected = n - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
	if n == 0 && a.focus == focusList {
		a.focus = focusInput
		if a.active {
			return a.form.Focus()
		}
	}
	return nil
}

func (a *App) moveFocus(delta int) tea.Cmd {
	areas := []focusArea{focusInput, focusSubmit}
	if a.rows.Len() > 0 {
		areas = append(areas, focusList)
	}
	cur := 0
	for i, f := range areas {
		if f == a.focus {
			cur = i
		}
	}
	a.focus = areas[(cur+delta+len(areas))%len(areas)]
	if a.focus == focusInput && a.active {
		return a.form.Focus()
	}
	a.form.Blur()
	return nil
}

func (a *App) View() string {
	s, t := a.styles, a.theme
	done, pending := a.list.Stats()

	lines := []string{
		fmt.Sprintf("%s   %s %d  %s %d  %s %d",
			s.Title.Render(a.title),
			s.Success.Render(t.SymDone), done,
			s.Pending.Render(t.SymUnchecked), pending,
			s.Accent.Render("Всего"), a.list.Len(),
		),
		s.Muted.Render(ui.ProgressBar(done, done+pending, 28)),
		"",
		a.form.View(a.width, a.active && a.focus == focusSubmit),
		"",
	}

	selected := -1
	if a.active && a.focus == focusList {
		selected = a.selected
	}
	lines = append(lines, a.rows.Render(selected, a.control))

	if a.onYes != nil {
		lines = append(lines, "", s.Modal.Render(a.question+"\n"+s.Help.Render("y да • n нет")))
	}
	if a.err != nil {
		lines = append(lines, "", s.Error.Render("✖ "+a.err.Error()))
	}
	if a.active {
		lines = append(lines, "", a.help.ShortHelpView(a.keys.ShortHelp()))
	}
	return strings.Join(lines, "\n")
}
