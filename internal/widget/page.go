package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/ui"
)

// Page hosts independent to-do widgets and routes keys to the active one.
// It is the Bubble Tea model handed to tea.NewProgram.
type Page struct {
	apps   []*App
	active int
	keys   KeyMap
	width  int
	err    error
	styles ui.Styles
}

func NewPage() *Page {
	return &Page{keys: DefaultKeyMap(), styles: ui.StylesFor(ui.Current())}
}

// Add attaches a. The first widget added gets keyboard focus.
func (p *Page) Add(a *App) {
	p.apps = append(p.apps, a)
	if len(p.apps) == 1 {
		a.SetActive(true)
	}
}

func (p *Page) Apps() []*App { return p.apps }

// Active returns the focused widget, or nil on an empty page.
func (p *Page) Active() *App {
	if len(p.apps) == 0 {
		return nil
	}
	return p.apps[p.active]
}

// Err is the persistence error that stopped the page, if any.
func (p *Page) Err() error { return p.err }

func (p *Page) Init() tea.Cmd { return textinput.Blink }

func (p *Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	active := p.Active()
	if active == nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return p, tea.Quit
		}
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		inner := tea.WindowSizeMsg{Width: msg.Width - 4, Height: msg.Height}
		for _, a := range p.apps {
			a.Update(inner)
		}
		return p, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return p, tea.Quit
		}
		if _, asking := active.Confirming(); !asking {
			typed := msg.Type == tea.KeyRunes && active.Typing()
			switch {
			case key.Matches(msg, p.keys.Quit):
				return p, tea.Quit
			case key.Matches(msg, p.keys.NextList) && !typed:
				return p, p.switchTo(p.active + 1)
			case key.Matches(msg, p.keys.PrevList) && !typed:
				return p, p.switchTo(p.active - 1)
			}
		}
	}

	cmd := active.Update(msg)
	if err := active.Err(); err != nil {
		p.err = err
		return p, tea.Quit
	}
	return p, cmd
}

func (p *Page) switchTo(i int) tea.Cmd {
	n := len(p.apps)
	i = (i%n + n) % n
	if i == p.active {
		return nil
	}
	p.apps[p.active].SetActive(false)
	p.active = i
	return p.apps[i].SetActive(true)
}

func (p *Page) View() string {
	parts := make([]string, 0, len(p.apps))
	for i, a := range p.apps {
		frame := p.styles.Frame
		if i == p.active {
			frame = p.styles.FrameActive
		}
		if p.width > 4 {
			frame = frame.Width(p.width - 2)
		}
		parts = append(parts, frame.Render(a.View()))
	}
	return strings.Join(parts, "\n")
}

// Run drives the page until the user quits or a save fails; the failed
// save is returned.
func Run(p *Page, opts ...tea.ProgramOption) error {
	if _, err := tea.NewProgram(p, opts...).Run(); err != nil {
		return err
	}
	return p.Err()
}
