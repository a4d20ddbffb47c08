package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/ui"
)

const (
	inputPlaceholder = "Введите название нового дела"
	submitLabel      = "Добавить дело"
)

// Form is the add-item input plus its submit button.
// The button is disabled exactly when the trimmed input is empty.
type Form struct {
	Input  textinput.Model
	Button *Control

	// OnSubmit runs on Submit; the app controller sets it.
	OnSubmit func() error

	styles ui.Styles
}

func NewForm(theme ui.Theme) *Form {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = inputPlaceholder
	ti.CharLimit = 200

	f := &Form{
		Input:  ti,
		Button: &Control{Label: submitLabel},
		styles: ui.StylesFor(theme),
	}
	f.Button.OnPress = f.Submit
	f.Refresh()
	return f
}

// Refresh re-evaluates the enable rule of the submit button.
func (f *Form) Refresh() {
	f.Button.Disabled = strings.TrimSpace(f.Input.Value()) == ""
}

func (f *Form) Value() string { return f.Input.Value() }

func (f *Form) SetValue(s string) {
	f.Input.SetValue(s)
	f.Refresh()
}

// Reset clears the input.
func (f *Form) Reset() { f.SetValue("") }

// Submit fires OnSubmit. Unlike pressing the button it ignores Disabled;
// the handler decides what an empty value means.
func (f *Form) Submit() error {
	if f.OnSubmit == nil {
		return nil
	}
	return f.OnSubmit()
}

func (f *Form) Focus() tea.Cmd { return f.Input.Focus() }
func (f *Form) Blur()          { f.Input.Blur() }
func (f *Form) Focused() bool  { return f.Input.Focused() }

// Update feeds msg to the input and re-applies the enable rule.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	f.Refresh()
	return cmd
}

// View renders the input box next to the button.
func (f *Form) View(width int, buttonFocused bool) string {
	btn := renderControl(f.styles, f.Button, buttonFocused)
	inputWidth := width - lipgloss.Width(btn) - 5
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.Input.Width = inputWidth - lipgloss.Width(f.Input.Prompt) - 1
	box := f.styles.Input.Width(inputWidth).Render(f.Input.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, box, " ", btn)
}
