package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Row control indexes, in render order.
const (
	ControlNone   = -1
	ControlDone   = 0
	ControlDelete = 1
)

const (
	doneLabel   = "Готово"
	deleteLabel = "Удалить"
)

// ItemView is the rendered row of one item and its two controls.
type ItemView struct {
	ID   int
	Name string

	DoneButton   *Control
	DeleteButton *Control

	completed bool
	theme     ui.Theme
	styles    ui.Styles
}

// NewItemView builds the row for it. The item itself is copied, never kept.
func NewItemView(it model.Item, theme ui.Theme) *ItemView {
	v := &ItemView{
		ID:           it.ID,
		Name:         it.Name,
		DoneButton:   &Control{Label: doneLabel},
		DeleteButton: &Control{Label: deleteLabel, Danger: true},
		theme:        theme,
		styles:       ui.StylesFor(theme),
	}
	if it.Done {
		v.SetCompleted(true)
	}
	return v
}

// Completed reports the "completed" marker.
func (v *ItemView) Completed() bool { return v.completed }

func (v *ItemView) SetCompleted(done bool) { v.completed = done }

// Control returns the control at idx (ControlDone or ControlDelete).
func (v *ItemView) Control(idx int) *Control {
	switch idx {
	case ControlDone:
		return v.DoneButton
	case ControlDelete:
		return v.DeleteButton
	}
	return nil
}

// Render draws the row. nameWidth pads the name column; focus is the
// highlighted control or ControlNone.
func (v *ItemView) Render(nameWidth int, selected bool, focus int) string {
	box := v.styles.Muted.Render(v.theme.BoxUnchecked)
	name := v.Name
	if v.completed {
		box = v.styles.Success.Render(v.theme.BoxChecked)
		name = v.styles.Completed.Render(name)
	}
	if pad := nameWidth - lipgloss.Width(v.Name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}

	prefix := "  "
	if selected {
		prefix = v.styles.Selected.Render(">") + " "
	}
	return fmt.Sprintf("%s%s %s  %s %s", prefix, box, name,
		renderControl(v.styles, v.DoneButton, selected && focus == ControlDone),
		renderControl(v.styles, v.DeleteButton, selected && focus == ControlDelete))
}

func renderControl(s ui.Styles, c *Control, focused bool) string {
	label := "[" + c.Label + "]"
	switch {
	case c.Disabled:
		return s.ButtonDisabled.Render(label)
	case c.Danger && focused:
		return s.DangerFocused.Render(label)
	case c.Danger:
		return s.Danger.Render(label)
	case focused:
		return s.ButtonFocused.Render(label)
	}
	return s.Button.Render(label)
}
