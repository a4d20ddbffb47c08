package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/ui"
)

// Container holds item rows in display order.
type Container struct {
	rows   []*ItemView
	styles ui.Styles
}

func NewContainer(theme ui.Theme) *Container {
	return &Container{styles: ui.StylesFor(theme)}
}

func (c *Container) Append(v *ItemView) { c.rows = append(c.rows, v) }

// Remove drops the row for id and reports whether it was there.
func (c *Container) Remove(id int) bool {
	i := c.Index(id)
	if i < 0 {
		return false
	}
	c.rows = append(c.rows[:i], c.rows[i+1:]...)
	return true
}

func (c *Container) Len() int { return len(c.rows) }

// Rows returns the rows in order. The slice must not be modified.
func (c *Container) Rows() []*ItemView { return c.rows }

// Row returns the i-th row or nil.
func (c *Container) Row(i int) *ItemView {
	if i < 0 || i >= len(c.rows) {
		return nil
	}
	return c.rows[i]
}

// Index is the position of the row for id, or -1.
func (c *Container) Index(id int) int {
	for i, r := range c.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Render draws every row. selected is -1 when the list has no focus.
func (c *Container) Render(selected, focus int) string {
	if len(c.rows) == 0 {
		return c.styles.Muted.Render("  нет дел")
	}
	nameWidth := 0
	for _, r := range c.rows {
		if w := lipgloss.Width(r.Name); w > nameWidth {
			nameWidth = w
		}
	}
	lines := make([]string, len(c.rows))
	for i, r := range c.rows {
		lines[i] = r.Render(nameWidth, i == selected, focus)
	}
	return strings.Join(lines, "\n")
}
