package widget

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the widget key layout. It implements help.KeyMap.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Press    key.Binding
	Done     key.Binding
	Delete   key.Binding
	Yes      key.Binding
	No       key.Binding
	NextList key.Binding
	PrevList key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "далее")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "назад")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "вверх")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "вниз")),
		Left:     key.NewBinding(key.WithKeys("left", "h")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		Press:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "нажать")),
		Done:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "готово")),
		Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "удалить")),
		Yes:      key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "да")),
		No:       key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "нет")),
		NextList: key.NewBinding(key.WithKeys("ctrl+n", "]"), key.WithHelp("ctrl+n", "след. список")),
		PrevList: key.NewBinding(key.WithKeys("ctrl+p", "["), key.WithHelp("ctrl+p", "пред. список")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "выход")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press, k.Done, k.Delete, k.NextList, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down},
		{k.Press, k.Done, k.Delete},
		{k.NextList, k.PrevList, k.Quit},
	}
}
