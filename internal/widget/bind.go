package widget

import (
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/todolist"
)

// DeleteQuestion is asked before an item is removed.
const DeleteQuestion = "Вы уверены?"

// Confirmer asks the user a yes/no question and runs yes on "yes".
// Implementations may answer later (a modal) or at once (a prompt).
type Confirmer interface {
	Confirm(question string, yes func() error) error
}

// ConfirmFunc adapts a synchronous yes/no prompt to Confirmer.
type ConfirmFunc func(question string) bool

func (f ConfirmFunc) Confirm(question string, yes func() error) error {
	if !f(question) {
		return nil
	}
	return yes()
}

// Bind wires the row controls of v to the shared list.
//
// Done flips the item in list (looked up by id, so a stale row is a no-op)
// and mirrors the new state on the row. Delete asks confirm first, then
// drops the row from rows and the item from list. list persists itself.
func Bind(v *ItemView, it model.Item, list *todolist.List, confirm Confirmer, rows *Container) {
	id := it.ID

	v.DoneButton.OnPress = func() error {
		updated, found, err := list.Toggle(id)
		if !found {
			return nil
		}
		v.SetCompleted(updated.Done)
		return err
	}

	v.DeleteButton.OnPress = func() error {
		return confirm.Confirm(DeleteQuestion, func() error {
			rows.Remove(id)
			_, err := list.Remove(id)
			return err
		})
	}
}
