package panel

import "github.com/formdeck/formdeck-cli/pkg/models"

// Action is one of the closed set of state transitions understood by the
// reducer: SetState, SetForm, AddForm or MoveForm. The marker method keeps
// the set closed so an unhandled variant cannot exist outside this package.
type Action interface {
	isAction()
}

// SetState installs a complete snapshot, replacing whatever came before.
// It is the only action that works on a nil state and is dispatched once,
// at startup, with the host's initial snapshot.
type SetState struct {
	State models.CollectionState
}

// SetForm replaces the record at FormID with Data verbatim. Used for field
// edits, edit open/close and delete flagging. No renumbering happens; the
// caller supplies the position it read from current state.
type SetForm struct {
	FormID int
	Data   models.FormRecord
}

// AddForm appends Data to the collection. Data.ID must equal the length of
// the collection before the append. An AddForm is conventionally followed
// by a MoveForm that places the new record at the gap the user picked.
type AddForm struct {
	Data models.FormRecord
}

// MoveForm moves the record at FormID to Position, rippling every other
// record's position to keep the ordering dense. Position addresses a gap
// in the list as currently displayed, including the moving record itself.
// Depth, when positive, overwrites the moved record's nesting level;
// records nested beneath it keep their own depth.
type MoveForm struct {
	FormID   int
	Position int
	Depth    int
}

func (SetState) isAction() {}
func (SetForm) isAction()  {}
func (AddForm) isAction()  {}
func (MoveForm) isAction() {}
