package panel

import (
	"fmt"

	"github.com/formdeck/formdeck-cli/pkg/models"
)

// Reduce computes the next state for an action. It is pure: the input
// state is never mutated, and the returned state shares no records, maps
// or slices with it.
//
// Until a SetState arrives the state is nil and every other action is a
// no-op, since there is nothing to mutate yet.
//
// A FormID outside the collection is a precondition violation: the UI
// layer must only reference ids obtained from current state, so an
// out-of-range id means a broken integration and panics.
func Reduce(state *models.CollectionState, action Action) *models.CollectionState {
	if set, ok := action.(SetState); ok {
		next := set.State.Clone()
		return &next
	}
	if state == nil {
		return nil
	}

	next := state.Clone()

	switch a := action.(type) {
	case SetForm:
		checkFormID(next.Forms, a.FormID)
		next.Forms[a.FormID] = a.Data.Clone()

	case AddForm:
		if a.Data.ID != len(next.Forms) {
			panic(fmt.Sprintf("panel: AddForm id %d, want %d (ids are allocated as the collection length)", a.Data.ID, len(next.Forms)))
		}
		next.Forms = append(next.Forms, a.Data.Clone())

	case MoveForm:
		checkFormID(next.Forms, a.FormID)
		moveForm(next.Forms, a)
	}

	return &next
}

// moveForm renumbers positions after moving one record. The requested
// position addresses a gap in the displayed list, which includes the
// moving record; removing the record first shifts every later gap down by
// one, so a target beyond the old position is decremented to keep meaning
// "insert after the same neighbour".
//
// Every other record is then shifted in a single pass: close the gap the
// record left behind, then open a gap at the destination. The shift-out
// check must run before the shift-in check so the two cannot double-count
// a record sitting between the old and new positions. Deleted records
// shift along with everyone else; they are hidden from display but their
// positions stay part of the same dense permutation.
func moveForm(forms []models.FormRecord, a MoveForm) {
	moved := &forms[a.FormID]
	previous := moved.Position
	position := a.Position
	if position > previous {
		position--
	}

	moved.Position = position
	moved.HasChanged = true
	if a.Depth > 0 {
		moved.Depth = a.Depth
	}

	for i := range forms {
		if i == a.FormID {
			continue
		}
		other := &forms[i]
		if other.Position >= previous {
			other.Position--
		}
		if other.Position >= position {
			other.Position++
		}
	}
}

func checkFormID(forms []models.FormRecord, id int) {
	if id < 0 || id >= len(forms) {
		panic(fmt.Sprintf("panel: form id %d out of range (%d forms)", id, len(forms)))
	}
}
