package panel

import (
	"sort"
	"testing"

	"github.com/formdeck/formdeck-cli/pkg/models"
)

func makeState(positions ...int) models.CollectionState {
	state := models.EmptyState()
	for i, pos := range positions {
		state.Forms = append(state.Forms, models.FormRecord{
			ID:       i,
			Position: pos,
			Fields:   map[string]string{},
			Extra:    map[string]any{},
		})
	}
	return state
}

func positionsByID(state *models.CollectionState) []int {
	out := make([]int, len(state.Forms))
	for i, f := range state.Forms {
		out[i] = f.Position
	}
	return out
}

func assertDensePositions(t *testing.T, state *models.CollectionState) {
	t.Helper()
	positions := positionsByID(state)
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	for i, p := range sorted {
		if p != i+1 {
			t.Fatalf("positions %v are not a dense permutation of 1..%d", positions, len(positions))
		}
	}
}

func TestReduceIgnoresActionsBeforeSetState(t *testing.T) {
	actions := []Action{
		SetForm{FormID: 0, Data: models.FormRecord{}},
		AddForm{Data: models.FormRecord{}},
		MoveForm{FormID: 0, Position: 1},
	}

	for _, action := range actions {
		if got := Reduce(nil, action); got != nil {
			t.Errorf("Reduce(nil, %T) = %v, want nil", action, got)
		}
	}
}

func TestReduceSetStateInstallsSnapshot(t *testing.T) {
	initial := makeState(1, 2)

	state := Reduce(nil, SetState{State: initial})
	if state == nil {
		t.Fatal("SetState on nil state should install the snapshot")
	}
	if len(state.Forms) != 2 {
		t.Fatalf("forms = %d, want 2", len(state.Forms))
	}

	// The installed state must not alias the snapshot.
	state.Forms[0].Fields["title"] = "mutated"
	if _, ok := initial.Forms[0].Fields["title"]; ok {
		t.Error("installed state aliases the snapshot")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	prev := makeState(1, 2, 3)

	next := Reduce(&prev, MoveForm{FormID: 0, Position: 3})

	if got := positionsByID(&prev); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("input state mutated: %v", got)
	}
	if next == &prev {
		t.Error("reducer returned its input")
	}
}

func TestReduceSetFormReplacesVerbatim(t *testing.T) {
	state := makeState(1, 2)

	data := state.Forms[1].Clone()
	data.IsDeleted = true
	next := Reduce(&state, SetForm{FormID: 1, Data: data})

	if !next.Forms[1].IsDeleted {
		t.Error("SetForm did not replace the record")
	}
	if next.Forms[1].Position != 2 {
		t.Errorf("SetForm must not renumber: position = %d", next.Forms[1].Position)
	}
	if next.Forms[1].ID != 1 {
		t.Errorf("id changed to %d", next.Forms[1].ID)
	}
}

func TestReduceAddFormAppends(t *testing.T) {
	state := makeState(1)

	rec := state.NewRecord(1, 2, 1)
	next := Reduce(&state, AddForm{Data: rec})

	if len(next.Forms) != 2 {
		t.Fatalf("forms = %d, want 2", len(next.Forms))
	}
	if next.Forms[1].ID != 1 {
		t.Errorf("appended id = %d, want 1", next.Forms[1].ID)
	}
	assertDensePositions(t, next)
}

func TestReduceAddFormRejectsWrongID(t *testing.T) {
	state := makeState(1)

	defer func() {
		if recover() == nil {
			t.Error("AddForm with a stale id should panic")
		}
	}()
	Reduce(&state, AddForm{Data: models.FormRecord{ID: 5, Position: 2}})
}

func TestReduceMoveFormScenarios(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		move      MoveForm
		want      []int // expected positions by id
	}{
		{
			name:      "move to own position is a no-op for everyone",
			positions: []int{1},
			move:      MoveForm{FormID: 0, Position: 1},
			want:      []int{1},
		},
		{
			name:      "second form moved to the front",
			positions: []int{1, 2},
			move:      MoveForm{FormID: 1, Position: 1},
			want:      []int{2, 1},
		},
		{
			name:      "first of three moved to the end gap",
			positions: []int{1, 2, 3},
			move:      MoveForm{FormID: 0, Position: 3},
			want:      []int{2, 1, 3},
		},
		{
			name:      "last of three moved to the front",
			positions: []int{1, 2, 3},
			move:      MoveForm{FormID: 2, Position: 1},
			want:      []int{2, 3, 1},
		},
		{
			name:      "move forward past the whole list",
			positions: []int{1, 2, 3},
			move:      MoveForm{FormID: 0, Position: 4},
			want:      []int{3, 1, 2},
		},
		{
			name:      "middle stays put when target equals own slot",
			positions: []int{1, 2, 3},
			move:      MoveForm{FormID: 1, Position: 2},
			want:      []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := makeState(tt.positions...)
			next := Reduce(&state, tt.move)

			got := positionsByID(next)
			for id, want := range tt.want {
				if got[id] != want {
					t.Errorf("positions by id = %v, want %v", got, tt.want)
					break
				}
			}
			assertDensePositions(t, next)
			if !next.Forms[tt.move.FormID].HasChanged {
				t.Error("moved record should be flagged as changed")
			}
		})
	}
}

func TestReduceMoveFormShiftsDeletedRecords(t *testing.T) {
	state := makeState(1, 2, 3)
	state.Forms[1].IsDeleted = true

	next := Reduce(&state, MoveForm{FormID: 2, Position: 1})

	// The deleted record keeps a consistent position inside the same
	// dense permutation even though it is hidden from display.
	assertDensePositions(t, next)
	if got := positionsByID(next); got[2] != 1 {
		t.Errorf("positions by id = %v, want moved record at 1", got)
	}
	if !next.Forms[1].IsDeleted {
		t.Error("deletion flag lost during move")
	}
}

func TestReduceMoveFormDepth(t *testing.T) {
	state := makeState(1, 2)
	state.Forms[0].Depth = 1
	state.Forms[1].Depth = 2

	next := Reduce(&state, MoveForm{FormID: 0, Position: 2, Depth: 2})

	if next.Forms[0].Depth != 2 {
		t.Errorf("moved depth = %d, want 2", next.Forms[0].Depth)
	}
	// Other records keep their own depth; descendants do not follow a
	// moving parent.
	if next.Forms[1].Depth != 2 {
		t.Errorf("sibling depth changed to %d", next.Forms[1].Depth)
	}
}

func TestReduceMoveFormZeroDepthLeavesDepth(t *testing.T) {
	state := makeState(1, 2)
	state.Forms[0].Depth = 3

	next := Reduce(&state, MoveForm{FormID: 0, Position: 2})

	if next.Forms[0].Depth != 3 {
		t.Errorf("flat move rewrote depth to %d", next.Forms[0].Depth)
	}
}

func TestReduceMoveFormOutOfRangePanics(t *testing.T) {
	state := makeState(1)

	defer func() {
		if recover() == nil {
			t.Error("out-of-range form id should panic")
		}
	}()
	Reduce(&state, MoveForm{FormID: 7, Position: 1})
}

// The ordering invariant must hold after every action in any add/move
// sequence, and ids must keep matching their array index throughout.
func TestReduceActionSequencesKeepInvariants(t *testing.T) {
	state := Reduce(nil, SetState{State: makeState(1, 2, 3)})

	script := []Action{
		MoveForm{FormID: 0, Position: 4},
		AddForm{Data: state.NewRecord(3, 4, 1)},
		MoveForm{FormID: 3, Position: 2},
		MoveForm{FormID: 1, Position: 5},
		AddForm{Data: state.NewRecord(4, 5, 1)},
		MoveForm{FormID: 4, Position: 1},
		MoveForm{FormID: 2, Position: 3},
		MoveForm{FormID: 2, Position: 3},
	}

	for i, action := range script {
		// AddForm ids were precomputed for this script; keep them honest.
		if add, ok := action.(AddForm); ok && add.Data.ID != len(state.Forms) {
			t.Fatalf("script step %d allocates id %d, want %d", i, add.Data.ID, len(state.Forms))
		}

		state = Reduce(state, action)

		assertDensePositions(t, state)
		for idx, form := range state.Forms {
			if form.ID != idx {
				t.Fatalf("step %d: id %d at index %d", i, form.ID, idx)
			}
		}
	}
}
