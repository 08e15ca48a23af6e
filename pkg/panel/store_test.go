package panel

import (
	"testing"

	"github.com/formdeck/formdeck-cli/pkg/models"
)

func TestStoreDispatchNotifiesInOrder(t *testing.T) {
	store := NewStore()

	var order []string
	store.Subscribe(func(*models.CollectionState) { order = append(order, "first") })
	store.Subscribe(func(*models.CollectionState) { order = append(order, "second") })

	store.Dispatch(SetState{State: makeState(1)})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("listener order = %v", order)
	}
}

func TestStoreStateNilBeforeSetState(t *testing.T) {
	store := NewStore()

	if store.State() != nil {
		t.Fatal("fresh store should have nil state")
	}

	if got := store.Dispatch(MoveForm{FormID: 0, Position: 1}); got != nil {
		t.Errorf("dispatch before SetState = %v, want nil", got)
	}
}

func TestStoreListenersSeeNewState(t *testing.T) {
	store := NewStore()
	store.Dispatch(SetState{State: makeState(1, 2)})

	var seen []int
	store.Subscribe(func(state *models.CollectionState) {
		seen = positionsByID(state)
	})

	store.Dispatch(MoveForm{FormID: 1, Position: 1})

	if len(seen) != 2 || seen[0] != 2 || seen[1] != 1 {
		t.Errorf("listener saw positions %v, want [2 1]", seen)
	}
	if got := store.State(); got == nil || got.Forms[1].Position != 1 {
		t.Error("store did not retain the dispatched state")
	}
}
