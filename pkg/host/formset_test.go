package host

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formdeck/formdeck-cli/pkg/models"
	"github.com/formdeck/formdeck-cli/pkg/panel"
)

func snapshot(positions ...int) models.CollectionState {
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

func TestFormsetBindMirrorsFields(t *testing.T) {
	store := panel.NewStore()
	store.Dispatch(panel.SetState{State: snapshot(1, 2, 3)})

	fields := &FieldValues{}
	fs := &Formset{Prefix: "id_related", CanOrder: true, Log: zerolog.Nop()}
	fs.Bind(store, fields)

	// Bound fields are written immediately, before any user action.
	assert.Equal(t, "3", fields.TotalForms)
	assert.Equal(t, "[1,2,3]", fields.SortOrder)
	assert.Equal(t, "[]", fields.Deleted)

	// Deleting a record updates the count and the deleted ids.
	deleted := store.State().Forms[1].WithDeleted()
	store.Dispatch(panel.SetForm{FormID: 1, Data: deleted})

	assert.Equal(t, "2", fields.TotalForms)
	assert.Equal(t, "[1]", fields.Deleted)
	assert.Equal(t, "[1,2,3]", fields.SortOrder, "deleting must not renumber")

	// Moving rewrites the order field.
	store.Dispatch(panel.MoveForm{FormID: 2, Position: 1})
	assert.Equal(t, "[2,3,1]", fields.SortOrder)
}

func TestFormsetWithoutOrderingSkipsSortField(t *testing.T) {
	store := panel.NewStore()
	store.Dispatch(panel.SetState{State: snapshot(1)})

	fields := &FieldValues{}
	fs := &Formset{Prefix: "id_related", CanOrder: false, Log: zerolog.Nop()}
	fs.Bind(store, fields)

	assert.Equal(t, "1", fields.TotalForms)
	assert.Empty(t, fields.SortOrder)
}

func TestFormsetMaterializeForm(t *testing.T) {
	fs := &Formset{Prefix: "id_related", Template: testTemplate, Log: zerolog.Nop()}

	fragment, err := fs.MaterializeForm(models.FormRecord{ID: 4, Fields: map[string]string{}})
	require.NoError(t, err)

	markup, err := fragment.Render()
	require.NoError(t, err)
	assert.Contains(t, markup, `id="id_related-4-title"`)
}
