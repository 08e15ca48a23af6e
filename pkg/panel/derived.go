package panel

import "github.com/formdeck/formdeck-cli/pkg/models"

// Derived values mirrored into the host's management fields after every
// dispatch. They are plain functions over state so the sync layer stays a
// thin subscriber.

// LiveCount returns the number of records not flagged deleted.
func LiveCount(state *models.CollectionState) int {
	if state == nil {
		return 0
	}
	count := 0
	for _, form := range state.Forms {
		if !form.IsDeleted {
			count++
		}
	}
	return count
}

// TotalCount returns the number of records in the collection, deleted
// ones included. This matches the formset's idea of how many form
// fragments exist in the document.
func TotalCount(state *models.CollectionState) int {
	if state == nil {
		return 0
	}
	return len(state.Forms)
}

// SortOrders returns every record's position in id order, deleted records
// included, for the host's ordering field.
func SortOrders(state *models.CollectionState) []int {
	if state == nil {
		return []int{}
	}
	orders := make([]int, len(state.Forms))
	for i, form := range state.Forms {
		orders[i] = form.Position
	}
	return orders
}

// DeletedIDs returns the ids flagged deleted, in ascending id order, for
// the host's deletion field.
func DeletedIDs(state *models.CollectionState) []int {
	ids := []int{}
	if state == nil {
		return ids
	}
	for _, form := range state.Forms {
		if form.IsDeleted {
			ids = append(ids, form.ID)
		}
	}
	return ids
}
