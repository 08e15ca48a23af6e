package panel

import (
	"sort"

	"github.com/formdeck/formdeck-cli/pkg/models"
)

// SlotKind discriminates entries in a display plan.
type SlotKind int

const (
	// GapSlot is an insertion point between cards: an add affordance
	// normally, a drop target while a drag is in progress.
	GapSlot SlotKind = iota
	// CardSlot is a live record.
	CardSlot
)

// Slot is one entry in the rendered card list.
type Slot struct {
	Kind SlotKind

	// Position is the insertion position a gap stands for (1-based, over
	// the displayed list including the card that would be moved).
	Position int

	// Depth is the nesting level at which a gap inserts, or the card's
	// own level. Always >= 1.
	Depth int

	// Record is set for CardSlot entries.
	Record models.FormRecord
}

// Plan is the display layout for one render pass: live cards interleaved
// with gaps, and deleted cards kept off the main flow. Deleted records
// still render (hidden) so their form fragments stay in the document and
// get submitted, which is how the host learns which ids to remove.
type Plan struct {
	Slots   []Slot
	Deleted []models.FormRecord
}

// BuildSlots lays out the records for display. It sorts a copy by
// position (stored order is never touched), drops deleted records out of
// the main flow, and interleaves gaps: one before every card, extra
// "end of children" gaps whenever nesting steps down from one card to the
// next (one per level, so every depth keeps an addressable trailing
// insertion point), matching close-out gaps after the last card, and a
// bottom gap at depth 1.
//
// In flat panels every card and gap sits at depth 1 and only the plain
// between-card gaps appear.
func BuildSlots(forms []models.FormRecord, nested bool) Plan {
	sorted := make([]models.FormRecord, len(forms))
	copy(sorted, forms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	var plan Plan
	position := 1
	lastDepth := 1

	for _, form := range sorted {
		if form.IsDeleted {
			plan.Deleted = append(plan.Deleted, form)
			continue
		}

		depth := cardDepth(form, nested)

		for lastDepth > depth {
			plan.Slots = append(plan.Slots, Slot{Kind: GapSlot, Position: position, Depth: lastDepth})
			lastDepth--
		}

		plan.Slots = append(plan.Slots, Slot{Kind: GapSlot, Position: position, Depth: depth})
		position++

		plan.Slots = append(plan.Slots, Slot{Kind: CardSlot, Record: form, Depth: depth})
		lastDepth = depth
	}

	for lastDepth > 1 {
		plan.Slots = append(plan.Slots, Slot{Kind: GapSlot, Position: position, Depth: lastDepth})
		lastDepth--
	}

	plan.Slots = append(plan.Slots, Slot{Kind: GapSlot, Position: position, Depth: 1})

	return plan
}

func cardDepth(form models.FormRecord, nested bool) int {
	if !nested || form.Depth < 1 {
		return 1
	}
	return form.Depth
}
