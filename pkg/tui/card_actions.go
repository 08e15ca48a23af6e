package tui

import (
	"github.com/formdeck/formdeck-cli/pkg/models"
)

// CardActionKind identifies one of the built-in card actions.
type CardActionKind string

const (
	ActionEdit          CardActionKind = "edit"
	ActionClose         CardActionKind = "close"
	ActionDelete        CardActionKind = "delete"
	ActionDeleteConfirm CardActionKind = "delete-confirm"
	ActionDeleteCancel  CardActionKind = "delete-cancel"
	ActionCopy          CardActionKind = "copy"
	ActionMove          CardActionKind = "move"
)

// CardAction is one entry in a card's action list, shown as a key hint in
// the card's header row.
type CardAction struct {
	Kind  CardActionKind
	Key   string
	Label string
}

// CustomiseActionsFunc lets an integration append to or alter the action
// list for a card before it renders.
type CustomiseActionsFunc func(models.FormRecord, []CardAction) []CardAction

// cardActions assembles the action list for a record. While a delete
// confirmation is armed it replaces every other action, customisations
// included.
func cardActions(record models.FormRecord, canEdit, canDelete, canOrder, confirmingDelete bool, customise CustomiseActionsFunc) []CardAction {
	if canDelete && confirmingDelete {
		return []CardAction{
			{Kind: ActionDeleteConfirm, Key: "y", Label: "delete"},
			{Kind: ActionDeleteCancel, Key: "n", Label: "keep"},
		}
	}

	var actions []CardAction
	if canEdit {
		if record.IsEditing {
			actions = append(actions, CardAction{Kind: ActionClose, Key: "e", Label: "close"})
		} else {
			actions = append(actions, CardAction{Kind: ActionEdit, Key: "e", Label: "edit"})
		}
	}
	if canDelete && !record.IsDeleted {
		actions = append(actions, CardAction{Kind: ActionDelete, Key: "d", Label: "delete"})
	}
	if canOrder && !record.IsDeleted {
		actions = append(actions, CardAction{Kind: ActionMove, Key: "m", Label: "move"})
	}
	actions = append(actions, CardAction{Kind: ActionCopy, Key: "c", Label: "copy"})

	if customise != nil {
		actions = customise(record, actions)
	}
	return actions
}
