// Package dnd negotiates drag-and-drop gestures between cards and gaps.
//
// Sources and targets are keyed by a per-panel collection key; a drop is
// only ever accepted when both ends carry the same key, so two panels on
// the same page can never cross-accept each other's drags. The check
// lives here, in the negotiation layer, not in application code.
package dnd

import (
	"fmt"

	"github.com/google/uuid"
)

// CollectionKey identifies one panel's drag domain.
type CollectionKey string

// NewCollectionKey returns a fresh unique key for integrations that do
// not bring their own.
func NewCollectionKey() CollectionKey {
	return CollectionKey(uuid.NewString())
}

// KeyFor derives a panel's key from its formset prefix, the conventional
// choice, or a fresh unique key when there is no prefix.
func KeyFor(prefix string) CollectionKey {
	if prefix == "" {
		return NewCollectionKey()
	}
	return CollectionKey(prefix)
}

// Source is a dragged card. The payload is the record id; everything else
// about the record is looked up from state at drop time.
type Source struct {
	Key    CollectionKey
	FormID int
}

// Target is a gap's address: the insertion position it stands for and, in
// nested panels, the depth at which it inserts.
type Target struct {
	Key      CollectionKey
	Position int
	Depth    int
}

// Move is the structural intent produced by a completed drop, ready to be
// dispatched as a MoveForm action.
type Move struct {
	FormID   int
	Position int
	Depth    int
}

// Session is the modal drag negotiation for one panel. At most one drag
// is in flight at a time; a gesture fully completes or is cancelled
// before any other mutation can happen.
type Session struct {
	canOrder bool
	active   bool
	source   Source
	hover    *Target
}

// NewSession returns a session for a panel. When ordering is disabled no
// drag can begin and every card stops being a drag source.
func NewSession(canOrder bool) *Session {
	return &Session{canOrder: canOrder}
}

// Begin starts a drag from src. It reports whether the drag was accepted;
// drags are rejected wholesale when ordering is disabled. Beginning while
// another drag is active is a programming error.
func (s *Session) Begin(src Source) bool {
	if !s.canOrder {
		return false
	}
	if s.active {
		panic(fmt.Sprintf("dnd: drag already active for form %d", s.source.FormID))
	}
	s.active = true
	s.source = src
	s.hover = nil
	return true
}

// Active reports whether a drag is in flight.
func (s *Session) Active() bool {
	return s.active
}

// Dragging returns the active drag's source.
func (s *Session) Dragging() (Source, bool) {
	return s.source, s.active
}

// HoverOver records the pointer entering a gap and reports whether the
// gap accepts this drag. Gaps of a different collection never accept.
func (s *Session) HoverOver(target Target) bool {
	if !s.accepts(target) {
		return false
	}
	t := target
	s.hover = &t
	return true
}

// Leave clears the hover target, e.g. when the pointer moves off a gap.
func (s *Session) Leave() {
	s.hover = nil
}

// IsOver reports whether target is the current hover target, which is
// what flips a gap into its placeholder appearance.
func (s *Session) IsOver(target Target) bool {
	return s.hover != nil && *s.hover == target
}

// Drop completes the drag on target. When the target accepts, it returns
// the structural move to dispatch; otherwise the gesture was released
// outside a valid target and state stays untouched. Either way the
// session ends.
func (s *Session) Drop(target Target) (Move, bool) {
	defer s.Cancel()
	if !s.accepts(target) {
		return Move{}, false
	}
	return Move{
		FormID:   s.source.FormID,
		Position: target.Position,
		Depth:    target.Depth,
	}, true
}

// Cancel abandons the drag with no effect on state.
func (s *Session) Cancel() {
	s.active = false
	s.hover = nil
}

func (s *Session) accepts(target Target) bool {
	return s.active && target.Key == s.source.Key
}
