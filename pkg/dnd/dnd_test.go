package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRejectsCrossCollectionDrops(t *testing.T) {
	session := NewSession(true)
	require.True(t, session.Begin(Source{Key: "A", FormID: 0}))

	// A gap belonging to panel B must never accept a drag from panel A,
	// even while both are live at the same time.
	assert.False(t, session.HoverOver(Target{Key: "B", Position: 1, Depth: 1}))

	_, ok := session.Drop(Target{Key: "B", Position: 1, Depth: 1})
	assert.False(t, ok, "cross-collection drop should be a no-op")
	assert.False(t, session.Active(), "session ends even on a rejected drop")
}

func TestSessionDropProducesMove(t *testing.T) {
	session := NewSession(true)
	require.True(t, session.Begin(Source{Key: "panel", FormID: 2}))

	assert.True(t, session.HoverOver(Target{Key: "panel", Position: 3, Depth: 2}))
	assert.True(t, session.IsOver(Target{Key: "panel", Position: 3, Depth: 2}))
	assert.False(t, session.IsOver(Target{Key: "panel", Position: 1, Depth: 1}))

	move, ok := session.Drop(Target{Key: "panel", Position: 3, Depth: 2})
	require.True(t, ok)
	assert.Equal(t, Move{FormID: 2, Position: 3, Depth: 2}, move)
	assert.False(t, session.Active())
}

func TestSessionBeginRequiresOrdering(t *testing.T) {
	session := NewSession(false)

	assert.False(t, session.Begin(Source{Key: "panel", FormID: 0}))
	assert.False(t, session.Active())
}

func TestSessionCancelIsNoOp(t *testing.T) {
	session := NewSession(true)
	require.True(t, session.Begin(Source{Key: "panel", FormID: 1}))
	require.True(t, session.HoverOver(Target{Key: "panel", Position: 2, Depth: 1}))

	session.Cancel()

	assert.False(t, session.Active())
	assert.False(t, session.IsOver(Target{Key: "panel", Position: 2, Depth: 1}))
}

func TestSessionDoubleBeginPanics(t *testing.T) {
	session := NewSession(true)
	require.True(t, session.Begin(Source{Key: "panel", FormID: 0}))

	assert.Panics(t, func() {
		session.Begin(Source{Key: "panel", FormID: 1})
	})
}

func TestLeaveClearsHoverWithoutEndingDrag(t *testing.T) {
	session := NewSession(true)
	require.True(t, session.Begin(Source{Key: "panel", FormID: 0}))
	require.True(t, session.HoverOver(Target{Key: "panel", Position: 1, Depth: 1}))

	session.Leave()

	assert.True(t, session.Active())
	assert.False(t, session.IsOver(Target{Key: "panel", Position: 1, Depth: 1}))
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, CollectionKey("id_relatedlinks"), KeyFor("id_relatedlinks"))

	generated := KeyFor("")
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, generated, KeyFor(""), "generated keys must be unique")
}
