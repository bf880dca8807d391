package supplements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopCompleter(HistoryView, string) []Completion { return nil }

func TestCursorSingleValueSlots(t *testing.T) {
	positionals := []Positional{
		{ID: SingleValueID(1, "A"), Completer: noopCompleter, MaxValues: 1},
		{ID: SingleValueID(2, "B"), Completer: noopCompleter, MaxValues: 1},
	}
	c := NewCursor(positionals, nil)

	assert.False(t, c.HasConsumedAny())
	slot, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "A", slot.ID.Name)
	assert.True(t, c.HasConsumedAny())

	slot, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, "B", slot.ID.Name)

	_, ok = c.Next()
	assert.False(t, ok)
}

func TestCursorMultiValueSlot(t *testing.T) {
	positionals := []Positional{
		{ID: MultiValueID(1, "D"), Completer: noopCompleter, MaxValues: 2},
	}
	c := NewCursor(positionals, nil)

	slot, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, "D", slot.ID.Name)

	_, ok = c.Next()
	require.True(t, ok)
	assert.False(t, c.HasConsumedAny() == false)

	_, ok = c.Next()
	require.True(t, ok)

	_, ok = c.Next()
	assert.False(t, ok)
}

func TestCursorUnboundedSlot(t *testing.T) {
	positionals := []Positional{
		{ID: MultiValueID(1, "rest"), Completer: noopCompleter, MaxValues: Unbounded},
	}
	c := NewCursor(positionals, nil)
	for i := 0; i < 5; i++ {
		_, ok := c.Next()
		require.True(t, ok)
	}
}

func TestCursorExternalSlotAppended(t *testing.T) {
	positionals := []Positional{
		{ID: SingleValueID(1, "E"), Completer: noopCompleter, MaxValues: 1},
	}
	external := &Positional{ID: MultiValueID(2, "External"), Completer: noopCompleter}
	c := NewCursor(positionals, external)

	slot, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "E", slot.ID.Name)

	slot, ok = c.Peek()
	require.True(t, ok)
	assert.Equal(t, "External", slot.ID.Name)
	assert.Equal(t, Unbounded, slot.MaxValues)
}

func TestCursorNoPositionals(t *testing.T) {
	c := NewCursor(nil, nil)
	_, ok := c.Peek()
	assert.False(t, ok)
	assert.False(t, c.HasConsumedAny())
}

func TestCursorRejectsNonTerminalUnbounded(t *testing.T) {
	positionals := []Positional{
		{ID: MultiValueID(1, "rest"), Completer: noopCompleter, MaxValues: Unbounded},
		{ID: SingleValueID(2, "tail"), Completer: noopCompleter, MaxValues: 1},
	}
	assert.Panics(t, func() {
		NewCursor(positionals, nil)
	})
}
