package supplements

import "go.abhg.dev/supplements/internal/must"

// Slot is one positional slot as seen by the cursor: a flattened,
// cursor-local view of a [Positional] (or the implicit external slot).
type Slot struct {
	ID        Identity
	Completer ValueCompleter
	MaxValues int
}

// Cursor is the per-command positional-argument accounting automaton. A
// fresh Cursor is allocated on every descent into a command.
type Cursor struct {
	slots        []Slot
	slotIndex    int
	valuesInSlot int
}

// NewCursor builds a cursor over a command's declared positionals,
// appending the implicit external slot (backed by external) when the
// command allows external subcommands.
func NewCursor(positionals []Positional, external *Positional) *Cursor {
	slots := make([]Slot, 0, len(positionals)+1)
	for i, p := range positionals {
		must.Bef(p.MaxValues == Unbounded || p.MaxValues > 0, "positional %s: max values must be positive or Unbounded", p.ID.Name)
		if p.MaxValues == Unbounded {
			must.Bef(i == len(positionals)-1, "positional %s: unbounded max values only allowed as the last declared slot", p.ID.Name)
		}
		slots = append(slots, Slot{ID: p.ID, Completer: p.Completer, MaxValues: p.MaxValues})
	}
	if external != nil {
		slots = append(slots, Slot{ID: external.ID, Completer: external.Completer, MaxValues: Unbounded})
	}
	return &Cursor{slots: slots}
}

// HasConsumedAny reports whether any positional value has been consumed
// from this cursor yet.
func (c *Cursor) HasConsumedAny() bool {
	return c.slotIndex != 0 || c.valuesInSlot != 0
}

// Peek returns the slot that the next call to Next would consume from,
// without advancing.
func (c *Cursor) Peek() (Slot, bool) {
	if c.slotIndex >= len(c.slots) {
		return Slot{}, false
	}
	return c.slots[c.slotIndex], true
}

// Next returns the current slot and advances the cursor: once a slot's
// multiplicity is exhausted, the cursor moves on to the next slot.
// Next returns false once every slot is exhausted.
func (c *Cursor) Next() (Slot, bool) {
	slot, ok := c.Peek()
	if !ok {
		return Slot{}, false
	}
	c.valuesInSlot++
	if slot.MaxValues != Unbounded && c.valuesInSlot == slot.MaxValues {
		c.slotIndex++
		c.valuesInSlot = 0
	}
	return slot, true
}
