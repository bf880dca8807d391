package supplements

// Unit is one recognized entry in a [History]. Exactly one of Value or
// Values is meaningful, per ID.Shape (ShapeSingleValue uses Value,
// ShapeMultiValue uses Values; ShapeNoValue uses neither).
type Unit struct {
	ID     Identity
	Value  string
	Values []string
}

// History is the append-only log of recognized units for one
// [Supplement] call. It is owned by a single call frame and is never
// read concurrently with a write.
type History struct {
	units []Unit
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// View returns a read-only [HistoryView] over h, suitable for passing to
// a [ValueCompleter].
func (h *History) View() HistoryView {
	return HistoryView{h: h}
}

// Units returns the recognized units in recognition order. Callers must
// not mutate the returned slice.
func (h *History) Units() []Unit {
	return h.units
}

// PushCommand records that a subcommand was entered.
func (h *History) PushCommand(id Identity) {
	h.units = append(h.units, Unit{ID: id})
}

// PushNoVal records that a boolean flag was seen.
func (h *History) PushNoVal(id Identity) {
	h.units = append(h.units, Unit{ID: id})
}

// PushSingleVal records (or overwrites) a single-value unit.
func (h *History) PushSingleVal(id Identity, v string) {
	if i := h.indexOf(id); i >= 0 {
		h.units[i].Value = v
		return
	}
	h.units = append(h.units, Unit{ID: id, Value: v})
}

// PushMultiVal appends v to the multi-value unit for id, creating it if
// absent.
func (h *History) PushMultiVal(id Identity, v string) {
	if i := h.indexOf(id); i >= 0 {
		h.units[i].Values = append(h.units[i].Values, v)
		return
	}
	h.units = append(h.units, Unit{ID: id, Values: []string{v}})
}

// PushArg records a positional or flag value, dispatching to
// PushSingleVal or PushMultiVal by id.Shape.
func (h *History) PushArg(id Identity, v string) {
	if id.Shape == ShapeMultiValue {
		h.PushMultiVal(id, v)
		return
	}
	h.PushSingleVal(id, v)
}

func (h *History) indexOf(id Identity) int {
	for i := range h.units {
		if h.units[i].ID.Tag == id.Tag {
			return i
		}
	}
	return -1
}

// Find returns the first unit recorded for id.
func (h *History) Find(id Identity) (Unit, bool) {
	for i := range h.units {
		if h.units[i].ID.Tag == id.Tag {
			return h.units[i], true
		}
	}
	return Unit{}, false
}

// FindLast returns the most recently recorded unit for id.
func (h *History) FindLast(id Identity) (Unit, bool) {
	for i := len(h.units) - 1; i >= 0; i-- {
		if h.units[i].ID.Tag == id.Tag {
			return h.units[i], true
		}
	}
	return Unit{}, false
}

// FindAll returns every unit recorded for any of ids, in recognition
// order.
func (h *History) FindAll(ids ...Identity) []Unit {
	want := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		want[id.Tag] = true
	}
	var out []Unit
	for _, u := range h.units {
		if want[u.ID.Tag] {
			out = append(out, u)
		}
	}
	return out
}

// Find returns the first unit recorded for id.
func (v HistoryView) Find(id Identity) (Unit, bool) { return v.h.Find(id) }

// FindLast returns the most recently recorded unit for id.
func (v HistoryView) FindLast(id Identity) (Unit, bool) { return v.h.FindLast(id) }

// FindAll returns every unit recorded for any of ids, in recognition
// order.
func (v HistoryView) FindAll(ids ...Identity) []Unit { return v.h.FindAll(ids...) }

// Units returns the recognized units in recognition order.
func (v HistoryView) Units() []Unit { return v.h.Units() }
