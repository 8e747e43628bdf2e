package main

// History holds committed strokes. Every committed stroke is in exactly one
// of active (painted, in drawing order) or undone (most recent last).
type History struct {
	active []*Stroke
	undone []*Stroke
}

func (h *History) commit(s *Stroke) {
	s.seal()
	h.active = append(h.active, s)
	clear(h.undone)
	h.undone = h.undone[:0]
}

func (h *History) undo() bool {
	if len(h.active) == 0 {
		return false
	}

	lastIndex := len(h.active) - 1
	s := h.active[lastIndex]
	h.active[lastIndex] = nil
	h.active = h.active[:lastIndex]

	h.undone = append(h.undone, s)
	return true
}

func (h *History) redo() bool {
	if len(h.undone) == 0 {
		return false
	}

	lastIndex := len(h.undone) - 1
	s := h.undone[lastIndex]
	h.undone[lastIndex] = nil
	h.undone = h.undone[:lastIndex]

	h.active = append(h.active, s)
	return true
}

// Active returns copies of the painted strokes in drawing order.
func (h *History) Active() []Stroke {
	return cloneStrokes(h.active)
}

// Undone returns copies of the undone strokes, most recent last.
func (h *History) Undone() []Stroke {
	return cloneStrokes(h.undone)
}

func cloneStrokes(strokes []*Stroke) []Stroke {
	if len(strokes) == 0 {
		return nil
	}
	out := make([]Stroke, len(strokes))
	for i, s := range strokes {
		out[i] = s.clone()
	}
	return out
}
