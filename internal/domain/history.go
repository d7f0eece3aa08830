package domain

// History is a stack of board snapshots used for undo. Every snapshot is a
// deep copy, so later changes to the live board never reach it.
type History struct {
	snapshots []State
}

func (h *History) Push(s State) {
	h.snapshots = append(h.snapshots, s.Clone())
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (State, bool) {
	n := len(h.snapshots)
	if n == 0 {
		return State{}, false
	}
	s := h.snapshots[n-1]
	h.snapshots[n-1] = State{}
	h.snapshots = h.snapshots[:n-1]
	return s, true
}

func (h *History) Len() int {
	return len(h.snapshots)
}

func (h *History) Clear() {
	h.snapshots = nil
}
