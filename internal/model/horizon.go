package model

// TimeHorizon is the ordered, finite set of discrete periods a commitment
// model is built over. Period indices may be any distinct ints (hour numbers,
// settlement-period ids, ...); internally they are mapped once to dense
// positions 0..Len()-1 so per-period storage can use plain slices.
//
// A TimeHorizon is immutable after construction.
type TimeHorizon struct {
	indices []int
	pos     map[int]int
}

func NewTimeHorizon(indices []int) (*TimeHorizon, error) {
	if len(indices) == 0 {
		return nil, &InvalidParameterError{Field: "horizon", Reason: "must contain at least one period"}
	}
	h := &TimeHorizon{
		indices: make([]int, len(indices)),
		pos:     make(map[int]int, len(indices)),
	}
	copy(h.indices, indices)
	for p, idx := range h.indices {
		if _, dup := h.pos[idx]; dup {
			return nil, &InvalidParameterError{Field: "horizon", Reason: "duplicate period index"}
		}
		h.pos[idx] = p
	}
	return h, nil
}

// SequentialHorizon builds the common 1..n horizon.
func SequentialHorizon(n int) (*TimeHorizon, error) {
	if n < 1 {
		return nil, &InvalidParameterError{Field: "horizon", Reason: "must contain at least one period"}
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i + 1
	}
	return NewTimeHorizon(indices)
}

func (h *TimeHorizon) Len() int {
	if h == nil {
		return 0
	}
	return len(h.indices)
}

// Index returns the period index stored at dense position p.
func (h *TimeHorizon) Index(p int) int {
	return h.indices[p]
}

// Position maps a period index to its dense position.
func (h *TimeHorizon) Position(index int) (int, bool) {
	p, ok := h.pos[index]
	return p, ok
}

// Indices returns a copy of the ordered period indices.
func (h *TimeHorizon) Indices() []int {
	out := make([]int, len(h.indices))
	copy(out, h.indices)
	return out
}

func (h *TimeHorizon) First() int {
	return h.indices[0]
}
