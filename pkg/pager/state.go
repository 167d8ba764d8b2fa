package pager

// State is the pagination state of one list view. It is recomputed from
// scratch whenever the underlying collection changes.
type State struct {
	Current int `json:"current"`
	Size    int `json:"size"`
	Total   int `json:"total"`
}

// NewState builds a State, clamping Current into the valid page range. A
// non-positive size falls back to DefaultPageSize.
func NewState(current, size, total int) State {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}
	s := State{Current: current, Size: size, Total: total}
	pages := s.Pages()
	if s.Current > pages {
		s.Current = pages
	}
	if s.Current < 1 {
		s.Current = 1
	}
	return s
}

// Pages is ceil(Total/Size).
func (s State) Pages() int {
	if s.Total == 0 || s.Size <= 0 {
		return 0
	}
	return ceilDiv(s.Total, s.Size)
}

// Bounds returns the [lo, hi) slice bounds of the current page.
func (s State) Bounds() (int, int) {
	if s.Total == 0 {
		return 0, 0
	}
	lo := (s.Current - 1) * s.Size
	hi := s.Current * s.Size
	if hi > s.Total {
		hi = s.Total
	}
	return lo, hi
}

// WithTotal recomputes the state for a collection of a different size.
func (s State) WithTotal(total int) State {
	return NewState(s.Current, s.Size, total)
}

// WithPage recomputes the state for a different page.
func (s State) WithPage(page int) State {
	return NewState(page, s.Size, s.Total)
}

// Reset returns the state on page 1.
func (s State) Reset() State {
	return NewState(1, s.Size, s.Total)
}

// Navigator returns the transitions available from this state.
func (s State) Navigator() Navigator {
	return Navigator{Current: s.Current, Total: s.Pages()}
}

// Window computes the visible page window for this state.
func (s State) Window(blockSize int) Window {
	return ComputeWindow(s.Current, s.Pages(), blockSize)
}
