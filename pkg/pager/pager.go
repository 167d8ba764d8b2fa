// Package pager computes the page-number window and navigation transitions
// for paginated catalog views.
package pager

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/pokedex/pkg/format"
)

const (
	// DefaultBlockSize is how many page numbers are shown at once.
	DefaultBlockSize = 8
	// DefaultPageSize is how many items a page holds.
	DefaultPageSize = 8
)

// ErrOutOfRange is returned by GoTo for pages outside [1, total].
var ErrOutOfRange = errors.New("pager: page out of range")

// Window describes which page controls a view should render.
type Window struct {
	Pages             []int `json:"pages"`
	Current           int   `json:"current"`
	Total             int   `json:"total"`
	ShowFirst         bool  `json:"showFirst"`
	ShowPrev          bool  `json:"showPrev"`
	ShowNext          bool  `json:"showNext"`
	ShowLast          bool  `json:"showLast"`
	ShowLeftEllipsis  bool  `json:"showLeftEllipsis"`
	ShowRightEllipsis bool  `json:"showRightEllipsis"`
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// ComputeWindow partitions pages into blocks of blockSize and returns the
// block holding current.
func ComputeWindow(current, totalPages, blockSize int) Window {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if totalPages <= 0 {
		return Window{Pages: []int{}, Current: 1}
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	currentBlock := ceilDiv(current, blockSize)
	totalBlocks := ceilDiv(totalPages, blockSize)

	lo := (currentBlock-1)*blockSize + 1
	hi := currentBlock * blockSize
	if hi > totalPages {
		hi = totalPages
	}
	return Window{
		Pages:             format.Range(lo, hi),
		Current:           current,
		Total:             totalPages,
		ShowFirst:         current > 1,
		ShowPrev:          current > 1,
		ShowNext:          current < totalPages,
		ShowLast:          current < totalPages,
		ShowLeftEllipsis:  currentBlock > 1,
		ShowRightEllipsis: currentBlock < totalBlocks,
	}
}

// HasControls reports whether anything should be rendered at all.
func (w Window) HasControls() bool {
	return w.Total > 1
}

// Render draws the window as a single line, e.g. "« < ... 9 [10] 11 ... > »".
// It is empty when there is at most one page.
func (w Window) Render() string {
	if !w.HasControls() {
		return ""
	}
	parts := make([]string, 0, len(w.Pages)+6)
	if w.ShowFirst {
		parts = append(parts, "«", "<")
	}
	if w.ShowLeftEllipsis {
		parts = append(parts, "...")
	}
	for _, p := range w.Pages {
		if p == w.Current {
			parts = append(parts, "["+strconv.Itoa(p)+"]")
			continue
		}
		parts = append(parts, strconv.Itoa(p))
	}
	if w.ShowRightEllipsis {
		parts = append(parts, "...")
	}
	if w.ShowNext {
		parts = append(parts, ">", "»")
	}
	return strings.Join(parts, " ")
}

// Navigator returns the next page for each navigation control. It never
// mutates anything; the caller applies the result.
type Navigator struct {
	Current int
	Total   int
}

// First returns page 1.
func (n Navigator) First() int { return 1 }

// Last returns the final page.
func (n Navigator) Last() int { return n.Total }

// Prev returns the previous page, stopping at 1.
func (n Navigator) Prev() int {
	if n.Current-1 < 1 {
		return 1
	}
	return n.Current - 1
}

// Next returns the following page, stopping at Total.
func (n Navigator) Next() int {
	if n.Current+1 > n.Total {
		return n.Total
	}
	return n.Current + 1
}

// GoTo validates page against [1, Total]. Out of range pages are rejected
// rather than clamped.
func (n Navigator) GoTo(page int) (int, error) {
	if page < 1 || page > n.Total {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRange, page, n.Total)
	}
	return page, nil
}
