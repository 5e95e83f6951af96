// Package pagination holds the page request/response shapes shared by the
// catalog and order listings.
package pagination

import "math"

// StartNumber is the first externally visible page number.
const StartNumber = 1

// Request is a zero-indexed page request.
type Request struct {
	Number int
	Size   int
}

// NewRequest converts a 1-based page number into a zero-indexed request.
// The caller clamps number and size first.
func NewRequest(number, size int) Request {
	return Request{Number: number - StartNumber, Size: size}
}

// Offset saturates at math.MaxInt so a huge page number stays past the end
// instead of wrapping negative.
func (r Request) Offset() int {
	if r.Number <= 0 || r.Size <= 0 {
		return 0
	}
	if r.Number > math.MaxInt/r.Size {
		return math.MaxInt
	}
	return r.Number * r.Size
}

func (r Request) Limit() int {
	return r.Size
}

// Page is a slice of results plus the total element count.
type Page[T any] struct {
	Items         []T `json:"items"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

func NewPage[T any](items []T, req Request, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = (total + req.Size - 1) / req.Size
	}
	return Page[T]{
		Items:         items,
		Page:          req.Number + StartNumber,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// Map projects every item of p through fn, keeping the page metadata.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, fn(it))
	}
	return Page[R]{
		Items:         out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

// ClampNumber raises page numbers below StartNumber to StartNumber. There is
// no upper bound; a page past the end is simply empty.
func ClampNumber(n int) int {
	if n < StartNumber {
		return StartNumber
	}
	return n
}

// ClampSize forces size into [lo, hi].
func ClampSize(size, lo, hi int) int {
	if size > hi {
		return hi
	}
	if size < lo {
		return lo
	}
	return size
}

// Slice cuts the requested page out of an in-memory result set.
func Slice[T any](all []T, req Request) []T {
	start := req.Offset()
	if start >= len(all) || start < 0 {
		return []T{}
	}
	end := start + req.Limit()
	if end > len(all) {
		end = len(all)
	}
	out := make([]T, end-start)
	copy(out, all[start:end])
	return out
}
