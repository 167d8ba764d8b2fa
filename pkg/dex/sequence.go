package dex

import "sync/atomic"

// Ticket tags one fetch issued by a view.
type Ticket uint64

// Sequence hands out increasing tickets for a single view so that a slow
// response to a superseded request can be recognised and dropped.
type Sequence struct {
	last atomic.Uint64
}

// Next issues a new ticket. Every earlier ticket becomes stale.
func (s *Sequence) Next() Ticket {
	return Ticket(s.last.Add(1))
}

// Current reports whether t is the latest ticket issued.
func (s *Sequence) Current(t Ticket) bool {
	return uint64(t) == s.last.Load()
}
