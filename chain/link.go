package chain

// Link is the pair of neighbor pointers embedded in a list member.
// The zero Link is detached.
type Link struct {
	next, prev *Link
}

// Next returns the following link, or nil if l is nil or has none.
func (l *Link) Next() *Link {
	if l == nil {
		return nil
	}
	return l.next
}

// Prev returns the preceding link, or nil if l is nil or has none.
func (l *Link) Prev() *Link {
	if l == nil {
		return nil
	}
	return l.prev
}

// IsAttached reports whether l has at least one neighbor.
func (l *Link) IsAttached() bool {
	return l != nil && (l.next != nil || l.prev != nil)
}

// IsDetached reports whether l has no neighbors.
func (l *Link) IsDetached() bool {
	return l != nil && l.next == nil && l.prev == nil
}

// Valid reports whether l is in a consistent state: detached, or attached
// with both neighbors pointing back at it.
func (l *Link) Valid() bool {
	switch {
	case l == nil:
		return false
	case l.next == nil && l.prev == nil:
		return true
	case l.next == nil || l.prev == nil:
		return false
	}
	return l.next.prev == l && l.prev.next == l
}

// Remove unlinks l from its neighbors, joining them to each other, and
// leaves l detached. Removing a detached link does nothing.
func (l *Link) Remove() {
	Attach(l.prev, l.next)
	l.next, l.prev = nil, nil
}

// AreLinked reports whether b directly follows a.
func AreLinked(a, b *Link) bool {
	return a != nil && b != nil && a.next == b && b.prev == a
}

// Attach sets a.next to b and b.prev to a, skipping whichever is nil, and
// returns b. It does not touch a.prev or b.next, so it can leave a ring in
// an inconsistent state; it is the building block for the other operations.
func Attach(a, b *Link) *Link {
	if a != nil {
		a.next = b
	}
	if b != nil {
		b.prev = a
	}
	return b
}

// InsertBefore splices newLink into anchor's ring just before anchor.
// newLink must be detached.
func InsertBefore(newLink, anchor *Link) {
	mustBeDetached(newLink)
	Attach(anchor.Prev(), newLink)
	Attach(newLink, anchor)
}

// InsertAfter splices newLink into anchor's ring just after anchor.
// newLink must be detached.
func InsertAfter(anchor, newLink *Link) {
	mustBeDetached(newLink)
	Attach(newLink, anchor.Next())
	Attach(anchor, newLink)
}

func mustBeDetached(l *Link) {
	if l == nil {
		panic("chain: nil link")
	}
	if l.IsAttached() {
		panic("chain: link is already attached")
	}
}
