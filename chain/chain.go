package chain

import (
	"errors"
	"fmt"
	"iter"
)

// ErrCorrupt is returned by Verify when the ring is not doubly consistent.
var ErrCorrupt = errors.New("chain: corrupt ring")

// Chain is a circular list closed by a sentinel link. The zero Chain is
// empty and ready to use. A Chain must not be copied after first use, since
// its members point at the sentinel inside it.
type Chain struct {
	head Link
}

// New returns an initialized empty chain.
func New() *Chain {
	return new(Chain).Init()
}

// Init empties c by pointing the sentinel at itself. Links still pointing
// into c are not detached.
func (c *Chain) Init() *Chain {
	c.head.next = &c.head
	c.head.prev = &c.head
	return c
}

func (c *Chain) lazyInit() {
	if c.head.next == nil {
		c.Init()
	}
}

// IsEmpty reports whether c has no members. A nil Chain is empty.
func (c *Chain) IsEmpty() bool {
	return c == nil || c.head.next == nil || c.head.next == &c.head
}

// First returns the first member, or nil if c is empty.
func (c *Chain) First() *Link {
	if c.IsEmpty() {
		return nil
	}
	return c.head.next
}

// Last returns the last member, or nil if c is empty.
func (c *Chain) Last() *Link {
	if c.IsEmpty() {
		return nil
	}
	return c.head.prev
}

// Prepend inserts l as the new first member.
func (c *Chain) Prepend(l *Link) {
	c.lazyInit()
	InsertAfter(&c.head, l)
}

// Append inserts l as the new last member.
func (c *Chain) Append(l *Link) {
	c.lazyInit()
	InsertBefore(l, &c.head)
}

// AppendAll appends links in order after the current last member. It
// panics, leaving c unchanged, if any link is attached or appears twice.
func (c *Chain) AppendAll(links ...*Link) {
	c.lazyInit()
	seen := make(map[*Link]struct{}, len(links))
	for _, l := range links {
		mustBeDetached(l)
		if _, dup := seen[l]; dup {
			panic("chain: link appears twice in AppendAll")
		}
		seen[l] = struct{}{}
	}
	tail := c.head.prev
	for _, l := range links {
		tail = Attach(tail, l)
	}
	Attach(tail, &c.head)
}

// Remove detaches l from c. It panics if l is the sentinel.
func (c *Chain) Remove(l *Link) {
	if l == &c.head {
		panic("chain: cannot remove the sentinel")
	}
	l.Remove()
}

// Len counts the members. It walks the whole ring.
func (c *Chain) Len() int {
	n := 0
	for range c.All() {
		n++
	}
	return n
}

// ForEach calls fn for every member from first to last. fn may remove the
// link it is given.
func (c *Chain) ForEach(fn func(*Link)) {
	for l := range c.All() {
		fn(l)
	}
}

// All yields the members from first to last. The current link may be
// removed during iteration.
func (c *Chain) All() iter.Seq[*Link] {
	return func(yield func(*Link) bool) {
		if c.IsEmpty() {
			return
		}
		for l := c.head.next; l != &c.head; {
			next := l.next
			if !yield(l) {
				return
			}
			l = next
		}
	}
}

// Backward yields the members from last to first.
func (c *Chain) Backward() iter.Seq[*Link] {
	return func(yield func(*Link) bool) {
		if c.IsEmpty() {
			return
		}
		for l := c.head.prev; l != &c.head; {
			prev := l.prev
			if !yield(l) {
				return
			}
			l = prev
		}
	}
}

// Verify walks the ring forward and returns ErrCorrupt for the first link
// whose neighbors do not point back at it.
func (c *Chain) Verify() error {
	if c == nil || c.head.IsDetached() {
		return nil
	}
	for i, l := 0, &c.head; ; i++ {
		if !l.Valid() {
			return fmt.Errorf("%w: bad link at position %d", ErrCorrupt, i)
		}
		l = l.next
		if l == &c.head {
			return nil
		}
	}
}
