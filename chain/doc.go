// Package chain implements an intrusive, circular, doubly-linked list.
//
// A Link is embedded in a caller-owned record; the list never allocates and
// never owns the records it threads together. A Chain is a sentinel Link
// that closes the ring, so that first, last and emptiness checks need no
// special cases and every traversal stops when it comes back to the
// sentinel.
//
//	type job struct {
//		link chain.Link
//		id   int
//	}
//
//	var queue chain.Chain
//	a, b := &job{id: 1}, &job{id: 2}
//	queue.AppendAll(&a.link, &b.link)
//
//	off := unsafe.Offsetof(job{}.link)
//	for l := range queue.All() {
//		fmt.Println(chain.Entry[job](l, off).id)
//	}
//
// A Link is either detached (both neighbors nil) or attached. The primitive
// Attach only rewrites one edge in each direction and may leave a ring half
// linked; InsertBefore, InsertAfter, Remove and the Chain methods keep the
// ring consistent. Verify and Link.Valid detect corruption.
//
// A record must be removed from its chain before it is reused or dropped.
// Nothing in this package enforces that, and nothing here is safe for
// concurrent use.
package chain
