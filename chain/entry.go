package chain

import "unsafe"

// Entry returns the record that embeds l, given the byte offset of the Link
// field inside T as reported by unsafe.Offsetof.
//
//	r := chain.Entry[record](l, unsafe.Offsetof(record{}.link))
//
// l must actually be embedded in a T at that offset.
func Entry[T any](l *Link, offset uintptr) *T {
	if l == nil {
		return nil
	}
	return (*T)(unsafe.Add(unsafe.Pointer(l), -int(offset)))
}

// Visit calls fn for every member of c, from first to last, with a pointer
// offset bytes away from the member's link. The offset is the field offset
// of the wanted T minus the offset of the link in the same record, so it
// may be negative.
func Visit[T any](c *Chain, offset int, fn func(*T)) {
	for l := range c.All() {
		fn((*T)(unsafe.Add(unsafe.Pointer(l), offset)))
	}
}

// Offset returns the displacement Visit needs to reach a field at
// fieldOffset from a link at linkOffset.
func Offset(fieldOffset, linkOffset uintptr) int {
	return int(fieldOffset) - int(linkOffset)
}
