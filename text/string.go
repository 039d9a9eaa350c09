// Package text provides a growable byte string built on dynarray.
//
// A nil *String behaves as the empty string for every read-only method.
package text

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/pavanmanishd/krc/dynarray"
)

// String is a mutable byte string.
type String struct {
	buf dynarray.Array[byte]
}

// New returns an empty string with room for size bytes.
func New(size int) (*String, error) {
	s := &String{}
	if err := s.buf.Reserve(size); err != nil {
		return nil, fmt.Errorf("text: new string of %d bytes: %w", size, err)
	}
	return s, nil
}

// NewIn is like New but takes its storage from mem.
func NewIn(mem dynarray.Allocator, size int) (*String, error) {
	s := &String{buf: dynarray.WithAllocator[byte](mem)}
	if err := s.buf.Reserve(size); err != nil {
		return nil, fmt.Errorf("text: new string of %d bytes: %w", size, err)
	}
	return s, nil
}

// Copy returns a new String holding str.
func Copy(str string) *String {
	return &String{buf: dynarray.From([]byte(str)...)}
}

// Format returns a new String holding fmt.Sprintf(format, args...).
func Format(format string, args ...any) *String {
	return &String{buf: dynarray.From(fmt.Appendf(nil, format, args...)...)}
}

// Len returns the length in bytes.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return s.buf.Len()
}

// Width returns the number of terminal columns s occupies when printed.
func (s *String) Width() int {
	if s == nil {
		return 0
	}
	return runewidth.StringWidth(string(s.buf.Slice()))
}

// Cap returns the number of bytes s can hold without growing.
func (s *String) Cap() int {
	if s == nil {
		return 0
	}
	return s.buf.Cap()
}

// IsEmpty reports whether s has no bytes.
func (s *String) IsEmpty() bool { return s.Len() == 0 }

// Bytes returns the contents. The slice aliases s and is invalidated by
// Append.
func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.buf.Slice()
}

// String returns a copy of the contents.
func (s *String) String() string {
	return string(s.Bytes())
}

// Equals reports whether s and o hold the same bytes. Two nil strings are
// equal; a nil string equals no non-nil string.
func (s *String) Equals(o *String) bool {
	if s == nil || o == nil {
		return s == nil && o == nil
	}
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// EqualsString reports whether s holds exactly str. A nil s equals nothing.
func (s *String) EqualsString(str string) bool {
	return s != nil && string(s.Bytes()) == str
}

// Append adds str to the end of s.
func (s *String) Append(str string) error {
	n := s.buf.Len()
	if err := s.buf.Grow(len(str)); err != nil {
		return fmt.Errorf("text: append %d bytes: %w", len(str), err)
	}
	copy(s.buf.Slice()[n:], str)
	return nil
}

// Write appends p to s, so a String can collect formatted output.
func (s *String) Write(p []byte) (int, error) {
	n := s.buf.Len()
	if err := s.buf.Grow(len(p)); err != nil {
		return 0, fmt.Errorf("text: write %d bytes: %w", len(p), err)
	}
	copy(s.buf.Slice()[n:], p)
	return len(p), nil
}

// Puts writes s and a newline to w, or "empty string" for a nil s.
func (s *String) Puts(w io.Writer) error {
	var err error
	if s == nil {
		_, err = io.WriteString(w, "empty string\n")
	} else {
		_, err = fmt.Fprintf(w, "%s\n", s.Bytes())
	}
	return err
}

// Dispose releases the storage and leaves s empty.
func (s *String) Dispose() {
	if s != nil {
		s.buf.Dispose()
	}
}
