package chash

import (
	"bytes"
	"unsafe"
)

// View is a read-only, non-owning view over bytes owned by the caller.
// The zero View is the empty sentinel used to report absence.
type View struct {
	b []byte
}

// MutView is a read-write, non-owning view over bytes owned by the caller.
// Writing through Bytes mutates the caller's buffer, not table storage.
type MutView struct {
	b []byte
}

// ViewOf returns a read-only view of b. No bytes are copied.
func ViewOf(b []byte) View {
	return View{b: b}
}

// ViewString returns a read-only view aliasing the bytes of s.
func ViewString(s string) View {
	if len(s) == 0 {
		return View{b: []byte{}}
	}
	return View{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// MutViewOf returns a read-write view of b. No bytes are copied.
func MutViewOf(b []byte) MutView {
	return MutView{b: b}
}

// Len returns the length of the viewed range.
func (v View) Len() int { return len(v.b) }

// IsEmpty reports whether v is the empty sentinel.
func (v View) IsEmpty() bool { return v.b == nil }

// Bytes returns the viewed bytes. The result aliases the caller's buffer
// and must not be modified.
func (v View) Bytes() []byte { return v.b }

// String returns a copy of the viewed bytes as a string.
func (v View) String() string { return string(v.b) }

// Equal reports whether v and o have the same length and content.
func (v View) Equal(o View) bool {
	return bytes.Equal(v.b, o.b)
}

// Len returns the length of the viewed range.
func (m MutView) Len() int { return len(m.b) }

// IsEmpty reports whether m is the empty sentinel.
func (m MutView) IsEmpty() bool { return m.b == nil }

// Bytes returns the viewed bytes. The result aliases the caller's buffer.
func (m MutView) Bytes() []byte { return m.b }

// String returns a copy of the viewed bytes as a string.
func (m MutView) String() string { return string(m.b) }

// View downgrades m to a read-only view of the same bytes.
func (m MutView) View() View { return View{b: m.b} }

// Equal reports whether m and o have the same length and content.
func (m MutView) Equal(o View) bool {
	return m.View().Equal(o)
}
