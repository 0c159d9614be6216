// Package buffer implements a fixed-capacity, NUL-terminated byte buffer.
//
// A Buffer never grows: its capacity is fixed at construction and every
// mutating method is checked against it. Requests that would overflow the
// capacity or step outside the current content fail with ErrRange and leave
// the buffer unchanged.
//
// Storage is always Cap()+1 bytes and storage[Len()] is always 0, so CString
// can hand the content to code expecting terminated strings.
//
// Spans are half-open byte ranges: [start, end).
//
// Text parameters (string) end at the first NUL byte. Raw data parameters
// ([]byte) carry their own length and may contain NUL bytes.
//
// A Buffer is owned by one goroutine at a time; it has no internal locking.
package buffer
