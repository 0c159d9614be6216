package buffer

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

const (
	// NotFound is returned by the Index methods when the pattern does not
	// occur. It is never a valid index, length, or capacity.
	NotFound = math.MaxInt

	// MaxCapacity bounds every capacity and text length from above. Values at
	// or past it are rejected so NotFound stays distinct.
	MaxCapacity = NotFound - 1
)

// Buffer is a fixed-capacity byte string that is always NUL-terminated at
// Len().
//
// The zero value is an empty buffer with capacity 0.
type Buffer struct {
	data   []byte // Cap()+1 bytes, data[length] == 0
	length int
}

// New returns an empty buffer that can hold up to capacity bytes.
func New(capacity int) (*Buffer, error) {
	data, err := allocate(capacity)
	if err != nil {
		return nil, err
	}
	return &Buffer{data: data}, nil
}

// FromString returns a buffer holding text, with capacity equal to the text
// length. Text ends at its first NUL byte.
func FromString(text string) (*Buffer, error) {
	n, err := textLen(text)
	if err != nil {
		return nil, err
	}
	data, err := allocate(n)
	if err != nil {
		return nil, err
	}
	copy(data, text[:n])
	return &Buffer{data: data, length: n}, nil
}

// NewString returns a buffer with the given capacity holding text.
// It fails with ErrRange if text is longer than capacity.
func NewString(capacity int, text string) (*Buffer, error) {
	data, err := allocate(capacity)
	if err != nil {
		return nil, err
	}
	n, err := textLen(text)
	if err != nil {
		return nil, err
	}
	if n > capacity {
		return nil, fitError("new", n, capacity)
	}
	copy(data, text[:n])
	return &Buffer{data: data, length: n}, nil
}

// Clone returns an independent buffer with the same capacity and content.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{data: make([]byte, b.Cap()+1)}
	copy(c.data, b.Bytes())
	c.length = b.length
	return c
}

// Assign replaces the content of b with the content of src, keeping the
// capacity of b. It fails with ErrRange if src does not fit.
func (b *Buffer) Assign(src *Buffer) error {
	if src == b {
		return nil
	}
	if src.length > b.Cap() {
		return fitError("assign", src.length, b.Cap())
	}
	copy(b.data, src.Bytes())
	b.setLen(src.length)
	return nil
}

// Move transfers the storage of b to a new buffer. b is left empty with
// capacity 0.
func (b *Buffer) Move() *Buffer {
	moved := &Buffer{data: b.data, length: b.length}
	b.release()
	return moved
}

// MoveFrom takes over the storage of src, discarding the storage of b. src
// is left empty with capacity 0.
func (b *Buffer) MoveFrom(src *Buffer) {
	if src == b {
		return
	}
	b.data, b.length = src.data, src.length
	src.release()
}

func (b *Buffer) Len() int { return b.length }

func (b *Buffer) Cap() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data) - 1
}

// Available returns the number of bytes that can still be appended.
func (b *Buffer) Available() int { return b.Cap() - b.length }

func (b *Buffer) IsEmpty() bool { return b.length == 0 }

func (b *Buffer) String() string { return string(b.Bytes()) }

// Bytes returns the content without its terminator. The slice aliases the
// buffer storage and is valid until the next mutation.
func (b *Buffer) Bytes() []byte {
	if b.data == nil {
		return nil
	}
	return b.data[:b.length:b.length]
}

// CString returns the content followed by its NUL terminator. The slice
// aliases the buffer storage and is valid until the next mutation.
func (b *Buffer) CString() []byte {
	if b.data == nil {
		return []byte{0}
	}
	return b.data[: b.length+1 : b.length+1]
}

// At returns the byte at index.
func (b *Buffer) At(index int) (byte, error) {
	if index < 0 || index >= b.length {
		return 0, rangeErrorf("at", "index %d outside length %d", index, b.length)
	}
	return b.data[index], nil
}

// SetAt replaces the byte at index.
func (b *Buffer) SetAt(index int, c byte) error {
	if index < 0 || index >= b.length {
		return rangeErrorf("set", "index %d outside length %d", index, b.length)
	}
	b.data[index] = c
	return nil
}

func (b *Buffer) setLen(n int) {
	if b.data == nil {
		b.data = make([]byte, 1)
	}
	b.length = n
	b.data[n] = 0
}

func (b *Buffer) release() {
	b.data = make([]byte, 1)
	b.length = 0
}

func allocate(capacity int) (data []byte, err error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrAllocation, "negative capacity %d", capacity)
	}
	if capacity >= MaxCapacity {
		return nil, errors.Wrapf(ErrAllocation, "capacity %d reaches limit %d", capacity, MaxCapacity)
	}
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = errors.Wrapf(ErrAllocation, "capacity %d: %v", capacity, r)
		}
	}()
	return make([]byte, capacity+1), nil
}

// textLen measures text up to its first NUL byte.
func textLen(text string) (int, error) {
	t := cstr(text)
	if len(t) >= MaxCapacity {
		return 0, errors.Wrapf(ErrLengthOverflow, "text of %d bytes", len(t))
	}
	return len(t), nil
}

func cstr(text string) string {
	if i := strings.IndexByte(text, 0); i >= 0 {
		return text[:i]
	}
	return text
}
