package buffer

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestAppendString_CapacityExhausted(t *testing.T) {
	b := mustNew(t, 5)
	if err := b.AppendString("hello"); err != nil {
		t.Fatalf("append hello: %v", err)
	}
	if err := b.AppendString("!"); !errors.Is(err, ErrRange) {
		t.Fatalf("err=%v, want ErrRange", err)
	}
	if b.String() != "hello" || b.Len() != 5 {
		t.Fatalf("content=%q len=%d, want %q/5", b.String(), b.Len(), "hello")
	}
	assertInvariants(t, b)
}

func TestAppendString_StopsAtNUL(t *testing.T) {
	b := mustNew(t, 3)
	if err := b.AppendString("ab\x00cdef"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if b.String() != "ab" {
		t.Fatalf("content=%q, want %q", b.String(), "ab")
	}
}

func TestAppendByte(t *testing.T) {
	b := mustNew(t, 2)
	for _, c := range []byte("xy") {
		if err := b.AppendByte(c); err != nil {
			t.Fatalf("AppendByte(%q): %v", c, err)
		}
	}
	if err := b.AppendByte('z'); !errors.Is(err, ErrRange) {
		t.Fatalf("err=%v, want ErrRange", err)
	}
	if b.String() != "xy" {
		t.Fatalf("content=%q", b.String())
	}
	assertInvariants(t, b)
}

func TestAppend_Span(t *testing.T) {
	b := mustString(t, 6, "ab")
	src := mustFrom(t, "wxyz")
	if err := b.Append(src, 1, 3); err != nil {
		t.Fatalf("append: %v", err)
	}
	if b.String() != "abxy" {
		t.Fatalf("content=%q, want %q", b.String(), "abxy")
	}

	cases := []struct {
		name       string
		start, end int
	}{
		{name: "reversed", start: 3, end: 1},
		{name: "past source length", start: 2, end: 5},
		{name: "negative start", start: -1, end: 2},
		{name: "does not fit", start: 0, end: 3},
	}
	for _, tc := range cases {
		if err := b.Append(src, tc.start, tc.end); !errors.Is(err, ErrRange) {
			t.Fatalf("%s: err=%v, want ErrRange", tc.name, err)
		}
		if b.String() != "abxy" {
			t.Fatalf("%s: content changed to %q", tc.name, b.String())
		}
	}
	assertInvariants(t, b)
}

func TestAppendBuffer_Self(t *testing.T) {
	b := mustString(t, 6, "abc")
	if err := b.AppendBuffer(b); err != nil {
		t.Fatalf("append self: %v", err)
	}
	if b.String() != "abcabc" {
		t.Fatalf("content=%q, want %q", b.String(), "abcabc")
	}
	assertInvariants(t, b)
}

func TestAppendRaw_KeepsNULBytes(t *testing.T) {
	b := mustNew(t, 4)
	if err := b.AppendRaw([]byte{'a', 0, 'b'}); err != nil {
		t.Fatalf("append raw: %v", err)
	}
	if b.Len() != 3 || b.String() != "a\x00b" {
		t.Fatalf("content=%q len=%d", b.String(), b.Len())
	}
	if err := b.AppendRawSpan([]byte("xyz"), 2, 3); err != nil {
		t.Fatalf("append raw span: %v", err)
	}
	if b.String() != "a\x00bz" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.AppendRawSpan([]byte("xyz"), 0, 0); err != nil {
		t.Fatalf("empty span into full buffer: %v", err)
	}
	if err := b.AppendRawSpan([]byte("xyz"), 1, 4); !errors.Is(err, ErrRange) {
		t.Fatalf("err=%v, want ErrRange", err)
	}
	assertInvariants(t, b)
}

func TestCopyRaw(t *testing.T) {
	b := mustString(t, 4, "zzzz")
	if err := b.CopyRaw([]byte("ab")); err != nil {
		t.Fatalf("copy raw: %v", err)
	}
	if b.String() != "ab" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.CopyRawSpan([]byte("0123456"), 2, 6); err != nil {
		t.Fatalf("copy raw span: %v", err)
	}
	if b.String() != "2345" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.CopyRaw([]byte("toolong")); !errors.Is(err, ErrRange) {
		t.Fatalf("err=%v, want ErrRange", err)
	}
	if err := b.CopyRawSpan([]byte("abc"), 2, 1); !errors.Is(err, ErrRange) {
		t.Fatalf("err=%v, want ErrRange", err)
	}
	if b.String() != "2345" {
		t.Fatalf("content changed on failure: %q", b.String())
	}
	assertInvariants(t, b)
}

func TestSubstring_InPlace(t *testing.T) {
	b := mustString(t, 10, "abc")
	if err := b.Substring(1, 3); err != nil {
		t.Fatalf("substring: %v", err)
	}
	if b.String() != "bc" || b.Len() != 2 || b.Cap() != 10 {
		t.Fatalf("content=%q len=%d cap=%d, want %q/2/10", b.String(), b.Len(), b.Cap(), "bc")
	}
	assertInvariants(t, b)

	if err := b.Substring(0, 1); err != nil {
		t.Fatalf("prefix substring: %v", err)
	}
	if b.String() != "b" {
		t.Fatalf("content=%q, want %q", b.String(), "b")
	}

	for _, span := range [][2]int{{1, 0}, {0, 2}, {-1, 1}} {
		if err := b.Substring(span[0], span[1]); !errors.Is(err, ErrRange) {
			t.Fatalf("Substring(%d, %d) err=%v, want ErrRange", span[0], span[1], err)
		}
	}
	if b.String() != "b" {
		t.Fatalf("content changed on failure: %q", b.String())
	}
}

func TestSubstringOf(t *testing.T) {
	src := mustFrom(t, "abcdef")
	b := mustNew(t, 3)
	if err := b.SubstringOf(src, 2, 5); err != nil {
		t.Fatalf("substring of: %v", err)
	}
	if b.String() != "cde" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.SubstringOf(src, 0, 4); !errors.Is(err, ErrRange) {
		t.Fatalf("too long: err=%v, want ErrRange", err)
	}
	if err := b.SubstringOf(src, 4, 7); !errors.Is(err, ErrRange) {
		t.Fatalf("past source: err=%v, want ErrRange", err)
	}
	if b.String() != "cde" {
		t.Fatalf("content changed on failure: %q", b.String())
	}
	if err := b.SubstringOf(b, 1, 2); err != nil {
		t.Fatalf("self substring: %v", err)
	}
	if b.String() != "d" {
		t.Fatalf("content=%q", b.String())
	}
	assertInvariants(t, b)
}

func TestOverwrite_GapRejected(t *testing.T) {
	b := mustNew(t, 3)
	if err := b.OverwriteString(5, "x"); !errors.Is(err, ErrRange) {
		t.Fatalf("err=%v, want ErrRange", err)
	}
	if err := b.OverwriteString(1, "x"); !errors.Is(err, ErrRange) {
		t.Fatalf("gap past length: err=%v, want ErrRange", err)
	}
	assertInvariants(t, b)
}

func TestOverwrite_WithinContentKeepsLength(t *testing.T) {
	b := mustString(t, 8, "abcdef")
	if err := b.OverwriteString(1, "XY"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if b.String() != "aXYdef" || b.Len() != 6 {
		t.Fatalf("content=%q len=%d", b.String(), b.Len())
	}
	assertInvariants(t, b)
}

func TestOverwrite_ExtendsPastLength(t *testing.T) {
	b := mustString(t, 8, "abc")
	if err := b.OverwriteString(2, "XYZ"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if b.String() != "abXYZ" || b.Len() != 5 {
		t.Fatalf("content=%q len=%d", b.String(), b.Len())
	}
	if err := b.OverwriteString(5, "123"); err != nil {
		t.Fatalf("overwrite at end: %v", err)
	}
	if b.String() != "abXYZ123" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.OverwriteString(6, "!!!"); !errors.Is(err, ErrRange) {
		t.Fatalf("does not fit: err=%v, want ErrRange", err)
	}
	if b.String() != "abXYZ123" {
		t.Fatalf("content changed on failure: %q", b.String())
	}
	assertInvariants(t, b)
}

func TestOverwrite_Spans(t *testing.T) {
	b := mustString(t, 6, "......")
	src := mustFrom(t, "0123")
	if err := b.Overwrite(0, src); err != nil {
		t.Fatalf("overwrite buffer: %v", err)
	}
	if err := b.OverwriteSpan(4, src, 2, 4); err != nil {
		t.Fatalf("overwrite span: %v", err)
	}
	if b.String() != "012323" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.OverwriteStringSpan(1, "abcdef", 3, 5); err != nil {
		t.Fatalf("overwrite string span: %v", err)
	}
	if b.String() != "0de323" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.OverwriteSpan(0, src, 3, 2); !errors.Is(err, ErrRange) {
		t.Fatalf("reversed span: err=%v, want ErrRange", err)
	}
	if err := b.OverwriteSpan(0, src, 0, 5); !errors.Is(err, ErrRange) {
		t.Fatalf("span past source: err=%v, want ErrRange", err)
	}
	assertInvariants(t, b)
}

func TestOverwrite_SelfOverlap(t *testing.T) {
	b := mustString(t, 6, "abcd")
	if err := b.OverwriteSpan(1, b, 0, 3); err != nil {
		t.Fatalf("overwrite self: %v", err)
	}
	if b.String() != "aabc" {
		t.Fatalf("content=%q, want %q", b.String(), "aabc")
	}
}

func TestFill_ToCapacity(t *testing.T) {
	b := mustNew(t, 4)
	b.Fill('x')
	if b.String() != "xxxx" || b.Len() != b.Cap() {
		t.Fatalf("content=%q len=%d", b.String(), b.Len())
	}
	b.Fill('y')
	if b.String() != "xxxx" {
		t.Fatalf("fill on full buffer changed content: %q", b.String())
	}
	assertInvariants(t, b)
}

func TestFillTo(t *testing.T) {
	b := mustString(t, 6, "ab")
	if err := b.FillTo('-', 5); err != nil {
		t.Fatalf("fill to: %v", err)
	}
	if b.String() != "ab---" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.FillTo('-', 7); !errors.Is(err, ErrRange) {
		t.Fatalf("err=%v, want ErrRange", err)
	}
	if err := b.FillTo('-', -1); !errors.Is(err, ErrRange) {
		t.Fatalf("err=%v, want ErrRange", err)
	}
	assertInvariants(t, b)
}

func TestFillTo_BelowLengthTruncates(t *testing.T) {
	b := mustString(t, 6, "abcdef")
	if err := b.FillTo('-', 2); err != nil {
		t.Fatalf("fill to: %v", err)
	}
	if b.String() != "ab" || b.Len() != 2 {
		t.Fatalf("content=%q len=%d, want %q/2", b.String(), b.Len(), "ab")
	}
	// Bytes past the new terminator are left in place.
	if got := string(b.data[3:6]); got != "def" {
		t.Fatalf("tail=%q, want %q", got, "def")
	}
	if err := b.FillTo('-', 2); err != nil {
		t.Fatalf("fill to same length: %v", err)
	}
	if b.String() != "ab" {
		t.Fatalf("content=%q", b.String())
	}
	assertInvariants(t, b)
}

func TestClear_Idempotent(t *testing.T) {
	b := mustString(t, 4, "abcd")
	b.Clear()
	first := append([]byte(nil), b.data...)
	b.Clear()
	if b.Len() != 0 || b.data[0] != 0 {
		t.Fatalf("len=%d data[0]=%#x", b.Len(), b.data[0])
	}
	if string(first) != string(b.data) {
		t.Fatalf("second clear changed storage: %q -> %q", first, b.data)
	}
	assertInvariants(t, b)
}

func TestTruncate(t *testing.T) {
	b := mustString(t, 6, "abcdef")
	if err := b.Truncate(10); err != nil {
		t.Fatalf("truncate past length: %v", err)
	}
	if b.String() != "abcdef" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.Truncate(3); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if b.String() != "abc" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.Truncate(-1); !errors.Is(err, ErrRange) {
		t.Fatalf("err=%v, want ErrRange", err)
	}
	assertInvariants(t, b)
}

func TestWipe_ZeroesWholeStorage(t *testing.T) {
	b := mustString(t, 6, "secret")
	if err := b.Truncate(2); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	b.Wipe()
	for i, c := range b.data {
		if c != 0 {
			t.Fatalf("storage[%d]=%#x after wipe", i, c)
		}
	}
	if b.Len() != 2 || b.Cap() != 6 {
		t.Fatalf("len=%d cap=%d, want 2/6", b.Len(), b.Cap())
	}
	assertInvariants(t, b)
}

func TestSetString(t *testing.T) {
	b := mustString(t, 4, "abcd")
	if err := b.SetString("xy"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if b.String() != "xy" {
		t.Fatalf("content=%q", b.String())
	}
	if err := b.SetString("vwxyz"); !errors.Is(err, ErrRange) {
		t.Fatalf("err=%v, want ErrRange", err)
	}
	if b.String() != "xy" {
		t.Fatalf("content changed on failure: %q", b.String())
	}
	assertInvariants(t, b)
}

func TestWriter_AllOrNothing(t *testing.T) {
	b := mustNew(t, 8)
	var w io.Writer = b
	if n, err := w.Write([]byte("abc")); err != nil || n != 3 {
		t.Fatalf("write=%d,%v", n, err)
	}
	if n, err := b.WriteString("d\x00e"); err != nil || n != 3 {
		t.Fatalf("write string=%d,%v", n, err)
	}
	if err := b.WriteByte('f'); err != nil {
		t.Fatalf("write byte: %v", err)
	}
	if n, err := w.Write([]byte("xyz")); !errors.Is(err, ErrRange) || n != 0 {
		t.Fatalf("overflow write=%d,%v, want 0,ErrRange", n, err)
	}
	if b.String() != "abcd\x00ef" {
		t.Fatalf("content=%q", b.String())
	}
	assertInvariants(t, b)
}

func TestWriter_CopyFromReader(t *testing.T) {
	b := mustNew(t, 16)
	if _, err := io.Copy(b, strings.NewReader("fixed capacity")); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if b.String() != "fixed capacity" {
		t.Fatalf("content=%q", b.String())
	}
}
