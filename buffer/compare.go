package buffer

// Compare returns -1, 0, or +1 comparing the content of b and other
// lexicographically by byte. A proper prefix sorts first.
func (b *Buffer) Compare(other *Buffer) int {
	return compareBytes(b.Bytes(), other.Bytes())
}

// CompareString compares the content of b with text.
func (b *Buffer) CompareString(text string) int {
	return compareBytes(b.Bytes(), []byte(cstr(text)))
}

func (b *Buffer) Equal(other *Buffer) bool {
	return b.length == other.length && compareBytes(b.Bytes(), other.Bytes()) == 0
}

func (b *Buffer) EqualString(text string) bool {
	t := cstr(text)
	return b.length == len(t) && compareBytes(b.Bytes(), []byte(t)) == 0
}

func (b *Buffer) Less(other *Buffer) bool { return b.Compare(other) < 0 }

func (b *Buffer) Greater(other *Buffer) bool { return b.Compare(other) > 0 }

func (b *Buffer) LessOrEqual(other *Buffer) bool { return b.Compare(other) <= 0 }

func (b *Buffer) GreaterOrEqual(other *Buffer) bool { return b.Compare(other) >= 0 }

func (b *Buffer) LessString(text string) bool { return b.CompareString(text) < 0 }

func (b *Buffer) GreaterString(text string) bool { return b.CompareString(text) > 0 }

func (b *Buffer) LessOrEqualString(text string) bool { return b.CompareString(text) <= 0 }

func (b *Buffer) GreaterOrEqualString(text string) bool { return b.CompareString(text) >= 0 }

// HasPrefix reports whether the content of b begins with the content of
// prefix.
func (b *Buffer) HasPrefix(prefix *Buffer) bool {
	return hasPrefix(b.Bytes(), prefix.Bytes())
}

func (b *Buffer) HasPrefixString(text string) bool {
	return hasPrefix(b.Bytes(), []byte(cstr(text)))
}

// HasSuffix reports whether the content of b ends with the content of
// suffix.
func (b *Buffer) HasSuffix(suffix *Buffer) bool {
	return hasSuffix(b.Bytes(), suffix.Bytes())
}

func (b *Buffer) HasSuffixString(text string) bool {
	return hasSuffix(b.Bytes(), []byte(cstr(text)))
}

func hasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && compareBytes(s[:len(prefix)], prefix) == 0
}

func hasSuffix(s, suffix []byte) bool {
	return len(s) >= len(suffix) && compareBytes(s[len(s)-len(suffix):], suffix) == 0
}

// compareBytes is the single ordering primitive behind every comparison.
func compareBytes(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
