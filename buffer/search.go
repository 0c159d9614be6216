package buffer

// Index returns the lowest offset at which the content of pattern occurs in
// b, or NotFound. An empty pattern matches at 0.
func (b *Buffer) Index(pattern *Buffer) int {
	return indexBytes(b.Bytes(), pattern.Bytes(), 0)
}

// IndexString returns the lowest offset at which text occurs in b, or
// NotFound.
func (b *Buffer) IndexString(text string) int {
	return indexBytes(b.Bytes(), []byte(cstr(text)), 0)
}

// IndexFrom is like Index but only reports matches at or after start.
// start may equal Len(), where only the empty pattern matches.
func (b *Buffer) IndexFrom(pattern *Buffer, start int) (int, error) {
	if start < 0 || start > b.length {
		return NotFound, rangeErrorf("index", "start %d outside length %d", start, b.length)
	}
	return indexBytes(b.Bytes(), pattern.Bytes(), start), nil
}

// IndexStringFrom is like IndexString but only reports matches at or after
// start.
func (b *Buffer) IndexStringFrom(text string, start int) (int, error) {
	if start < 0 || start > b.length {
		return NotFound, rangeErrorf("index", "start %d outside length %d", start, b.length)
	}
	return indexBytes(b.Bytes(), []byte(cstr(text)), start), nil
}

// indexBytes is a brute-force search, O(n*m) in the worst case.
func indexBytes(s, pattern []byte, start int) int {
	if len(pattern) > len(s)-start {
		return NotFound
	}
	if len(pattern) == 0 {
		return start
	}
	last := len(s) - len(pattern)
	for i := start; i <= last; i++ {
		if s[i] != pattern[0] {
			continue
		}
		j := 1
		for j < len(pattern) && s[i+j] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			return i
		}
	}
	return NotFound
}
