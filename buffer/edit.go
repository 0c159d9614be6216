package buffer

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.setLen(0)
}

// Truncate shortens the content to n bytes. It is a no-op when n >= Len().
func (b *Buffer) Truncate(n int) error {
	if n < 0 {
		return rangeErrorf("truncate", "negative length %d", n)
	}
	if n < b.length {
		b.setLen(n)
	}
	return nil
}

// Wipe zeroes the whole storage, including bytes past the content. Length
// and capacity are unchanged.
func (b *Buffer) Wipe() {
	clear(b.data)
}

// SetString replaces the content with text.
func (b *Buffer) SetString(text string) error {
	n, err := textLen(text)
	if err != nil {
		return err
	}
	if n > b.Cap() {
		return fitError("set", n, b.Cap())
	}
	copy(b.data, text[:n])
	b.setLen(n)
	return nil
}

// CopyRaw replaces the content with data.
func (b *Buffer) CopyRaw(data []byte) error {
	return b.CopyRawSpan(data, 0, len(data))
}

// CopyRawSpan replaces the content with data[start:end].
func (b *Buffer) CopyRawSpan(data []byte, start, end int) error {
	if !validSpan(start, end, len(data)) {
		return spanError("copy", start, end, len(data))
	}
	n := end - start
	if n > b.Cap() {
		return fitError("copy", n, b.Cap())
	}
	copy(b.data, data[start:end])
	b.setLen(n)
	return nil
}

// Substring keeps only the content span [start, end).
func (b *Buffer) Substring(start, end int) error {
	if !validSpan(start, end, b.length) {
		return spanError("substring", start, end, b.length)
	}
	if start > 0 {
		copy(b.data, b.data[start:end])
	}
	b.setLen(end - start)
	return nil
}

// SubstringOf replaces the content with the span [start, end) of src.
func (b *Buffer) SubstringOf(src *Buffer, start, end int) error {
	if src == b {
		return b.Substring(start, end)
	}
	if !validSpan(start, end, src.length) {
		return spanError("substring", start, end, src.length)
	}
	n := end - start
	if n > b.Cap() {
		return fitError("substring", n, b.Cap())
	}
	copy(b.data, src.data[start:end])
	b.setLen(n)
	return nil
}

// Append appends the span [start, end) of src.
func (b *Buffer) Append(src *Buffer, start, end int) error {
	if !validSpan(start, end, src.length) {
		return spanError("append", start, end, src.length)
	}
	return b.appendBytes("append", src.data[start:end])
}

// AppendBuffer appends the whole content of src.
func (b *Buffer) AppendBuffer(src *Buffer) error {
	return b.appendBytes("append", src.Bytes())
}

// AppendString appends text.
func (b *Buffer) AppendString(text string) error {
	n, err := textLen(text)
	if err != nil {
		return err
	}
	if n > b.Available() {
		return fitError("append", n, b.Available())
	}
	copy(b.data[b.length:], text[:n])
	b.setLen(b.length + n)
	return nil
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) error {
	if b.length >= b.Cap() {
		return fitError("append", 1, 0)
	}
	b.data[b.length] = c
	b.setLen(b.length + 1)
	return nil
}

// AppendRaw appends data.
func (b *Buffer) AppendRaw(data []byte) error {
	return b.appendBytes("append", data)
}

// AppendRawSpan appends data[start:end].
func (b *Buffer) AppendRawSpan(data []byte, start, end int) error {
	if !validSpan(start, end, len(data)) {
		return spanError("append", start, end, len(data))
	}
	return b.appendBytes("append", data[start:end])
}

func (b *Buffer) appendBytes(op string, p []byte) error {
	if len(p) > b.Available() {
		return fitError(op, len(p), b.Available())
	}
	copy(b.data[b.length:], p)
	b.setLen(b.length + len(p))
	return nil
}

// Overwrite copies the content of src into b starting at dst. The length
// grows only if the write ends past the current content.
func (b *Buffer) Overwrite(dst int, src *Buffer) error {
	return b.overwrite(dst, src.Bytes(), 0, src.length)
}

// OverwriteSpan copies the span [start, end) of src into b starting at dst.
func (b *Buffer) OverwriteSpan(dst int, src *Buffer, start, end int) error {
	return b.overwrite(dst, src.Bytes(), start, end)
}

// OverwriteString copies text into b starting at dst.
func (b *Buffer) OverwriteString(dst int, text string) error {
	t := cstr(text)
	return b.overwrite(dst, []byte(t), 0, len(t))
}

// OverwriteStringSpan copies the span [start, end) of text into b starting
// at dst.
func (b *Buffer) OverwriteStringSpan(dst int, text string, start, end int) error {
	return b.overwrite(dst, []byte(cstr(text)), start, end)
}

func (b *Buffer) overwrite(dst int, src []byte, start, end int) error {
	// No gaps: writing may start at most at the current end of content.
	if dst < 0 || dst > b.Cap() || dst > b.length {
		return rangeErrorf("overwrite", "destination %d beyond length %d", dst, b.length)
	}
	if !validSpan(start, end, len(src)) {
		return spanError("overwrite", start, end, len(src))
	}
	n := end - start
	if n > b.Cap()-dst {
		return fitError("overwrite", n, b.Cap()-dst)
	}
	copy(b.data[dst:], src[start:end])
	if dst+n > b.length {
		b.setLen(dst + n)
	}
	return nil
}

// Fill pads the content with c up to the full capacity.
func (b *Buffer) Fill(c byte) {
	for i := b.length; i < b.Cap(); i++ {
		b.data[i] = c
	}
	b.setLen(b.Cap())
}

// FillTo pads the content with c up to target bytes. When target is not
// past the current length, the content is cut to target the way Truncate
// cuts it; bytes past the new terminator are not cleared.
func (b *Buffer) FillTo(c byte, target int) error {
	if target < 0 || target > b.Cap() {
		return rangeErrorf("fill", "target %d outside capacity %d", target, b.Cap())
	}
	for i := b.length; i < target; i++ {
		b.data[i] = c
	}
	b.setLen(target)
	return nil
}

// Write appends p in full or not at all. It implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.appendBytes("write", p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString appends s in full or not at all. Unlike AppendString, NUL
// bytes in s are written as content. It implements io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	if len(s) > b.Available() {
		return 0, fitError("write", len(s), b.Available())
	}
	copy(b.data[b.length:], s)
	b.setLen(b.length + len(s))
	return len(s), nil
}

// WriteByte implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	return b.AppendByte(c)
}
