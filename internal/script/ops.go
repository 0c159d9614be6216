package script

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/iw2rmb/charbuf/buffer"
)

// opFunc applies one step. The returned string is the step value, if the op
// produces one.
type opFunc func(r *runner, st Step) (string, error)

var ops map[string]opFunc

func init() {
	ops = map[string]opFunc{
		"new":           opNew,
		"clone":         opClone,
		"assign":        opAssign,
		"move":          opMove,
		"set":           opSet,
		"clear":         opClear,
		"truncate":      opTruncate,
		"wipe":          opWipe,
		"copy_raw":      opCopyRaw,
		"substring":     opSubstring,
		"append":        opAppend,
		"write":         opWrite,
		"overwrite":     opOverwrite,
		"fill":          opFill,
		"at":            opAt,
		"set_at":        opSetAt,
		"compare":       opCompare,
		"equal":         opEqual,
		"less":          opRelational(func(c int) bool { return c < 0 }),
		"greater":       opRelational(func(c int) bool { return c > 0 }),
		"less_equal":    opRelational(func(c int) bool { return c <= 0 }),
		"greater_equal": opRelational(func(c int) bool { return c >= 0 }),
		"has_prefix":    opHasPrefix,
		"has_suffix":    opHasSuffix,
		"index":         opIndex,
	}
}

func opNew(r *runner, st Step) (string, error) {
	b, err := newBuffer(BufferSpec{Capacity: st.Capacity, Text: st.Text})
	if err != nil {
		return "", err
	}
	r.buffers[st.target()] = b
	return "", nil
}

func opClone(r *runner, st Step) (string, error) {
	src, err := r.source(st)
	if err != nil {
		return "", err
	}
	r.buffers[st.target()] = src.Clone()
	return "", nil
}

func opAssign(r *runner, st Step) (string, error) {
	src, err := r.source(st)
	if err != nil {
		return "", err
	}
	return "", r.target(st).Assign(src)
}

func opMove(r *runner, st Step) (string, error) {
	src, err := r.source(st)
	if err != nil {
		return "", err
	}
	r.target(st).MoveFrom(src)
	return "", nil
}

func opSet(r *runner, st Step) (string, error) {
	text, err := requireText(st)
	if err != nil {
		return "", err
	}
	return "", r.target(st).SetString(text)
}

func opClear(r *runner, st Step) (string, error) {
	r.target(st).Clear()
	return "", nil
}

func opTruncate(r *runner, st Step) (string, error) {
	n, err := requireInt(st.Length, "length")
	if err != nil {
		return "", err
	}
	return "", r.target(st).Truncate(n)
}

func opWipe(r *runner, st Step) (string, error) {
	r.target(st).Wipe()
	return "", nil
}

func opCopyRaw(r *runner, st Step) (string, error) {
	if st.Data == nil {
		return "", missing("data")
	}
	data := []byte(*st.Data)
	if st.Start == nil && st.End == nil {
		return "", r.target(st).CopyRaw(data)
	}
	start, end, err := requireSpan(st)
	if err != nil {
		return "", err
	}
	return "", r.target(st).CopyRawSpan(data, start, end)
}

func opSubstring(r *runner, st Step) (string, error) {
	start, end, err := requireSpan(st)
	if err != nil {
		return "", err
	}
	if st.Source == "" {
		return "", r.target(st).Substring(start, end)
	}
	src, err := r.source(st)
	if err != nil {
		return "", err
	}
	return "", r.target(st).SubstringOf(src, start, end)
}

func opAppend(r *runner, st Step) (string, error) {
	b := r.target(st)
	switch {
	case st.Source != "":
		src, err := r.source(st)
		if err != nil {
			return "", err
		}
		if st.Start == nil && st.End == nil {
			return "", b.AppendBuffer(src)
		}
		start, end, err := requireSpan(st)
		if err != nil {
			return "", err
		}
		return "", b.Append(src, start, end)
	case st.Data != nil:
		data := []byte(*st.Data)
		if st.Start == nil && st.End == nil {
			return "", b.AppendRaw(data)
		}
		start, end, err := requireSpan(st)
		if err != nil {
			return "", err
		}
		return "", b.AppendRawSpan(data, start, end)
	case st.Char != "":
		c, err := requireChar(st)
		if err != nil {
			return "", err
		}
		return "", b.AppendByte(c)
	case st.Text != nil:
		return "", b.AppendString(*st.Text)
	}
	return "", missing("source, data, char, or text")
}

func opWrite(r *runner, st Step) (string, error) {
	if st.Data == nil {
		return "", missing("data")
	}
	n, err := r.target(st).Write([]byte(*st.Data))
	return strconv.Itoa(n), err
}

func opOverwrite(r *runner, st Step) (string, error) {
	dst, err := requireInt(st.Dst, "dst")
	if err != nil {
		return "", err
	}
	b := r.target(st)
	whole := st.Start == nil && st.End == nil
	if st.Source != "" {
		src, err := r.source(st)
		if err != nil {
			return "", err
		}
		if whole {
			return "", b.Overwrite(dst, src)
		}
		start, end, err := requireSpan(st)
		if err != nil {
			return "", err
		}
		return "", b.OverwriteSpan(dst, src, start, end)
	}
	text, err := requireText(st)
	if err != nil {
		return "", err
	}
	if whole {
		return "", b.OverwriteString(dst, text)
	}
	start, end, err := requireSpan(st)
	if err != nil {
		return "", err
	}
	return "", b.OverwriteStringSpan(dst, text, start, end)
}

func opFill(r *runner, st Step) (string, error) {
	c, err := requireChar(st)
	if err != nil {
		return "", err
	}
	if st.Length == nil {
		r.target(st).Fill(c)
		return "", nil
	}
	return "", r.target(st).FillTo(c, *st.Length)
}

func opAt(r *runner, st Step) (string, error) {
	i, err := requireInt(st.Index, "index")
	if err != nil {
		return "", err
	}
	c, err := r.target(st).At(i)
	if err != nil {
		return "", err
	}
	return strconv.QuoteToASCII(string([]byte{c})), nil
}

func opSetAt(r *runner, st Step) (string, error) {
	i, err := requireInt(st.Index, "index")
	if err != nil {
		return "", err
	}
	c, err := requireChar(st)
	if err != nil {
		return "", err
	}
	return "", r.target(st).SetAt(i, c)
}

func opCompare(r *runner, st Step) (string, error) {
	c, err := r.compare(st)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(c), nil
}

func opEqual(r *runner, st Step) (string, error) {
	b := r.target(st)
	if st.Source != "" {
		src, err := r.source(st)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b.Equal(src)), nil
	}
	text, err := requireText(st)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(b.EqualString(text)), nil
}

func opRelational(pred func(int) bool) opFunc {
	return func(r *runner, st Step) (string, error) {
		c, err := r.compare(st)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(pred(c)), nil
	}
}

func opHasPrefix(r *runner, st Step) (string, error) {
	b := r.target(st)
	if st.Source != "" {
		src, err := r.source(st)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b.HasPrefix(src)), nil
	}
	text, err := requireText(st)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(b.HasPrefixString(text)), nil
}

func opHasSuffix(r *runner, st Step) (string, error) {
	b := r.target(st)
	if st.Source != "" {
		src, err := r.source(st)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b.HasSuffix(src)), nil
	}
	text, err := requireText(st)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(b.HasSuffixString(text)), nil
}

func opIndex(r *runner, st Step) (string, error) {
	b := r.target(st)
	var (
		idx int
		err error
	)
	if st.Source != "" {
		src, serr := r.source(st)
		if serr != nil {
			return "", serr
		}
		if st.Start == nil {
			idx = b.Index(src)
		} else {
			idx, err = b.IndexFrom(src, *st.Start)
		}
	} else {
		text, terr := requireText(st)
		if terr != nil {
			return "", terr
		}
		if st.Start == nil {
			idx = b.IndexString(text)
		} else {
			idx, err = b.IndexStringFrom(text, *st.Start)
		}
	}
	if err != nil {
		return "", err
	}
	return formatIndex(idx), nil
}

// NotFoundValue is the step value reported for a failed search.
const NotFoundValue = "not_found"

func formatIndex(idx int) string {
	if idx == buffer.NotFound {
		return NotFoundValue
	}
	return strconv.Itoa(idx)
}

func (r *runner) compare(st Step) (int, error) {
	b := r.target(st)
	if st.Source != "" {
		src, err := r.source(st)
		if err != nil {
			return 0, err
		}
		return b.Compare(src), nil
	}
	text, err := requireText(st)
	if err != nil {
		return 0, err
	}
	return b.CompareString(text), nil
}

func missing(arg string) error {
	return errors.Wrapf(ErrInvalidStep, "missing %s", arg)
}

func requireInt(v *int, name string) (int, error) {
	if v == nil {
		return 0, missing(name)
	}
	return *v, nil
}

func requireSpan(st Step) (int, int, error) {
	start, err := requireInt(st.Start, "start")
	if err != nil {
		return 0, 0, err
	}
	end, err := requireInt(st.End, "end")
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func requireText(st Step) (string, error) {
	if st.Text == nil {
		return "", missing("text")
	}
	return *st.Text, nil
}

func requireChar(st Step) (byte, error) {
	if len(st.Char) != 1 {
		return 0, errors.Wrapf(ErrInvalidStep, "char must be a single byte, got %q", st.Char)
	}
	return st.Char[0], nil
}
