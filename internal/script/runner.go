package script

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/charbuf/buffer"
)

// ErrInvariant reports a buffer observed with length past capacity or a
// missing terminator. It indicates a bug in package buffer.
var ErrInvariant = errors.New("buffer invariant violated")

type Options struct {
	StopOnError bool
	MaxSteps    int // default: 10000
}

// Error kinds reported in StepResult.Kind.
const (
	KindRange          = "range"
	KindAllocation     = "allocation"
	KindLengthOverflow = "length_overflow"
	KindInvalid        = "invalid"
)

// Snapshot is the observable state of a buffer.
type Snapshot struct {
	Content string `json:"content"`
	Len     int    `json:"len"`
	Cap     int    `json:"cap"`
}

type StepResult struct {
	Step   int      `json:"step"`
	Op     string   `json:"op"`
	Target string   `json:"target"`
	OK     bool     `json:"ok"`
	Kind   string   `json:"kind,omitempty"`
	Error  string   `json:"error,omitempty"`
	Value  string   `json:"value,omitempty"`
	State  Snapshot `json:"state"`
}

type Report struct {
	Results []StepResult        `json:"results"`
	Failed  int                 `json:"failed"`
	Final   map[string]Snapshot `json:"final"`
}

type runner struct {
	buffers map[string]*buffer.Buffer
}

// Run builds the declared buffers and applies the steps in order.
//
// Buffer errors (range, allocation) raised by a step are recorded in the
// step result and the run continues unless opt.StopOnError is set. A declared
// buffer that cannot be built, a malformed step, or an invariant violation
// aborts the run with an error; Kind classifies it.
func Run(s *Script, opt Options) (*Report, error) {
	if opt.MaxSteps == 0 {
		opt.MaxSteps = 10000
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(s.Steps) > opt.MaxSteps {
		return nil, errors.Wrapf(ErrInvalidStep, "%d steps exceed limit %d", len(s.Steps), opt.MaxSteps)
	}

	r := &runner{buffers: make(map[string]*buffer.Buffer, len(s.Buffers))}
	for _, name := range s.bufferNames() {
		b, err := newBuffer(s.Buffers[name])
		if err != nil {
			return nil, errors.Wrapf(err, "buffer %q", name)
		}
		r.buffers[name] = b
	}

	rep := &Report{}
	for i, st := range s.Steps {
		logger := log.With().Int("step", i).Str("op", st.Op).Str("target", st.target()).Logger()

		value, err := ops[st.Op](r, st)
		if errors.Is(err, ErrInvalidStep) {
			return rep, errors.Wrapf(err, "step %d (%s)", i, st.Op)
		}
		if verr := r.checkInvariants(); verr != nil {
			return rep, errors.Wrapf(verr, "after step %d (%s)", i, st.Op)
		}

		res := StepResult{
			Step:   i,
			Op:     st.Op,
			Target: st.target(),
			OK:     err == nil,
			Value:  value,
			State:  snapshot(r.target(st)),
		}
		if err != nil {
			res.Kind = Kind(err)
			res.Error = err.Error()
			rep.Failed++
			logger.Warn().Err(err).Str("kind", res.Kind).Msg("step failed")
		} else {
			logger.Debug().Str("value", value).Int("len", res.State.Len).Int("cap", res.State.Cap).Msg("step applied")
		}
		rep.Results = append(rep.Results, res)

		if err != nil && opt.StopOnError {
			break
		}
	}

	rep.Final = make(map[string]Snapshot, len(r.buffers))
	for name, b := range r.buffers {
		rep.Final[name] = snapshot(b)
	}
	return rep, nil
}

// Kind classifies a buffer error for reporting.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, buffer.ErrRange):
		return KindRange
	case errors.Is(err, buffer.ErrLengthOverflow):
		return KindLengthOverflow
	case errors.Is(err, buffer.ErrAllocation):
		return KindAllocation
	case errors.Is(err, ErrInvalidStep):
		return KindInvalid
	}
	return "unknown"
}

func newBuffer(spec BufferSpec) (*buffer.Buffer, error) {
	switch {
	case spec.Capacity != nil && spec.Text != nil:
		return buffer.NewString(*spec.Capacity, *spec.Text)
	case spec.Capacity != nil:
		return buffer.New(*spec.Capacity)
	case spec.Text != nil:
		return buffer.FromString(*spec.Text)
	}
	return nil, missing("capacity or text")
}

func (r *runner) target(st Step) *buffer.Buffer {
	return r.buffers[st.target()]
}

func (r *runner) source(st Step) (*buffer.Buffer, error) {
	if st.Source == "" {
		return nil, missing("source")
	}
	b, ok := r.buffers[st.Source]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidStep, "undeclared source %q", st.Source)
	}
	return b, nil
}

func (r *runner) checkInvariants() error {
	for name, b := range r.buffers {
		if b.Len() > b.Cap() {
			return errors.Wrapf(ErrInvariant, "buffer %q: len %d > cap %d", name, b.Len(), b.Cap())
		}
		if cs := b.CString(); len(cs) != b.Len()+1 || cs[b.Len()] != 0 {
			return errors.Wrapf(ErrInvariant, "buffer %q: missing terminator at %d", name, b.Len())
		}
	}
	return nil
}

func snapshot(b *buffer.Buffer) Snapshot {
	return Snapshot{Content: b.String(), Len: b.Len(), Cap: b.Cap()}
}
