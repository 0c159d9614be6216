// Package script runs YAML-described operation sequences against named
// fixed-capacity buffers and reports the outcome of every step.
package script

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidStep reports a malformed script: an unknown op, a missing or
// malformed argument, or a reference to an undeclared buffer.
var ErrInvalidStep = errors.New("invalid step")

// MainBuffer is the target of steps that do not name one.
const MainBuffer = "main"

// Script is the decoded form of a script document.
//
//	buffers:
//	  main: {capacity: 10, text: abc}
//	  pat:  {text: ana}
//	steps:
//	  - op: substring
//	    start: 1
//	    end: 3
//	  - op: index
//	    source: pat
type Script struct {
	Buffers map[string]BufferSpec `yaml:"buffers"`
	Steps   []Step                `yaml:"steps"`
}

// BufferSpec declares a buffer. Capacity alone gives an empty buffer, text
// alone gives a buffer sized to the text, both give a buffer of that
// capacity holding the text.
type BufferSpec struct {
	Capacity *int    `yaml:"capacity"`
	Text     *string `yaml:"text"`
}

// Step is one operation. Which fields apply depends on Op.
type Step struct {
	Op     string  `yaml:"op"`
	Target string  `yaml:"target"`
	Source string  `yaml:"source"`
	Text   *string `yaml:"text"`
	Data   *string `yaml:"data"`
	Char   string  `yaml:"char"`

	Capacity *int `yaml:"capacity"`
	Start    *int `yaml:"start"`
	End      *int `yaml:"end"`
	Dst      *int `yaml:"dst"`
	Index    *int `yaml:"index"`
	Length   *int `yaml:"length"`
}

// Parse decodes a script document. Unknown fields are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidStep, "empty script")
		}
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Script, error) {
	return Parse(bytes.NewReader(data))
}

// ParseFile reads and decodes a script file. The path "-" reads stdin.
func ParseFile(path string) (*Script, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Validate checks the static shape of the script: declared buffers, known
// ops, and buffer references.
func (s *Script) Validate() error {
	if len(s.Buffers) == 0 {
		return errors.Wrap(ErrInvalidStep, "script declares no buffers")
	}
	for _, name := range s.bufferNames() {
		spec := s.Buffers[name]
		if spec.Capacity == nil && spec.Text == nil {
			return errors.Wrapf(ErrInvalidStep, "buffer %q needs capacity or text", name)
		}
	}
	for i, st := range s.Steps {
		if _, ok := ops[st.Op]; !ok {
			return errors.Wrapf(ErrInvalidStep, "step %d: unknown op %q", i, st.Op)
		}
		if _, ok := s.Buffers[st.target()]; !ok {
			return errors.Wrapf(ErrInvalidStep, "step %d: undeclared target %q", i, st.target())
		}
		if st.Source != "" {
			if _, ok := s.Buffers[st.Source]; !ok {
				return errors.Wrapf(ErrInvalidStep, "step %d: undeclared source %q", i, st.Source)
			}
		}
	}
	return nil
}

func (s *Script) bufferNames() []string {
	names := make([]string, 0, len(s.Buffers))
	for name := range s.Buffers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (st Step) target() string {
	if st.Target == "" {
		return MainBuffer
	}
	return st.Target
}
