package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/charbuf/buffer"
	"github.com/iw2rmb/charbuf/internal/display"
)

type model struct {
	buf    *buffer.Buffer
	keys   keyMap
	styles styles
	status string
	err    error
}

func newModel(buf *buffer.Buffer, st styles) model {
	return model{
		buf:    buf,
		keys:   defaultKeyMap(),
		styles: st,
		status: "type to append",
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(k, m.keys.Backspace):
		if m.buf.Len() > 0 {
			m.err = m.buf.Truncate(m.buf.Len() - 1)
		}
		m.status = "truncate"
	case key.Matches(k, m.keys.Clear):
		m.buf.Clear()
		m.status = "clear"
	case key.Matches(k, m.keys.Wipe):
		m.buf.Wipe()
		m.status = "wipe"
	case key.Matches(k, m.keys.Fill):
		m.buf.Fill('.')
		m.status = "fill"
	case k.Type == tea.KeyRunes || k.Type == tea.KeySpace:
		m.err = m.appendRunes(k.Runes)
		m.status = "append"
	}
	return m, nil
}

// appendRunes writes the UTF-8 encoding of runes in one write, so a paste
// that does not fit leaves the buffer unchanged.
func (m model) appendRunes(runes []rune) error {
	p := make([]byte, 0, len(runes)*utf8.UTFMax)
	for _, r := range runes {
		p = utf8.AppendRune(p, r)
	}
	_, err := m.buf.Write(p)
	return err
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("charbuf demo"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Content.Render(display.Render(m.buf.Bytes())))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Gauge.Render(display.Slots(m.buf.Len(), m.buf.Cap())))
	fmt.Fprintf(&sb, " %d/%d\n\n", m.buf.Len(), m.buf.Cap())

	if m.err != nil {
		sb.WriteString(m.styles.Error.Render(m.err.Error()))
	} else {
		sb.WriteString(m.styles.Status.Render(m.status))
	}
	sb.WriteString("\n")

	help := make([]string, 0, len(m.keys.bindings()))
	for _, b := range m.keys.bindings() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	sb.WriteString(m.styles.Help.Render(strings.Join(help, " • ")))
	return sb.String()
}

func main() {
	capacity := pflag.IntP("capacity", "c", 16, "buffer capacity in bytes")
	text := pflag.StringP("text", "t", "", "initial content")
	pflag.Parse()

	buf, err := buffer.NewString(*capacity, *text)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(buf, defaultStyles(lipgloss.DefaultRenderer())))
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
