package replay

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tychoish/soll"
	"github.com/tychoish/soll/cmp"
)

// Report records the outcome of a replay.
type Report struct {
	Type  string       `yaml:"type"`
	Steps []StepResult `yaml:"steps"`
	Final Snapshot     `yaml:"final"`
}

// StepResult records one replayed step and the sequence order of the
// list after it ran.
type StepResult struct {
	Index    int      `yaml:"index"`
	Op       string   `yaml:"op"`
	Pos      *int     `yaml:"pos,omitempty"`
	Value    string   `yaml:"value,omitempty"`
	Result   string   `yaml:"result,omitempty"`
	Error    string   `yaml:"error,omitempty"`
	Sequence []string `yaml:"sequence,flow"`
}

// Snapshot holds all four orders of a list.
type Snapshot struct {
	Size       int      `yaml:"size"`
	Sequence   []string `yaml:"sequence,flow"`
	Reverse    []string `yaml:"reverse,flow"`
	Ascending  []string `yaml:"ascending,flow"`
	Descending []string `yaml:"descending,flow"`
}

func snapshot[T cmp.Ordered](l *soll.List[T]) Snapshot {
	return Snapshot{
		Size:       l.Len(),
		Sequence:   strs(l.Slice()),
		Reverse:    strs(l.ReverseSlice()),
		Ascending:  strs(l.AscendingSlice()),
		Descending: strs(l.DescendingSlice()),
	}
}

// Output formats for reports.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Write renders the report in the named format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "", FormatText:
		return r.WriteText(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteYAML renders the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report, %w", err)
	}
	return enc.Close()
}

// WriteText renders the report as one line per step followed by the
// final state of the list.
func (r *Report) WriteText(w io.Writer) error {
	var buf strings.Builder
	for _, st := range r.Steps {
		fmt.Fprintf(&buf, "#%d %s", st.Index, st.Op)
		if st.Pos != nil {
			fmt.Fprintf(&buf, " pos=%d", *st.Pos)
		}
		if st.Value != "" {
			fmt.Fprintf(&buf, " value=%s", st.Value)
		}
		switch {
		case st.Error != "":
			fmt.Fprintf(&buf, " -> error: %s", st.Error)
		case st.Result != "":
			fmt.Fprintf(&buf, " -> %s", st.Result)
		}
		fmt.Fprintf(&buf, " [%s]\n", strings.Join(st.Sequence, " "))
	}

	fmt.Fprintf(&buf, "final (%s, size %d)\n", r.Type, r.Final.Size)
	for _, row := range []struct {
		name   string
		values []string
	}{
		{"sequence", r.Final.Sequence},
		{"reverse", r.Final.Reverse},
		{"ascending", r.Final.Ascending},
		{"descending", r.Final.Descending},
	} {
		fmt.Fprintf(&buf, "  %-11s %s\n", row.name+":", strings.Join(row.values, " "))
	}

	_, err := io.WriteString(w, buf.String())
	return err
}
