package replay

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/tychoish/soll"
)

const scenarioYAML = `
type: int
initial: [5, 3, 5]
steps:
  - {op: push_back, value: 4}
  - {op: get, pos: 3}
  - {op: search, value: 3}
  - {op: remove, pos: 9}
  - {op: set, pos: 0, value: 1}
  - {op: contains, value: 1}
  - {op: pop_front}
`

func TestDecode(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		sc, err := Decode(strings.NewReader(scenarioYAML))
		require.NoError(t, err)
		assert.Equal(t, TypeInt, sc.Type)
		assert.Equal(t, []string{"5", "3", "5"}, sc.Initial)
		require.Len(t, sc.Steps, 7)
		assert.Equal(t, OpPushBack, sc.Steps[0].Op)
		require.NotNil(t, sc.Steps[0].Value)
		assert.Equal(t, "4", *sc.Steps[0].Value)
		assert.Nil(t, sc.Steps[0].Pos)
		require.NotNil(t, sc.Steps[1].Pos)
		assert.Equal(t, 3, *sc.Steps[1].Pos)
	})
	t.Run("UnknownKey", func(t *testing.T) {
		_, err := Decode(strings.NewReader("type: int\nsize: 4\n"))
		assert.Error(t, err)
	})
	t.Run("UnknownOperation", func(t *testing.T) {
		_, err := Decode(strings.NewReader("steps:\n  - {op: shuffle}\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidScenario)
	})
	t.Run("MissingArguments", func(t *testing.T) {
		_, err := Decode(strings.NewReader("steps:\n  - {op: insert, value: 1}\n  - {op: search}\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidScenario)
		assert.Contains(t, err.Error(), "step 0: insert requires pos")
		assert.Contains(t, err.Error(), "step 1: search requires value")
	})
	t.Run("UnknownType", func(t *testing.T) {
		_, err := Decode(strings.NewReader("type: complex\n"))
		assert.ErrorIs(t, err, ErrInvalidScenario)
	})
	t.Run("SentinelIsConstant", func(t *testing.T) {
		_, err := Decode(strings.NewReader("type: complex\n"))
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "invalid scenario: "))
		assert.Equal(t, soll.Error("invalid scenario"), ErrInvalidScenario)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o600))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sc.Steps, 7)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	t.Run("Scenario", func(t *testing.T) {
		sc, err := Decode(strings.NewReader(scenarioYAML))
		require.NoError(t, err)

		report, err := Run(sc, Options{Check: true})
		require.NoError(t, err)
		require.Len(t, report.Steps, 7)

		// push_back 4
		assert.Equal(t, []string{"5", "3", "5", "4"}, report.Steps[0].Sequence)
		// get promotes the tail
		assert.Equal(t, "4", report.Steps[1].Result)
		assert.Equal(t, []string{"5", "3", "4", "5"}, report.Steps[1].Sequence)
		// search reports the position after promotion
		assert.Equal(t, "0", report.Steps[2].Result)
		assert.Equal(t, []string{"3", "5", "4", "5"}, report.Steps[2].Sequence)
		// range errors are recorded, not fatal
		assert.Contains(t, report.Steps[3].Error, "out of range")
		assert.Empty(t, report.Steps[3].Result)
		assert.Equal(t, []string{"1", "5", "4", "5"}, report.Steps[4].Sequence)
		assert.Equal(t, "true", report.Steps[5].Result)
		assert.Equal(t, "1", report.Steps[6].Result)

		assert.Equal(t, Snapshot{
			Size:       3,
			Sequence:   []string{"5", "4", "5"},
			Reverse:    []string{"5", "4", "5"},
			Ascending:  []string{"4", "5", "5"},
			Descending: []string{"5", "5", "4"},
		}, report.Final)
	})
	t.Run("Strings", func(t *testing.T) {
		report, err := Run(&Scenario{
			Initial: []string{"b", "a"},
			Steps:   []Step{{Op: OpClear}, {Op: OpPopBack}, {Op: OpPushBack, Value: ref("c")}},
		}, Options{})
		require.NoError(t, err)
		assert.Equal(t, TypeString, report.Type)
		assert.Empty(t, report.Steps[1].Result)
		assert.Equal(t, []string{"c"}, report.Final.Sequence)
	})
	t.Run("Floats", func(t *testing.T) {
		report, err := Run(&Scenario{
			Type:    TypeFloat,
			Initial: []string{"2.5", "0.5"},
			Steps:   []Step{{Op: OpInsert, Pos: ref(1), Value: ref("1.5")}},
		}, Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"0.5", "1.5", "2.5"}, report.Final.Ascending)
	})
	t.Run("BadValue", func(t *testing.T) {
		_, err := Run(&Scenario{
			Type:  TypeInt,
			Steps: []Step{{Op: OpPushBack, Value: ref("seven")}},
		}, Options{})
		require.Error(t, err)
		assert.False(t, errors.Is(err, soll.ErrOutOfRange))

		_, err = Run(&Scenario{Type: TypeInt, Initial: []string{"x"}}, Options{})
		assert.Error(t, err)
	})
	t.Run("Invalid", func(t *testing.T) {
		_, err := Run(&Scenario{Steps: []Step{{Op: OpGet}}}, Options{})
		assert.ErrorIs(t, err, ErrInvalidScenario)
	})
	t.Run("Demo", func(t *testing.T) {
		report, err := Run(Demo(), Options{Check: true})
		require.NoError(t, err)
		assert.Len(t, report.Steps, len(Demo().Steps))

		var failures int
		for _, st := range report.Steps {
			if st.Error != "" {
				failures++
			}
		}
		assert.Equal(t, 2, failures)
		assert.Equal(t, report.Final.Size, len(report.Final.Ascending))
	})
	t.Run("Logging", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		_, err := Run(Demo(), Options{Logger: zap.New(core)})
		require.NoError(t, err)

		assert.Equal(t, 2, logs.FilterMessage("operation failed").Len())
		assert.Equal(t, 1, logs.FilterMessage("replay finished").Len())
		assert.NotZero(t, logs.FilterMessage("operation applied").Len())
	})
}

func TestReport(t *testing.T) {
	report, err := Run(&Scenario{
		Type:    TypeInt,
		Initial: []string{"3", "1", "2"},
		Steps: []Step{
			{Op: OpGet, Pos: ref(2)},
			{Op: OpRemove, Pos: ref(5)},
		},
	}, Options{})
	require.NoError(t, err)

	t.Run("Text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, report.Write(buf, FormatText))
		out := buf.String()
		assert.Contains(t, out, "#0 get pos=2 -> 2 [3 2 1]\n")
		assert.Contains(t, out, "#1 remove pos=5 -> error: remove: position 5, length 3: out of range [3 2 1]\n")
		assert.Contains(t, out, "final (int, size 3)\n")
		assert.Contains(t, out, "  ascending:  1 2 3\n")
		assert.Contains(t, out, "  descending: 3 2 1\n")
	})
	t.Run("YAML", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, report.Write(buf, FormatYAML))

		var out Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, *report, out)
	})
	t.Run("UnknownFormat", func(t *testing.T) {
		assert.Error(t, report.Write(&bytes.Buffer{}, "xml"))
	})
}
