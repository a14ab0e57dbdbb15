package replay

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/tychoish/soll"
	"github.com/tychoish/soll/cmp"
)

// Options controls a replay.
type Options struct {
	// Check validates the structure of the list after every step and
	// aborts the replay on the first violation.
	Check bool

	// Logger optionally specifies a logger for the replay.
	// A nil Logger will disable the logging.
	Logger *zap.Logger
}

var nopLogger = zap.NewNop()

func (opts *Options) init() {
	if opts.Logger == nil {
		opts.Logger = nopLogger
	}
}

// Run replays the scenario against a new list. Out of range errors
// are part of the outcome of a step and are recorded in the report;
// any other error, such as a value that does not parse as the
// scenario's type, aborts the replay.
func Run(sc *Scenario, opts Options) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	opts.init()

	switch sc.Type {
	case TypeInt:
		return run(sc, opts, strconv.Atoi)
	case TypeFloat:
		return run(sc, opts, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	default:
		return run(sc, opts, func(s string) (string, error) { return s, nil })
	}
}

type runner[T cmp.Ordered] struct {
	list   *soll.List[T]
	parse  func(string) (T, error)
	logger *zap.Logger
}

func run[T cmp.Ordered](sc *Scenario, opts Options, parse func(string) (T, error)) (*Report, error) {
	r := &runner[T]{list: soll.New[T](), parse: parse, logger: opts.Logger}

	for idx, raw := range sc.Initial {
		v, err := parse(raw)
		if err != nil {
			return nil, fmt.Errorf("initial value %d, %w", idx, err)
		}
		r.list.PushBack(v)
	}
	r.logger.Debug("initial list", zap.Object("list", r.list))

	report := &Report{Type: typeName(sc.Type), Steps: make([]StepResult, 0, len(sc.Steps))}
	for idx, st := range sc.Steps {
		res, err := r.step(st)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s), %w", idx, st.Op, err)
		}
		res.Index = idx
		res.Sequence = strs(r.list.Slice())
		report.Steps = append(report.Steps, res)

		if opts.Check {
			if err := r.list.Validate(); err != nil {
				r.logger.Error("list corrupted", zap.Int("step", idx), zap.Error(err))
				return nil, fmt.Errorf("step %d (%s), %w", idx, st.Op, err)
			}
		}
	}

	report.Final = snapshot(r.list)
	r.logger.Info("replay finished", zap.Int("steps", len(sc.Steps)), zap.Object("list", r.list))
	return report, nil
}

func (r *runner[T]) step(st Step) (res StepResult, err error) {
	res.Op = st.Op
	res.Pos = st.Pos
	if st.Value != nil {
		res.Value = *st.Value
	}

	var v T
	if st.Value != nil {
		if v, err = r.parse(*st.Value); err != nil {
			return res, fmt.Errorf("invalid value %q, %w", *st.Value, err)
		}
	}

	var out string
	switch st.Op {
	case OpPushBack:
		r.list.PushBack(v)
	case OpPushFront:
		r.list.PushFront(v)
	case OpInsert:
		err = r.list.Insert(*st.Pos, v)
	case OpRemove:
		var got T
		if got, err = r.list.Remove(*st.Pos); err == nil {
			out = fmt.Sprint(got)
		}
	case OpPopBack:
		out = popped[T](r.list.PopBack())
	case OpPopFront:
		out = popped[T](r.list.PopFront())
	case OpGet:
		var got T
		if got, err = r.list.Get(*st.Pos); err == nil {
			out = fmt.Sprint(got)
		}
	case OpSearch:
		out = strconv.Itoa(r.list.Search(v))
	case OpSet:
		err = r.list.Set(*st.Pos, v)
	case OpContains:
		out = strconv.FormatBool(r.list.Contains(v))
	case OpClear:
		r.list.Clear()
	}

	switch {
	case errors.Is(err, soll.ErrOutOfRange):
		r.logger.Warn("operation failed", zap.String("op", st.Op), zap.Error(err))
		res.Error = err.Error()
		return res, nil
	case err != nil:
		return res, err
	}

	res.Result = out
	r.logger.Debug("operation applied",
		zap.String("op", st.Op),
		zap.String("result", out),
		zap.Object("list", r.list),
	)
	return res, nil
}

func popped[T any](v T, ok bool) string {
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

func typeName(t string) string {
	if t == "" {
		return TypeString
	}
	return t
}

func strs[T any](in []T) []string {
	out := make([]string, len(in))
	for idx := range in {
		out[idx] = fmt.Sprint(in[idx])
	}
	return out
}
