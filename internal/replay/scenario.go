// Package replay loads scenarios, sequences of list operations
// described in YAML, and replays them against a soll.List while
// recording the outcome of every step.
package replay

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/tychoish/soll"
)

// Operation names accepted in scenario steps.
const (
	OpPushBack  = "push_back"
	OpPushFront = "push_front"
	OpInsert    = "insert"
	OpRemove    = "remove"
	OpPopBack   = "pop_back"
	OpPopFront  = "pop_front"
	OpGet       = "get"
	OpSearch    = "search"
	OpSet       = "set"
	OpContains  = "contains"
	OpClear     = "clear"
)

// Value types a scenario may declare.
const (
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeString = "string"
)

// ErrInvalidScenario is returned (wrapped) when a scenario names an
// unknown operation or type, or omits an argument its operation needs.
const ErrInvalidScenario soll.Error = "invalid scenario"

// Scenario is a list of operations to replay against an initially
// populated list. Values are kept as strings and parsed according to
// Type when the scenario runs.
type Scenario struct {
	Type    string   `yaml:"type"`
	Initial []string `yaml:"initial"`
	Steps   []Step   `yaml:"steps"`
}

// Step is one operation. Pos is required by positional operations,
// Value by operations that take a value.
type Step struct {
	Op    string  `yaml:"op"`
	Pos   *int    `yaml:"pos,omitempty"`
	Value *string `yaml:"value,omitempty"`
}

type requirement struct{ pos, value bool }

var operations = map[string]requirement{
	OpPushBack:  {value: true},
	OpPushFront: {value: true},
	OpInsert:    {pos: true, value: true},
	OpRemove:    {pos: true},
	OpPopBack:   {},
	OpPopFront:  {},
	OpGet:       {pos: true},
	OpSearch:    {value: true},
	OpSet:       {pos: true, value: true},
	OpContains:  {value: true},
	OpClear:     {},
}

// Load reads a scenario from a file. The format follows the file
// extension (YAML, JSON and TOML are all accepted).
func Load(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return decode(v)
}

// Decode reads a YAML scenario from r.
func Decode(r io.Reader) (*Scenario, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Scenario, error) {
	decoderOpt := func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
		cfg.TagName = "yaml"
		cfg.WeaklyTypedInput = true
	}

	sc := new(Scenario)
	if err := v.Unmarshal(sc, decoderOpt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Validate checks the value type, the operation names, and that each
// step carries the arguments its operation needs. An empty Type means
// string.
func (sc *Scenario) Validate() error {
	var errs []error
	switch sc.Type {
	case "", TypeInt, TypeFloat, TypeString:
	default:
		errs = append(errs, fmt.Errorf("unknown value type %q", sc.Type))
	}

	for idx, st := range sc.Steps {
		req, ok := operations[st.Op]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("step %d: unknown operation %q", idx, st.Op))
		case req.pos && st.Pos == nil:
			errs = append(errs, fmt.Errorf("step %d: %s requires pos", idx, st.Op))
		case req.value && st.Value == nil:
			errs = append(errs, fmt.Errorf("step %d: %s requires value", idx, st.Op))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidScenario, errors.Join(errs...))
}
