package scenario

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
	"github.com/cpslab-asu/staliro-go/pkg/signals"
)

// The YAML document is decoded into intermediate types and converted, so
// interval and factory validation happens through the same constructors as
// programmatic configuration.

type yamlStatic struct {
	Name  string     `yaml:"name"`
	Bound [2]float64 `yaml:"bound"`
}

type yamlSignal struct {
	Name          string       `yaml:"name"`
	ControlPoints [][2]float64 `yaml:"control_points"`
	Times         []float64    `yaml:"times"`
	Factory       string       `yaml:"factory"`
}

type yamlOptions struct {
	StaticInputs []yamlStatic `yaml:"static_inputs"`
	Signals      []yamlSignal `yaml:"signals"`
	Runs         int          `yaml:"runs"`
	Iterations   int          `yaml:"iterations"`
	Seed         int64        `yaml:"seed"`
	Processes    yaml.Node    `yaml:"processes"`
	TimeSpan     [2]float64   `yaml:"time_span"`
	Behavior     string       `yaml:"behavior"`
}

var factoriesByName = map[string]core.SignalFactory{
	"":                   signals.Pchip,
	"pchip":              signals.Pchip,
	"piecewise_linear":   signals.PiecewiseLinear,
	"piecewise_constant": signals.PiecewiseConstant,
	"harmonic":           signals.Harmonic,
}

// LoadOptions reads test options from a YAML file.
func LoadOptions(path string) (*TestOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.InvalidInput, "failed to read options file")
	}

	return ParseOptions(data)
}

// ParseOptions decodes test options from YAML.
func ParseOptions(data []byte) (*TestOptions, error) {
	raw := yamlOptions{Runs: 1, Iterations: 400}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.InvalidInput, "failed to parse options")
	}

	options := TestOptions{
		Runs:       raw.Runs,
		Iterations: raw.Iterations,
		Seed:       raw.Seed,
	}

	for _, static := range raw.StaticInputs {
		bound, err := core.NewInterval(static.Bound[0], static.Bound[1])
		if err != nil {
			return nil, errors.Wrap(err, errors.ValidationFailed, "invalid bound for static input "+static.Name)
		}

		options.StaticInputs = append(options.StaticInputs, StaticInput{Name: static.Name, Bound: bound})
	}

	for _, signal := range raw.Signals {
		factory, ok := factoriesByName[signal.Factory]
		if !ok {
			return nil, errors.Newf(errors.ValidationFailed, "unknown signal factory %q", signal.Factory)
		}

		input := SignalInput{Name: signal.Name, Times: signal.Times, Factory: factory}
		for _, point := range signal.ControlPoints {
			bound, err := core.NewInterval(point[0], point[1])
			if err != nil {
				return nil, errors.Wrap(err, errors.ValidationFailed, "invalid control point for signal "+signal.Name)
			}
			input.ControlPoints = append(input.ControlPoints, bound)
		}

		options.Signals = append(options.Signals, input)
	}

	if raw.TimeSpan == [2]float64{} {
		options.TimeSpan = core.MustInterval(0, 1)
	} else {
		span, err := core.NewInterval(raw.TimeSpan[0], raw.TimeSpan[1])
		if err != nil {
			return nil, errors.Wrap(err, errors.ValidationFailed, "invalid time span")
		}
		options.TimeSpan = span
	}

	switch raw.Behavior {
	case "", "falsification":
		options.Behavior = core.Falsification
	case "minimization":
		options.Behavior = core.Minimization
	default:
		return nil, errors.Newf(errors.ValidationFailed, "unknown behavior %q", raw.Behavior)
	}

	if err := decodeProcesses(raw.Processes, &options.Processes); err != nil {
		return nil, err
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	return &options, nil
}

func decodeProcesses(node yaml.Node, processes *int) error {
	if node.IsZero() {
		return nil
	}

	var count int
	if err := node.Decode(&count); err == nil {
		if count < 1 {
			return errors.Newf(errors.ValidationFailed, "processes must be positive, got %d", count)
		}
		*processes = count
		return nil
	}

	var word string
	if err := node.Decode(&word); err == nil && word == "cores" {
		*processes = ProcessesCores
		return nil
	}

	return errors.New(errors.ValidationFailed, `processes must be a positive integer or "cores"`)
}
