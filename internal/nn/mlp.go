package nn

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/samber/lo"
)

// Errors returned when building a network.
var (
	ErrInvalidConfig    = errors.New("nn: invalid config")
	ErrMissingParameter = errors.New("nn: missing parameter in state dict")
)

// Config describes an MLP.
type Config struct {
	Inputs    int     // Number of input scalars
	Outputs   []int   // Neurons per layer; the last entry is the network output size
	InitRange float64 // Weights are drawn from U(-InitRange, InitRange)
	Seed      int64   // Seed for weight initialization
}

// DefaultConfig returns a config with weights in U(-1, 1) and seed 0.
func DefaultConfig(inputs int, outputs ...int) Config {
	return Config{
		Inputs:    inputs,
		Outputs:   outputs,
		InitRange: 1.0,
	}
}

// Validate checks that every size is positive and the init range is finite.
func (c Config) Validate() error {
	if c.Inputs <= 0 {
		return fmt.Errorf("%w: inputs must be positive, got %d", ErrInvalidConfig, c.Inputs)
	}
	if len(c.Outputs) == 0 {
		return fmt.Errorf("%w: at least one layer is required", ErrInvalidConfig)
	}
	for i, n := range c.Outputs {
		if n <= 0 {
			return fmt.Errorf("%w: layer %d size must be positive, got %d", ErrInvalidConfig, i, n)
		}
	}
	if !(c.InitRange > 0) || math.IsInf(c.InitRange, 0) {
		return fmt.Errorf("%w: init range must be positive and finite, got %v", ErrInvalidConfig, c.InitRange)
	}
	return nil
}

// MLP is a multi-layer perceptron.
//
// Every layer but the last applies ReLU; the last layer is linear.
//
// Example:
//
//	g := autodiff.NewGraph()
//	mlp, err := nn.NewMLP(g, nn.DefaultConfig(3, 4, 4, 1))
//	if err != nil {
//	    return err
//	}
//	out := mlp.Forward(g.Scalars(2, 3, -1))
//	out[0].Backward()
type MLP struct {
	graph  *autodiff.Graph
	layers []*Layer
}

// NewMLP creates an MLP in graph g with randomly initialized weights.
func NewMLP(g *autodiff.Graph, cfg Config) (*MLP, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newMLP(g, cfg, uniformSource(newRand(cfg.Seed), cfg.InitRange))
}

// LoadMLP creates an MLP in graph g whose parameters are read from sd.
//
// Every parameter named by cfg must be present in sd. Extra entries are ignored.
func LoadMLP(g *autodiff.Graph, cfg Config, sd map[string]float64) (*MLP, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newMLP(g, cfg, stateDictSource(sd))
}

func newMLP(g *autodiff.Graph, cfg Config, src source) (*MLP, error) {
	sizes := append([]int{cfg.Inputs}, cfg.Outputs...)
	layers := make([]*Layer, len(cfg.Outputs))
	for i := range layers {
		nonlin := i != len(cfg.Outputs)-1
		l, err := newLayer(g, sizes[i], sizes[i+1], nonlin, fmt.Sprintf("layers.%d.", i), src)
		if err != nil {
			return nil, err
		}
		layers[i] = l
	}
	return &MLP{graph: g, layers: layers}, nil
}

// Forward runs x through every layer and returns the last layer's outputs.
func (m *MLP) Forward(x []autodiff.Value) []autodiff.Value {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// ForwardScalars adds xs to the graph as leaves and runs Forward on them.
func (m *MLP) ForwardScalars(xs ...float64) []autodiff.Value {
	return m.Forward(m.graph.Scalars(xs...))
}

// Parameters returns the parameters of every layer, layer by layer.
func (m *MLP) Parameters() []autodiff.Value {
	return lo.FlatMap(m.layers, func(l *Layer, _ int) []autodiff.Value {
		return l.Parameters()
	})
}

// NamedParameters returns the named parameters of every layer.
func (m *MLP) NamedParameters() []Parameter {
	return lo.FlatMap(m.layers, func(l *Layer, _ int) []Parameter {
		return l.NamedParameters()
	})
}

// StateDict returns a map of parameter names to current values.
func (m *MLP) StateDict() map[string]float64 {
	return lo.SliceToMap(m.NamedParameters(), func(p Parameter) (string, float64) {
		return p.Name(), p.Value().Data()
	})
}

// Gradients returns a map of parameter names to accumulated gradients.
func (m *MLP) Gradients() map[string]float64 {
	return lo.SliceToMap(m.NamedParameters(), func(p Parameter) (string, float64) {
		return p.Name(), p.Value().Grad()
	})
}

// Layers returns the layers of the network.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Graph returns the graph holding the network's parameters.
func (m *MLP) Graph() *autodiff.Graph {
	return m.graph
}
