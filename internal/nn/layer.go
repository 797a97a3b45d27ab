package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/samber/lo"
)

// Layer is a row of neurons that all read the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates nout neurons with nin inputs each.
func NewLayer(g *autodiff.Graph, nin, nout int, nonlin bool, rng *rand.Rand) *Layer {
	l, err := newLayer(g, nin, nout, nonlin, "", uniformSource(rng, 1))
	if err != nil {
		panic(fmt.Sprintf("NewLayer: %v", err))
	}
	return l
}

func newLayer(g *autodiff.Graph, nin, nout int, nonlin bool, prefix string, src source) (*Layer, error) {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		n, err := newNeuron(g, nin, nonlin, fmt.Sprintf("%sneurons.%d.", prefix, i), src)
		if err != nil {
			return nil, err
		}
		neurons[i] = n
	}
	return &Layer{neurons: neurons}, nil
}

// Forward returns one output per neuron.
func (l *Layer) Forward(x []autodiff.Value) []autodiff.Value {
	return lo.Map(l.neurons, func(n *Neuron, _ int) autodiff.Value {
		return n.Forward(x)
	})
}

// Parameters returns the parameters of every neuron, neuron by neuron.
func (l *Layer) Parameters() []autodiff.Value {
	return lo.FlatMap(l.neurons, func(n *Neuron, _ int) []autodiff.Value {
		return n.Parameters()
	})
}

// NamedParameters returns the named parameters of every neuron.
func (l *Layer) NamedParameters() []Parameter {
	return lo.FlatMap(l.neurons, func(n *Neuron, _ int) []Parameter {
		return n.NamedParameters()
	})
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// Outputs returns the number of neurons.
func (l *Layer) Outputs() int {
	return len(l.neurons)
}
