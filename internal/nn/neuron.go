package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Neuron computes a weighted sum of its inputs plus a bias, optionally
// followed by ReLU.
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 3, true, rand.New(rand.NewSource(1)))
//	out := n.Forward(g.Scalars(1, 2, 3))
type Neuron struct {
	weights []Parameter // One per input
	bias    Parameter   // Added before the weighted inputs
	nonlin  bool        // Apply ReLU to the sum
}

// NewNeuron creates a neuron with nin inputs in graph g.
//
// Weights are drawn from U(-1, 1) using rng; the bias starts at 0.
func NewNeuron(g *autodiff.Graph, nin int, nonlin bool, rng *rand.Rand) *Neuron {
	n, err := newNeuron(g, nin, nonlin, "", uniformSource(rng, 1))
	if err != nil {
		panic(fmt.Sprintf("NewNeuron: %v", err))
	}
	return n
}

// newNeuron creates a neuron whose parameters are named under prefix.
func newNeuron(g *autodiff.Graph, nin int, nonlin bool, prefix string, src source) (*Neuron, error) {
	weights := make([]Parameter, nin)
	for i := range weights {
		name := fmt.Sprintf("%sweight.%d", prefix, i)
		w, err := src(name, false)
		if err != nil {
			return nil, err
		}
		weights[i] = NewParameter(name, g.Scalar(w))
	}

	name := prefix + "bias"
	b, err := src(name, true)
	if err != nil {
		return nil, err
	}

	return &Neuron{
		weights: weights,
		bias:    NewParameter(name, g.Scalar(b)),
		nonlin:  nonlin,
	}, nil
}

// Forward computes relu?(b + w₀x₀ + w₁x₁ + ...).
//
// The sum is folded starting from the bias. Panics if len(x) differs from the
// number of weights.
func (n *Neuron) Forward(x []autodiff.Value) autodiff.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(x)))
	}

	act := n.bias.Value()
	for i, w := range n.weights {
		act = act.Add(w.Value().Mul(x[i]))
	}

	if n.nonlin {
		return act.ReLU()
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []autodiff.Value {
	params := make([]autodiff.Value, 0, len(n.weights)+1)
	for _, p := range n.NamedParameters() {
		params = append(params, p.Value())
	}
	return params
}

// NamedParameters returns the weights followed by the bias, with their names.
func (n *Neuron) NamedParameters() []Parameter {
	return append(append([]Parameter(nil), n.weights...), n.bias)
}

// Inputs returns the number of inputs.
func (n *Neuron) Inputs() int {
	return len(n.weights)
}

// Nonlinear reports whether the neuron applies ReLU.
func (n *Neuron) Nonlinear() bool {
	return n.nonlin
}

// Kind returns "ReLU" or "Linear".
func (n *Neuron) Kind() string {
	if n.nonlin {
		return "ReLU"
	}
	return "Linear"
}
