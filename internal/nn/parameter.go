package nn

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Parameter is a trainable scalar together with its state dict name.
//
// Example:
//
//	for _, p := range mlp.NamedParameters() {
//	    fmt.Println(p.Name(), p.Value().Data(), p.Value().Grad())
//	}
type Parameter struct {
	name  string         // Dotted path (e.g. "layers.0.neurons.2.weight.1")
	value autodiff.Value // Leaf node in the model's graph
}

// NewParameter creates a named parameter.
func NewParameter(name string, v autodiff.Value) Parameter {
	return Parameter{name: name, value: v}
}

// Name returns the parameter name.
func (p Parameter) Name() string {
	return p.name
}

// Value returns the parameter node.
func (p Parameter) Value() autodiff.Value {
	return p.value
}
