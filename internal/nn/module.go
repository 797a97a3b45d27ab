// Package nn implements a small feed-forward network on top of the scalar graph.
//
// This package provides:
//   - Module interface: anything that owns trainable scalars
//   - Parameter: a named trainable scalar
//   - Neuron: relu?(b + Σ wᵢxᵢ)
//   - Layer: a row of neurons sharing the same inputs
//   - MLP: layers stacked so each one feeds the next
//
// Only forward evaluation is provided. Gradients come from calling Backward
// on any output scalar; applying them is left to the caller.
package nn

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Module is the base interface for all network components.
//
// Parameters returns every trainable scalar of the module, including those of
// nested modules, in a stable order.
type Module interface {
	Parameters() []autodiff.Value
}
