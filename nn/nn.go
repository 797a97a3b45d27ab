// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a micrograd-style multi-layer perceptron.
//
// # Overview
//
// This package contains:
//   - Neuron: relu?(b + Σ wᵢxᵢ) over scalar Values
//   - Layer: neurons sharing the same inputs
//   - MLP: stacked layers, ReLU everywhere but the last layer
//   - Config: sizes, init range and seed
//   - State dicts: named parameter values for checkpoints
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    mlp, err := nn.NewMLP(g, nn.DefaultConfig(3, 4, 4, 1))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out := mlp.ForwardScalars(2, 3, -1)
//	    out[0].Backward()
//	    for _, p := range mlp.NamedParameters() {
//	        fmt.Println(p.Name(), p.Value().Grad())
//	    }
//	}
package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Module is implemented by every component that owns parameters.
type Module = nn.Module

// Parameter is a named trainable scalar.
type Parameter = nn.Parameter

// Neuron is a single unit computing relu?(b + Σ wᵢxᵢ).
type Neuron = nn.Neuron

// Layer is a row of neurons.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// Config describes an MLP.
type Config = nn.Config

// Errors returned when building a network.
var (
	ErrInvalidConfig    = nn.ErrInvalidConfig
	ErrMissingParameter = nn.ErrMissingParameter
)

// DefaultConfig returns a config with weights in U(-1, 1) and seed 0.
func DefaultConfig(inputs int, outputs ...int) Config {
	return nn.DefaultConfig(inputs, outputs...)
}

// NewNeuron creates a neuron with nin inputs in graph g.
func NewNeuron(g *autodiff.Graph, nin int, nonlin bool, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(g, nin, nonlin, rng)
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(g *autodiff.Graph, nin, nout int, nonlin bool, rng *rand.Rand) *Layer {
	return nn.NewLayer(g, nin, nout, nonlin, rng)
}

// NewMLP creates an MLP in graph g with randomly initialized weights.
//
// Example:
//
//	g := autodiff.NewGraph()
//	mlp, err := nn.NewMLP(g, nn.DefaultConfig(3, 4, 4, 1))
func NewMLP(g *autodiff.Graph, cfg Config) (*MLP, error) {
	return nn.NewMLP(g, cfg)
}

// LoadMLP creates an MLP in graph g whose parameters are read from sd.
func LoadMLP(g *autodiff.Graph, cfg Config, sd map[string]float64) (*MLP, error) {
	return nn.LoadMLP(g, cfg, sd)
}
