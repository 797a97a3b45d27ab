// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// A Graph owns every node; a Value is a handle to one node. Combining Values
// with Add, Mul, Pow, Neg, Sub, Div and ReLU builds the graph as a side effect,
// and Backward on any Value fills in the gradient of that Value with respect
// to every node it depends on.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    a := g.Scalar(-4)
//	    b := g.Scalar(2)
//	    y := a.Mul(b).Add(b.Pow(3)) // y = ab + b³
//
//	    y.Backward()
//	    fmt.Println(a.Grad(), b.Grad()) // 2 8
//	}
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Graph is the arena holding every node of a computation.
type Graph = autodiff.Graph

// Value is a handle to one node of a Graph.
type Value = autodiff.Value

// Op is the operator tag of a node.
type Op = ops.Kind

// Operator tags.
const (
	OpNone = ops.None
	OpAdd  = ops.Add
	OpMul  = ops.Mul
	OpPow  = ops.Pow
	OpReLU = ops.ReLU
)

// Handle faults raised as panics.
var (
	ErrInvalidValue  = autodiff.ErrInvalidValue
	ErrStaleValue    = autodiff.ErrStaleValue
	ErrGraphMismatch = autodiff.ErrGraphMismatch
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}
