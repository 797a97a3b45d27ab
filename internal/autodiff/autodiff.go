// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// A Graph is an arena of nodes. Each node has a value, an accumulated gradient
// and an ops.Op describing how it was produced. Values are handles into the
// arena, so operands are shared by index and a node can feed any number of
// later operations.
//
// Architecture:
//   - Graph: parallel slices of values, gradients and ops, indexed by node id
//   - Value: (graph, id, generation) handle returned by every operation
//   - TopoOrder: iterative depth-first post-order over operands
//   - Backward: seeds the root with 1 and runs each node's rule in reverse order
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Scalar(3)
//	y := x.Mul(x).Add(x) // y = x² + x
//
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x + 1 = 7
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Graph owns every node created through it.
//
// Node storage is released as a whole by Reset; handles created before the
// reset are stale afterwards. A Graph is not safe for concurrent use.
type Graph struct {
	data []float64 // Forward values, immutable once written
	grad []float64 // Accumulated gradients
	ops  []ops.Op  // How each node was produced
	gen  uint32    // Bumped by Reset to invalidate old handles
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		data: make([]float64, 0, 64), // Pre-allocate for common case
		grad: make([]float64, 0, 64),
		ops:  make([]ops.Op, 0, 64),
		gen:  1,
	}
}

// Scalar creates a leaf node holding x.
func (g *Graph) Scalar(x float64) Value {
	return g.push(x, ops.Leaf())
}

// Scalars creates one leaf node per element of xs.
func (g *Graph) Scalars(xs ...float64) []Value {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		vs[i] = g.Scalar(x)
	}
	return vs
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.data)
}

// ZeroGrad sets every gradient in the graph back to 0.
//
// Backward accumulates; call this between backward passes over the same graph.
func (g *Graph) ZeroGrad() {
	clear(g.grad)
}

// Reset releases all nodes. Storage is kept for reuse and every Value created
// before the call becomes stale.
func (g *Graph) Reset() {
	g.data = g.data[:0]
	g.grad = g.grad[:0]
	g.ops = g.ops[:0]
	g.gen++
}

// push appends a node and returns its handle.
func (g *Graph) push(x float64, op ops.Op) Value {
	id := len(g.data)
	g.data = append(g.data, x)
	g.grad = append(g.grad, 0)
	g.ops = append(g.ops, op)
	return Value{graph: g, id: id, gen: g.gen}
}

// apply computes op over existing nodes and appends the result.
func (g *Graph) apply(op ops.Op) Value {
	return g.push(op.Forward(g.data), op)
}

// handle rebuilds the Value for an id of the current generation.
func (g *Graph) handle(id int) Value {
	return Value{graph: g, id: id, gen: g.gen}
}
