package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Value is a handle to one node of a Graph.
//
// Values are small and are passed by value. The zero Value is invalid, and a
// Value becomes stale when its graph is Reset. Using an invalid or stale Value
// panics with ErrInvalidValue or ErrStaleValue.
type Value struct {
	graph *Graph
	id    int
	gen   uint32
}

// Valid reports whether v refers to a live node.
func (v Value) Valid() bool {
	return v.graph != nil && v.gen == v.graph.gen && v.id < len(v.graph.data)
}

// check panics unless v refers to a live node.
func (v Value) check() {
	if v.graph == nil {
		fault(ErrInvalidValue, "zero Value")
	}
	if v.gen != v.graph.gen || v.id >= len(v.graph.data) {
		fault(ErrStaleValue, "node %d of generation %d, graph is at generation %d", v.id, v.gen, v.graph.gen)
	}
}

// same panics unless v and other are both live nodes of one graph.
func (v Value) same(other Value) {
	v.check()
	other.check()
	if v.graph != other.graph {
		fault(ErrGraphMismatch, "nodes %d and %d", v.id, other.id)
	}
}

// Graph returns the graph that owns v.
func (v Value) Graph() *Graph {
	return v.graph
}

// ID returns the node index of v inside its graph.
func (v Value) ID() int {
	return v.id
}

// Data returns the forward value.
func (v Value) Data() float64 {
	v.check()
	return v.graph.data[v.id]
}

// Grad returns the gradient accumulated by backward passes so far.
func (v Value) Grad() float64 {
	v.check()
	return v.graph.grad[v.id]
}

// Op returns the operator that produced v; ops.None for leaves.
func (v Value) Op() ops.Kind {
	v.check()
	return v.graph.ops[v.id].Kind
}

// Exponent returns the constant exponent of a Pow node, 0 for other nodes.
func (v Value) Exponent() float64 {
	v.check()
	return v.graph.ops[v.id].Exponent
}

// Operands returns the nodes v was computed from, in order.
func (v Value) Operands() []Value {
	v.check()
	ids := v.graph.ops[v.id].Operands()
	if len(ids) == 0 {
		return nil
	}
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = v.graph.handle(id)
	}
	return out
}

// Add returns v + other.
func (v Value) Add(other Value) Value {
	v.same(other)
	return v.graph.apply(ops.NewAddOp(v.id, other.id))
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	v.same(other)
	return v.graph.apply(ops.NewMulOp(v.id, other.id))
}

// Pow returns v ^ exponent. The exponent is a constant, not a node.
func (v Value) Pow(exponent float64) Value {
	v.check()
	return v.graph.apply(ops.NewPowOp(v.id, exponent))
}

// ReLU returns max(v, 0).
func (v Value) ReLU() Value {
	v.check()
	return v.graph.apply(ops.NewReLUOp(v.id))
}

// Neg returns -v, computed as v * -1.
func (v Value) Neg() Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, computed as v + (-other).
func (v Value) Sub(other Value) Value {
	v.same(other)
	return v.Add(other.Neg())
}

// Div returns v / other, computed as v * other^-1.
//
// Division by zero is not guarded and yields ±Inf or NaN.
func (v Value) Div(other Value) Value {
	v.same(other)
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + x, with x added to the graph as a constant leaf.
func (v Value) AddScalar(x float64) Value {
	v.check()
	return v.Add(v.graph.Scalar(x))
}

// MulScalar returns v * x, with x added to the graph as a constant leaf.
func (v Value) MulScalar(x float64) Value {
	v.check()
	return v.Mul(v.graph.Scalar(x))
}

// Backward computes d(v)/d(n) for every node n reachable from v.
// See Graph.Backward.
func (v Value) Backward() {
	v.check()
	v.graph.Backward(v)
}
