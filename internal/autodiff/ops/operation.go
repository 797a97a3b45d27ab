// Package ops defines the operator tags and local gradient rules of the scalar graph.
//
// Every node in a graph carries one Op: a tagged variant holding the operator
// kind, the indices of its operands and any operator constant. The graph keeps
// node values and gradients in parallel slices indexed by node id, and the
// backward pass dispatches on the tag instead of calling a stored closure.
//
// Supported operations:
//   - None: leaf node, no operands, no local gradient
//   - Add: d(a+b)/da = 1, d(a+b)/db = 1
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - Pow: d(a^p)/da = p * a^(p-1), p is a constant outside the graph
//   - ReLU: d(ReLU(a))/da = 1 if the output is positive, else 0
//
// Negation, subtraction and division are built from these by the graph.
package ops

import "fmt"

// Kind is the operator tag of a node.
type Kind uint8

// Operator tags.
const (
	None Kind = iota
	Add
	Mul
	Pow
	ReLU
)

// String returns the operator symbol.
func (k Kind) String() string {
	switch k {
	case None:
		return ""
	case Add:
		return "+"
	case Mul:
		return "*"
	case Pow:
		return "**"
	case ReLU:
		return "ReLU"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Arity returns the number of operands an operator of this kind references.
func (k Kind) Arity() int {
	switch k {
	case Add, Mul:
		return 2
	case Pow, ReLU:
		return 1
	default:
		return 0
	}
}

// Op is the tagged variant stored for every node.
//
// A and B are operand node ids; only the first Kind.Arity() of them are
// meaningful. Exponent is used by Pow only.
type Op struct {
	Kind     Kind
	A, B     int
	Exponent float64
}

// Leaf returns the Op of a node with no operands.
func Leaf() Op {
	return Op{Kind: None}
}

// Operands returns the operand ids in order.
func (op Op) Operands() []int {
	switch op.Kind.Arity() {
	case 2:
		return []int{op.A, op.B}
	case 1:
		return []int{op.A}
	default:
		return nil
	}
}

// Forward computes the output value of op from the operand values in data.
func (op Op) Forward(data []float64) float64 {
	switch op.Kind {
	case Add:
		return addForward(op, data)
	case Mul:
		return mulForward(op, data)
	case Pow:
		return powForward(op, data)
	case ReLU:
		return reluForward(op, data)
	default:
		panic(fmt.Sprintf("ops: Forward on operator %v with no operands", op.Kind))
	}
}

// Backward applies the local chain-rule step of node out.
//
// grad[out] must already hold the node's fully accumulated gradient. Each
// operand gradient is incremented, never assigned.
func (op Op) Backward(out int, data, grad []float64) {
	switch op.Kind {
	case None:
		// Leaf: nothing to propagate.
	case Add:
		addBackward(op, out, grad)
	case Mul:
		mulBackward(op, out, data, grad)
	case Pow:
		powBackward(op, out, data, grad)
	case ReLU:
		reluBackward(op, out, data, grad)
	default:
		panic(fmt.Sprintf("ops: unknown operator %v", op.Kind))
	}
}
