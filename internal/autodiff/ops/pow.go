package ops

import "math"

// NewPowOp creates the Op for output = a ^ exponent.
//
// The exponent is a plain constant and never becomes a node.
//
// Backward pass:
//   - d(a^p)/da = p * a^(p-1), so grad_a += p * a^(p-1) * outputGrad
func NewPowOp(a int, exponent float64) Op {
	return Op{Kind: Pow, A: a, Exponent: exponent}
}

func powForward(op Op, data []float64) float64 {
	return math.Pow(data[op.A], op.Exponent)
}

func powBackward(op Op, out int, data, grad []float64) {
	p := op.Exponent
	grad[op.A] += p * math.Pow(data[op.A], p-1) * grad[out]
}
