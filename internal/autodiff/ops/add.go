package ops

// NewAddOp creates the Op for output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outputGrad
//   - d(a+b)/db = 1, so grad_b += outputGrad
func NewAddOp(a, b int) Op {
	return Op{Kind: Add, A: a, B: b}
}

func addForward(op Op, data []float64) float64 {
	return data[op.A] + data[op.B]
}

// addBackward lets the gradient flow unchanged to both operands.
// When a == b (x + x) both increments land on the same node.
func addBackward(op Op, out int, grad []float64) {
	g := grad[out]
	grad[op.A] += g
	grad[op.B] += g
}
