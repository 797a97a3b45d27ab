package ops

// NewMulOp creates the Op for output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += outputGrad * b
//   - d(a*b)/db = a, so grad_b += outputGrad * a
func NewMulOp(a, b int) Op {
	return Op{Kind: Mul, A: a, B: b}
}

func mulForward(op Op, data []float64) float64 {
	return data[op.A] * data[op.B]
}

// mulBackward reads the operand values recorded at construction. Values are
// never rewritten, so these are the same numbers the forward pass used.
func mulBackward(op Op, out int, data, grad []float64) {
	g := grad[out]
	grad[op.A] += data[op.B] * g
	grad[op.B] += data[op.A] * g
}
