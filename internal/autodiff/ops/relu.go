package ops

// NewReLUOp creates the Op for output = max(a, 0).
//
// Backward pass:
//   - a.grad += mask * out.grad, where mask = 1 if output > 0, else 0
//
// The mask is taken from the output value, not the input. For a == 0 both
// checks agree; the output check is kept as the canonical form.
func NewReLUOp(a int) Op {
	return Op{Kind: ReLU, A: a}
}

func reluForward(op Op, data []float64) float64 {
	x := data[op.A]
	if x < 0 {
		return 0
	}
	return x
}

func reluBackward(op Op, out int, data, grad []float64) {
	mask := 0.0
	if data[out] > 0 {
		mask = 1
	}
	grad[op.A] += mask * grad[out]
}
