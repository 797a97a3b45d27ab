package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// near reports whether a and b agree within epsilon.
func near(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// TestAddOp_Backward tests that addition passes the gradient to both operands.
func TestAddOp_Backward(t *testing.T) {
	// node 0 = 3, node 1 = 5, node 2 = node0 + node1
	op := ops.NewAddOp(0, 1)
	data := []float64{3, 5, 0}
	data[2] = op.Forward(data)
	if data[2] != 8 {
		t.Fatalf("Forward = %v, want 8", data[2])
	}

	grad := []float64{0, 0, 2}
	op.Backward(2, data, grad)

	if grad[0] != 2 || grad[1] != 2 {
		t.Errorf("AddOp grads = %v, want [2 2]", grad[:2])
	}
	if grad[2] != 2 {
		t.Errorf("AddOp changed its own gradient: %v", grad[2])
	}
}

// TestAddOp_SameOperand tests x + x, where both increments hit one node.
func TestAddOp_SameOperand(t *testing.T) {
	op := ops.NewAddOp(0, 0)
	data := []float64{4, 0}
	data[1] = op.Forward(data)

	grad := []float64{0, 1}
	op.Backward(1, data, grad)

	if data[1] != 8 {
		t.Errorf("Forward = %v, want 8", data[1])
	}
	if grad[0] != 2 {
		t.Errorf("grad = %v, want 2", grad[0])
	}
}

// TestMulOp_Backward tests that each operand receives the other's value.
func TestMulOp_Backward(t *testing.T) {
	op := ops.NewMulOp(0, 1)
	data := []float64{3, -2, 0}
	data[2] = op.Forward(data)
	if data[2] != -6 {
		t.Fatalf("Forward = %v, want -6", data[2])
	}

	grad := []float64{0.5, 0, 1}
	op.Backward(2, data, grad)

	// Accumulates onto the existing 0.5.
	if !near(grad[0], 0.5-2, 1e-12) {
		t.Errorf("grad_a = %v, want %v", grad[0], 0.5-2)
	}
	if !near(grad[1], 3, 1e-12) {
		t.Errorf("grad_b = %v, want 3", grad[1])
	}
}

// TestPowOp_Backward tests d(a^p)/da = p * a^(p-1).
func TestPowOp_Backward(t *testing.T) {
	tests := []struct {
		name     string
		a, p     float64
		wantData float64
		wantGrad float64
	}{
		{"square", 3, 2, 9, 6},
		{"cube", 2, 3, 8, 12},
		{"reciprocal", 4, -1, 0.25, -1.0 / 16},
		{"sqrt", 9, 0.5, 3, 0.5 / 3},
		{"zero exponent", 7, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := ops.NewPowOp(0, tt.p)
			data := []float64{tt.a, 0}
			data[1] = op.Forward(data)
			if !near(data[1], tt.wantData, 1e-12) {
				t.Errorf("Forward = %v, want %v", data[1], tt.wantData)
			}

			grad := []float64{0, 1}
			op.Backward(1, data, grad)
			if !near(grad[0], tt.wantGrad, 1e-12) {
				t.Errorf("grad = %v, want %v", grad[0], tt.wantGrad)
			}
		})
	}
}

// TestPowOp_NegativeBaseFraction tests that invalid powers yield NaN instead of failing.
func TestPowOp_NegativeBaseFraction(t *testing.T) {
	op := ops.NewPowOp(0, 0.5)
	data := []float64{-4, 0}
	data[1] = op.Forward(data)
	if !math.IsNaN(data[1]) {
		t.Errorf("Forward = %v, want NaN", data[1])
	}
}

// TestReLUOp tests both sides of the rectifier.
func TestReLUOp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		upstream float64
		wantData float64
		wantGrad float64
	}{
		{"positive", 2.5, 3, 2.5, 3},
		{"negative", -1.5, 3, 0, 0},
		{"zero", 0, 3, 0, 0},
		{"dead with infinite upstream", -1.5, math.Inf(1), 0, math.NaN()},
		{"live with infinite upstream", 2, math.Inf(-1), 2, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := ops.NewReLUOp(0)
			data := []float64{tt.a, 0}
			data[1] = op.Forward(data)
			if data[1] != tt.wantData {
				t.Errorf("Forward = %v, want %v", data[1], tt.wantData)
			}

			grad := []float64{0, tt.upstream}
			op.Backward(1, data, grad)
			if math.IsNaN(tt.wantGrad) {
				if !math.IsNaN(grad[0]) {
					t.Errorf("grad = %v, want NaN", grad[0])
				}
			} else if grad[0] != tt.wantGrad {
				t.Errorf("grad = %v, want %v", grad[0], tt.wantGrad)
			}
		})
	}
}

// TestLeaf_Backward tests that a leaf propagates nothing.
func TestLeaf_Backward(t *testing.T) {
	op := ops.Leaf()
	grad := []float64{1}
	op.Backward(0, []float64{42}, grad)
	if grad[0] != 1 {
		t.Errorf("leaf changed gradient to %v", grad[0])
	}
	if op.Operands() != nil {
		t.Errorf("leaf Operands() = %v, want nil", op.Operands())
	}
}

// TestKind tests operator metadata.
func TestKind(t *testing.T) {
	tests := []struct {
		kind  ops.Kind
		str   string
		arity int
	}{
		{ops.None, "", 0},
		{ops.Add, "+", 2},
		{ops.Mul, "*", 2},
		{ops.Pow, "**", 1},
		{ops.ReLU, "ReLU", 1},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.str {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.str)
		}
		if got := tt.kind.Arity(); got != tt.arity {
			t.Errorf("%v.Arity() = %d, want %d", tt.kind, got, tt.arity)
		}
	}

	if got := ops.Kind(99).String(); got != "Kind(99)" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

// TestOp_Operands tests operand order.
func TestOp_Operands(t *testing.T) {
	if got := ops.NewMulOp(4, 2).Operands(); len(got) != 2 || got[0] != 4 || got[1] != 2 {
		t.Errorf("Mul operands = %v, want [4 2]", got)
	}
	if got := ops.NewPowOp(3, 2).Operands(); len(got) != 1 || got[0] != 3 {
		t.Errorf("Pow operands = %v, want [3]", got)
	}
}
