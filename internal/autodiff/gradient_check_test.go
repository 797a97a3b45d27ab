package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// numericalGradient computes d f / d xs[i] using central differences.
func numericalGradient(f func([]float64) float64, xs []float64, i int, epsilon float64) float64 {
	plus := append([]float64(nil), xs...)
	minus := append([]float64(nil), xs...)
	plus[i] += epsilon
	minus[i] -= epsilon
	return (f(plus) - f(minus)) / (2 * epsilon)
}

// gradCase builds the same function twice: once on the graph and once on plain floats.
type gradCase struct {
	name  string
	at    []float64
	graph func(g *autodiff.Graph, xs []autodiff.Value) autodiff.Value
	plain func(xs []float64) float64
}

// TestNumericalGradient compares Backward against finite differences.
func TestNumericalGradient(t *testing.T) {
	cases := []gradCase{
		{
			name: "polynomial",
			at:   []float64{1.3},
			graph: func(_ *autodiff.Graph, x []autodiff.Value) autodiff.Value {
				// 3x³ - 2x² + x - 5
				return x[0].Pow(3).MulScalar(3).Sub(x[0].Pow(2).MulScalar(2)).Add(x[0]).AddScalar(-5)
			},
			plain: func(x []float64) float64 {
				return 3*x[0]*x[0]*x[0] - 2*x[0]*x[0] + x[0] - 5
			},
		},
		{
			name: "rational",
			at:   []float64{0.7, -1.9},
			graph: func(_ *autodiff.Graph, x []autodiff.Value) autodiff.Value {
				// (x*y + 1) / (x² + y²)
				num := x[0].Mul(x[1]).AddScalar(1)
				den := x[0].Pow(2).Add(x[1].Pow(2))
				return num.Div(den)
			},
			plain: func(x []float64) float64 {
				return (x[0]*x[1] + 1) / (x[0]*x[0] + x[1]*x[1])
			},
		},
		{
			name: "relu network",
			at:   []float64{0.4, -0.6, 1.1},
			graph: func(g *autodiff.Graph, x []autodiff.Value) autodiff.Value {
				h1 := x[0].MulScalar(2).Sub(x[1]).ReLU()
				h2 := x[1].Mul(x[2]).AddScalar(0.3).ReLU()
				return h1.Mul(h2).Add(h1.Pow(2)).Sub(h2.Div(g.Scalar(4)))
			},
			plain: func(x []float64) float64 {
				h1 := math.Max(2*x[0]-x[1], 0)
				h2 := math.Max(x[1]*x[2]+0.3, 0)
				return h1*h2 + h1*h1 - h2/4
			},
		},
		{
			name: "sqrt chain",
			at:   []float64{2.5, 0.8},
			graph: func(_ *autodiff.Graph, x []autodiff.Value) autodiff.Value {
				s := x[0].Pow(2).Add(x[1].Pow(2)).Pow(0.5)
				return s.Mul(x[0]).Neg()
			},
			plain: func(x []float64) float64 {
				return -math.Sqrt(x[0]*x[0]+x[1]*x[1]) * x[0]
			},
		},
	}

	const epsilon = 1e-6

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := autodiff.NewGraph()
			xs := g.Scalars(tc.at...)
			out := tc.graph(g, xs)

			if got, want := out.Data(), tc.plain(tc.at); math.Abs(got-want) > 1e-12 {
				t.Fatalf("forward = %v, want %v", got, want)
			}

			out.Backward()

			for i, x := range xs {
				numerical := numericalGradient(tc.plain, tc.at, i, epsilon)
				if math.Abs(x.Grad()-numerical) > 1e-5*math.Max(1, math.Abs(numerical)) {
					t.Errorf("d/dx%d: autodiff %v, numerical %v", i, x.Grad(), numerical)
				}
			}
		})
	}
}
