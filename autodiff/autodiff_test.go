// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"testing"

	"github.com/born-ml/scalargrad/autodiff"
	"github.com/stretchr/testify/assert"
)

// TestPublicAPI exercises the package example.
func TestPublicAPI(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.Scalar(-4)
	b := g.Scalar(2)
	y := a.Mul(b).Add(b.Pow(3))

	y.Backward()

	assert.Equal(t, 0.0, y.Data())
	assert.Equal(t, 2.0, a.Grad())
	assert.Equal(t, 8.0, b.Grad())
	assert.Equal(t, autodiff.OpAdd, y.Op())
	assert.Equal(t, autodiff.OpPow, y.Operands()[1].Op())
}
