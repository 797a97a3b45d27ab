// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization saves and loads MLP state dicts.
//
// Example:
//
//	if err := serialization.WriteFile("model.sgrd", mlp.StateDict()); err != nil {
//	    return err
//	}
//	sd, err := serialization.ReadFile("model.sgrd")
//	if err != nil {
//	    return err
//	}
//	restored, err := nn.LoadMLP(autodiff.NewGraph(), cfg, sd)
package serialization

import (
	"io"

	"github.com/born-ml/scalargrad/internal/serialization"
)

// Checkpoint errors.
var (
	ErrChecksumMismatch   = serialization.ErrChecksumMismatch
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrPayloadTooLarge    = serialization.ErrPayloadTooLarge
	ErrMalformedEntry     = serialization.ErrMalformedEntry
	ErrDuplicateEntry     = serialization.ErrDuplicateEntry
)

// Encode writes a state dict to w.
func Encode(w io.Writer, sd map[string]float64) error {
	return serialization.Encode(w, sd)
}

// Decode reads a state dict from r.
func Decode(r io.Reader) (map[string]float64, error) {
	return serialization.Decode(r)
}

// WriteFile writes a state dict to the file at path.
func WriteFile(path string, sd map[string]float64) error {
	return serialization.WriteFile(path, sd)
}

// ReadFile reads a state dict from the file at path.
func ReadFile(path string) (map[string]float64, error) {
	return serialization.ReadFile(path)
}
