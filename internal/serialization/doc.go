// Package serialization saves and loads MLP state dicts.
//
// A checkpoint holds parameter values only, keyed by their state dict names.
// The computation graph itself is never written.
//
//	Format Structure:
//	  [4 bytes: Magic "SGRD"]
//	  [4 bytes: Version (uint32 LE)]
//	  [32 bytes: SHA-256 of the payload]
//	  [8 bytes: Payload Size (uint64 LE)]
//	  [Payload: protobuf wire format]
//
// The payload is a sequence of field 1 (length-delimited) entries, one per
// parameter and sorted by name. Each entry carries field 1 (name, bytes) and
// field 2 (value, fixed64 IEEE-754 double). Unknown fields are skipped on read.
//
// Example usage:
//
//	// Save a model
//	if err := serialization.WriteFile("model.sgrd", mlp.StateDict()); err != nil {
//	    return err
//	}
//
//	// Load it into a fresh graph
//	sd, err := serialization.ReadFile("model.sgrd")
//	if err != nil {
//	    return err
//	}
//	mlp, err := nn.LoadMLP(autodiff.NewGraph(), cfg, sd)
package serialization
