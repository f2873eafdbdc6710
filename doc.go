// Package flott implements the T-transform: an information-theoretic
// decomposition of a finite symbol sequence into a chain of
// self-referential copy patterns.
//
// # Overview
//
// Given an input sequence over an alphabet of size 2 (bits) or 256
// (bytes), the engine repeatedly finds the longest prefix-match "copy
// pattern" in the sequence, collapses every adjacent repetition of that
// pattern into a single new symbol, and accumulates log2(copy-factor+1)
// into a running complexity score. From the final complexity and level
// count it derives T-information, average/instantaneous T-entropy, and
// two inter-sequence distances: NTID (normalised T-information distance)
// and NTCD (normalised T-complexity distance).
//
// # When to use it
//
// The T-transform is a complexity/similarity metric, not a compressor:
// it is used to compare sequences (DNA, logs, binaries, arbitrary byte
// streams) by how much internal repetition they contain, and to measure
// the distance between two sequences without needing an explicit
// alignment. Typical consumers run it over pairs of inputs and compare
// NTID/NTCD.
//
// # When not to use it
//
//   - Reconstructing or compressing the original data: the engine is
//     analytical only, and does not retain enough information to invert
//     the transform.
//   - Streaming input: the full sequence must be materialised as a
//     bounded in-memory buffer before Run is called.
//   - Cryptographic or adversarial settings: the matching discipline is
//     deterministic and gives no security guarantee.
//
// # Basic usage
//
//	inst, err := flott.New(flott.Config{Alphabet: flott.SymbolByte})
//	if err != nil {
//	    // handle
//	}
//	inst.AddSource(flott.BytesSource([]byte("ABABABAB")))
//	result, err := inst.Run(context.Background())
//	if err != nil {
//	    // handle
//	}
//	fmt.Println(result.Complexity, result.Information)
//
// # Component map
//
// numeric.go implements the log2 lookup table and compensated
// summation. token.go implements the arena-addressed token graph.
// transform.go implements the level loop and Instance lifecycle.
// derived.go implements the T-information/NTID/NTCD evaluator.
// events.go implements the Handler capability interface. config.go and
// errors.go round out the engine's configuration and error taxonomy.
// Subpackage flottconfig loads declarative input sets from YAML;
// subpackage flottmetrics adapts the Handler interface to Prometheus.
package flott
