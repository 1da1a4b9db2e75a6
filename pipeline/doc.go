// doc.go: package overview
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// Package pipeline fuses a chain of transform functions into a series of
// conduit.Pipe instances, each stage driven by its own worker goroutine,
// with an optional fan-out of a single stage across several parallel
// workers.
//
// # Linear chain
//
//	type rec struct{ orig, new int }
//
//	double := func(elems []rec, out *conduit.Producer[rec]) {
//		batch := make([]rec, len(elems))
//		copy(batch, elems)
//		for i := range batch {
//			batch[i].new *= 2
//		}
//		out.Push(batch)
//	}
//
//	ep := pipeline.Chain(0, double, double, double)
//	ep.In.Push([]rec{{1, 1}})
//	ep.In.Release()
//
//	buf := make([]rec, 1)
//	for ep.Out.Pop(buf) > 0 {
//		// buf[0].new == buf[0].orig * 8
//	}
//	ep.Out.Release()
//	ep.Wait()
//
// # Fan-out
//
//	ep := pipeline.Parallel(4, 0, double)
//
// gives the same throughput-oriented semantics with no output-order
// guarantee across the 4 workers (spec.md §4.3).
package pipeline
