// doc.go: package overview
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// Package conduit provides a bounded, thread-safe, multi-producer /
// multi-consumer in-memory pipe: a ring buffer of fixed-shape elements
// with blocking push/pop semantics and automatic shutdown driven by
// independent producer and consumer reference counts.
//
// # Quick Start
//
// Unbounded pipe, one producer, one consumer:
//
//	p := conduit.New[int](0)
//	prod := p.NewProducer()
//	cons := p.NewConsumer()
//	p.Close()
//
//	prod.Push([]int{0, 1, 2, 3, 4})
//	prod.Release()
//
//	buf := make([]int, 8)
//	n := cons.Pop(buf) // n == 5, buf[:5] == {0,1,2,3,4}
//	cons.Release()
//
// # Bounded pipe
//
// A positive limit makes Push block while the whole batch does not fit
// without the ring exceeding limit elements, waking either when a consumer drains room or when the last consumer
// releases (in which case the call drops whatever was left to write and
// returns without error - the data would never be observed anyway).
//
// # Pipelines
//
// The conduit/pipeline package fuses a chain of transform stages,
// each driven by its own worker goroutine and connected by a conduit.Pipe:
//
//	out := pipeline.Chain(0, double, double, double)
//	out.In.Push(batch)
//	out.In.Release()
//	n := out.Out.Pop(dst)
//	out.Wait()
package conduit
