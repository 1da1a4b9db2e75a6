// pipeline.go: fusing transform stages into a chain of conduit pipes
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"sync"

	"github.com/agilira/conduit"
)

// popBatchSize bounds how many elements a stage worker pops per
// iteration, and so how many one transform call sees. Pop does not wait
// for a full batch: it returns whatever is buffered, up to this many. A
// larger value means fewer lock acquisitions when the input is backed up;
// spec.md places no requirement
// on batch size, only that whatever is popped together stays together.
const popBatchSize = 64

// TransformFunc is one pipeline stage's transform. It receives an
// immutable input batch and a producer handle for the stage's output
// pipe. It may push any number of output elements, including zero or
// more than len(elems). It must not retain elems after return, and must
// be re-entrant if used with Parallel (spec.md §4.3 "Transform
// contract"). Unlike the C source's void* aux parameter, any auxiliary
// state is ordinary Go closure capture.
type TransformFunc[In, Out any] func(elems []In, out *conduit.Producer[Out])

// Endpoints is the {in, out} pair spec.md §6 returns from pipeline
// construction: a producer handle into the first stage and a consumer
// handle out of the last. Releasing In starts the shutdown cascade
// described in spec.md §4.3; Wait blocks until every stage's workers
// have exited (spec.md §9's "prefer joining, bound to consumer release"
// design note).
type Endpoints[In, Out any] struct {
	In  *conduit.Producer[In]
	Out *conduit.Consumer[Out]

	wg *sync.WaitGroup
}

// Wait blocks until every worker goroutine spawned by this pipeline
// (across every stage built with Then/Chain/Parallel) has exited. It is
// safe to call concurrently with Out.Pop.
func (e *Endpoints[In, Out]) Wait() {
	e.wg.Wait()
}

// Source wraps a bare conduit.Pipe as the zero-stage feed-in point for a
// pipeline: no worker goroutine, just the raw producer/consumer pair.
// Then builds subsequent stages on top of it.
func Source[T any](limit int) *Endpoints[T, T] {
	p := conduit.New[T](limit)
	in := p.NewProducer()
	out := p.NewConsumer()
	p.Close()
	return &Endpoints[T, T]{In: in, Out: out, wg: &sync.WaitGroup{}}
}

// Then appends one transform stage to prev, returning new Endpoints whose
// In is unchanged (still the pipeline's original feed-in point) and whose
// Out is this stage's freshly created output consumer.
//
// width worker goroutines are spawned, all popping from prev.Out (popping
// through the same handle concurrently is safe: the underlying pipe
// serializes it) and each holding its own output producer handle, so the
// output pipe's producer refcount reaches zero only once every worker has
// exited (the deterministic shutdown cascade of spec.md §4.3). width == 1
// is a plain linear stage; width > 1 is the fan-out/parallel variant,
// sharing the same machinery per spec.md §4.3's "two flavours share a
// common backbone".
//
// limit bounds the new output pipe (0 for unbounded, matching the rest of
// this package's convention).
func Then[In, Out, Out2 any](prev *Endpoints[In, Out], f TransformFunc[Out, Out2], width, limit int) *Endpoints[In, Out2] {
	if width < 1 {
		width = 1
	}

	outPipe := conduit.New[Out2](limit)
	outConsumer := outPipe.NewConsumer()

	producers := make([]*conduit.Producer[Out2], width)
	for i := range producers {
		producers[i] = outPipe.NewProducer()
	}
	outPipe.Close()

	stageWG := &sync.WaitGroup{}
	stageWG.Add(width)
	prev.wg.Add(width)
	for i := 0; i < width; i++ {
		go func(outProd *conduit.Producer[Out2]) {
			defer prev.wg.Done()
			defer stageWG.Done()
			defer outProd.Release()
			runStage(prev.Out, f, outProd)
		}(producers[i])
	}

	// Release the shared input consumer handle exactly once, after every
	// worker that uses it has finished - never mid-flight, and never
	// more than once for a handle created only once.
	prev.wg.Add(1)
	go func() {
		defer prev.wg.Done()
		stageWG.Wait()
		prev.Out.Release()
	}()

	return &Endpoints[In, Out2]{In: prev.In, Out: outConsumer, wg: prev.wg}
}

// runStage is one stage worker's body: pop until the input is drained and
// closed, running f on every non-empty batch.
func runStage[In, Out any](in *conduit.Consumer[In], f TransformFunc[In, Out], out *conduit.Producer[Out]) {
	buf := make([]In, popBatchSize)
	for {
		n := in.Pop(buf)
		if n == 0 {
			return
		}
		f(buf[:n], out)
	}
}

// Chain fuses a sequence of same-type transform stages, one worker per
// stage, into a linear pipeline: spec.md §4.3's pipeline(...) builder for
// the common case where every stage's input and output share one type
// (e.g. the eight-stage doubling scenario of spec.md §8).
//
// limit bounds every internal pipe in the chain (0 for unbounded).
func Chain[T any](limit int, fns ...TransformFunc[T, T]) *Endpoints[T, T] {
	ep := Source[T](limit)
	for _, f := range fns {
		ep = Then(ep, f, 1, limit)
	}
	return ep
}

// Parallel is a single logical stage fanned out to width worker threads
// sharing one input pipe and one output pipe: spec.md §4.3's
// parallel(...) builder. Elements are delivered to whichever worker pops
// them; there is no output-order guarantee across workers.
func Parallel[In, Out any](width, limit int, f TransformFunc[In, Out]) *Endpoints[In, Out] {
	src := Source[In](limit)
	return Then(src, f, width, limit)
}
