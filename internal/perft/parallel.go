/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package perft

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/frankkopp/workerpool"
	"golang.org/x/sync/errgroup"

	"github.com/kopptal/chesscore/internal/config"
	"github.com/kopptal/chesscore/internal/movegen"
	"github.com/kopptal/chesscore/internal/position"
	. "github.com/kopptal/chesscore/internal/types"
)

// RootResult is the leaf count contributed by a single root move.
type RootResult struct {
	Move  Move
	Nodes uint64
}

// TotalNodes sums the leaf counts of a root-split breakdown.
func TotalNodes(results []RootResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}

// rootMoveTask is one root-splitting job: replay move onto a fresh
// position parsed from fen and recurse the remaining depth. Implements
// workerpool.WorkTask; the pool calls Run() on a worker goroutine and
// hands the task back on GetFinished() once done, so the result fields
// are read only after that handoff, never while Run() may still be
// executing.
type rootMoveTask struct {
	fen   string
	move  Move
	depth int
	nodes uint64
	err   error
}

// Run executes the job. Required by workerpool.WorkTask.
func (t *rootMoveTask) Run() {
	t.nodes, t.err = perftRootMove(t.fen, t.move, t.depth)
}

// Parallel splits a perft run at the root: one worker job per legal
// root move, each replaying that single move onto its own independent
// position parsed fresh from fen, then running the remaining depth to
// completion single-threaded. Mirrors
// bitboard_perft_parallel.py's one-root-move-per-worker design, with
// github.com/frankkopp/workerpool standing in for the Python driver's
// process pool.
//
// ctx cancellation stops queuing further jobs; Parallel still waits for
// the jobs already queued and returns their per-root-move results with
// ctx.Err(), or with the first job error if a job failed.
func Parallel(ctx context.Context, fen string, depth int) ([]RootResult, error) {
	if depth <= 0 {
		depth = 1
	}

	rootPos, err := position.NewPositionFen(fen)
	if err != nil {
		return nil, fmt.Errorf("perft: invalid root fen %q: %w", fen, err)
	}

	rootMg := movegen.NewMoveGen()
	rootMoves := *rootMg.GenerateLegalMoves(rootPos, movegen.GenAll)
	if len(rootMoves) == 0 {
		return nil, nil
	}

	log.Debugf("Parallelizing %d root moves for depth %d", len(rootMoves), depth)

	poolSize := config.Settings.Perft.WorkerPoolSize
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}
	pool := workerpool.NewWorkerPool(poolSize, len(rootMoves))

	tasks := make([]*rootMoveTask, 0, len(rootMoves))
	var cancelErr error

	for _, rootMove := range rootMoves {
		select {
		case <-ctx.Done():
			cancelErr = ctx.Err()
		default:
		}
		if cancelErr != nil {
			break
		}

		// rootMove is copied into the task at creation, before it is
		// handed to the pool, so later loop iterations never alias a
		// task still waiting to run.
		t := &rootMoveTask{fen: fen, move: rootMove, depth: depth}
		tasks = append(tasks, t)
		pool.Add(t)
	}

	pool.Close()
	for range pool.GetFinished() {
	}

	results := make([]RootResult, 0, len(tasks))
	var firstErr error
	for _, t := range tasks {
		if t.err != nil {
			if firstErr == nil {
				firstErr = t.err
			}
			continue
		}
		results = append(results, RootResult{Move: t.move, Nodes: t.nodes})
		log.Debugf("Root move %d/%d (%s): %d nodes", len(results), len(tasks), t.move.StringUci(), t.nodes)
	}

	if firstErr == nil {
		firstErr = cancelErr
	}
	if firstErr != nil {
		return results, firstErr
	}
	return results, nil
}

// perftRootMove builds its own Position from fen (never shares state
// with other root jobs), plays the single root move, and recurses the
// remaining depth single-threaded.
func perftRootMove(fen string, rootMove Move, depth int) (uint64, error) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		return 0, err
	}

	p.DoMove(rootMove)
	defer p.UndoMove()
	if !p.WasLegalMove() {
		return 0, nil
	}

	if depth == 1 {
		return 1, nil
	}

	pf := movegen.NewPerft()
	return pf.RunFrom(p, depth-1, false), nil
}

// StartPerftMultiConcurrent runs one independent perft driver per
// requested depth concurrently, collecting the first error via
// errgroup.Group, per spec.md's depth-multi loop running independent
// depths in parallel. Each depth gets its own movegen.Perft instance so
// counters never race; results are returned in depth order.
func StartPerftMultiConcurrent(ctx context.Context, fen string, startDepth, endDepth int, onDemandFlag bool) ([]Result, error) {
	if endDepth < startDepth {
		startDepth, endDepth = endDepth, startDepth
	}

	results := make([]Result, endDepth-startDepth+1)
	g, gCtx := errgroup.WithContext(ctx)

	for i := startDepth; i <= endDepth; i++ {
		depth := i
		idx := i - startDepth
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}
			start := time.Now()
			mgPerft := movegen.NewPerft()
			mgPerft.StartPerft(fen, depth, onDemandFlag)
			log.Debugf("Depth %d finished in %s", depth, time.Since(start))
			results[idx] = Result{
				Nodes:            mgPerft.Nodes,
				CaptureCounter:   mgPerft.CaptureCounter,
				EnpassantCounter: mgPerft.EnpassantCounter,
				CastleCounter:    mgPerft.CastleCounter,
				PromotionCounter: mgPerft.PromotionCounter,
				CheckCounter:     mgPerft.CheckCounter,
				CheckMateCounter: mgPerft.CheckMateCounter,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
