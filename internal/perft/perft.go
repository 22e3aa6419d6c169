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

// Package perft drives move-generation correctness/performance testing.
// It wraps the single-threaded depth-first driver already implemented
// in internal/movegen and adds a root-splitting parallel driver on top
// of it, keeping internal/movegen itself single-threaded.
package perft

import (
	myLogging "github.com/kopptal/chesscore/internal/logging"
	"github.com/kopptal/chesscore/internal/movegen"
)

var log = myLogging.GetLog()

// Result collects the leaf-count and statistics of a completed perft run.
type Result struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
	CheckMateCounter uint64
}

// Perft is a thin handle around the single-threaded movegen.Perft driver.
// It exists so callers depend on internal/perft rather than reaching
// into internal/movegen directly, keeping the parallel driver and the
// sequential one behind the same package.
type Perft struct {
	mgPerft *movegen.Perft
}

// New creates a ready-to-use Perft driver.
func New() *Perft {
	return &Perft{mgPerft: movegen.NewPerft()}
}

// Stop aborts a run started in another goroutine.
func (pf *Perft) Stop() {
	pf.mgPerft.Stop()
}

// StartPerft runs a single-depth perft test from the given FEN,
// using on-demand (phased) move generation when onDemandFlag is set.
func (pf *Perft) StartPerft(fen string, depth int, onDemandFlag bool) Result {
	pf.mgPerft.StartPerft(fen, depth, onDemandFlag)
	return pf.result()
}

// StartPerftMulti runs perft for every depth in [startDepth, endDepth],
// reporting each depth in turn. Can be stopped mid-run via Stop.
func (pf *Perft) StartPerftMulti(fen string, startDepth, endDepth int, onDemandFlag bool) Result {
	pf.mgPerft.StartPerftMulti(fen, startDepth, endDepth, onDemandFlag)
	return pf.result()
}

func (pf *Perft) result() Result {
	return Result{
		Nodes:            pf.mgPerft.Nodes,
		CaptureCounter:   pf.mgPerft.CaptureCounter,
		EnpassantCounter: pf.mgPerft.EnpassantCounter,
		CastleCounter:    pf.mgPerft.CastleCounter,
		PromotionCounter: pf.mgPerft.PromotionCounter,
		CheckCounter:     pf.mgPerft.CheckCounter,
		CheckMateCounter: pf.mgPerft.CheckMateCounter,
	}
}
