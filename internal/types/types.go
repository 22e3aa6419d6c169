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

// Package types contains the core data types of the chess engine -
// squares, bitboards, pieces, moves - and the pre-computed lookup
// tables (attack tables, magic bitboards, piece-square tables) they
// depend on.
// Many of these would be perfect enum candidates but Go does not
// provide enums.
package types

import (
	"github.com/kopptal/chesscore/internal/logging"
)

var log = logging.GetLog()

var initialized = false

// Init pre-computes the package's lookup tables: bitboard masks, leaper
// and slider attack tables (including the magic-bitboard search) and
// piece-square values. It is idempotent and must be called once before
// any other function in this package is used.
//
// Unlike an implicit package init(), Init returns an error: the magic
// bitboard search is probabilistic and, in principle, can fail to
// converge, which must be surfaced as a setup failure rather than
// panicking during package loading. Callers that have no reasonable
// recovery path (e.g. importing this package at all) can ignore the
// error; the package init() below already calls Init and panics on
// failure so the tables are always ready by the time any importer's
// own code runs.
func Init() error {
	if initialized {
		return nil
	}
	log.Debug("Initializing data types")
	if err := initBb(); err != nil {
		return err
	}
	initPosValues()
	initialized = true
	return nil
}

func init() {
	if err := Init(); err != nil {
		panic(err)
	}
}

const (
	// MaxDepth is the maximum search depth supported by move/value encoding.
	MaxDepth = 128

	// MaxMoves is the maximum number of moves expected in a single game.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024

	// MB is KB * KB.
	MB uint64 = KB * KB

	// GB is KB * MB.
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game-phase value, reached with all
	// officers still on the board. Game phase is used to blend
	// midgame/endgame piece-square values.
	GamePhaseMax = 24
)
