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

// Command perft runs move-generation correctness and performance
// testing from the command line: fixed single-depth runs, depth-multi
// sweeps, and a root-split parallel driver.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kopptal/chesscore/internal/config"
	"github.com/kopptal/chesscore/internal/perft"
	"github.com/kopptal/chesscore/internal/position"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen of the position to run perft on")
	depth := flag.Int("depth", 5, "perft depth")
	startDepth := flag.Int("startdepth", 0, "if set together with -depth, runs every depth in [startdepth, depth]")
	onDemand := flag.Bool("ondemand", false, "use on-demand (phased) move generation instead of bulk generation")
	parallel := flag.Bool("parallel", false, "split the run at the root across a worker pool, one job per root move")
	cpuProfile := flag.Bool("cpuprofile", false, "record a CPU profile of the run to ./cpu.pprof (overrides config file)")
	flag.Parse()

	config.ConfFile = *configFile
	if err := config.Setup(); err != nil {
		fmt.Fprintln(os.Stderr, "perft: could not read config:", err)
		os.Exit(1)
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if *cpuProfile {
		config.Settings.Perft.CPUProfile = true
	}

	if config.Settings.Perft.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if _, err := position.NewPositionFen(*fen); err != nil {
		fmt.Fprintln(os.Stderr, "perft: invalid fen:", err)
		os.Exit(1)
	}

	switch {
	case *parallel:
		runParallel(*fen, *depth)
	case *startDepth > 0:
		runMulti(*fen, *startDepth, *depth, *onDemand)
	default:
		runSingle(*fen, *depth, *onDemand)
	}
}

func runSingle(fen string, depth int, onDemand bool) {
	pf := perft.New()
	result := pf.StartPerft(fen, depth, onDemand)
	out.Printf("Nodes: %d\n", result.Nodes)
}

func runMulti(fen string, startDepth, depth int, onDemand bool) {
	pf := perft.New()
	result := pf.StartPerftMulti(fen, startDepth, depth, onDemand)
	out.Printf("Nodes (depth %d): %d\n", depth, result.Nodes)
}

func runParallel(fen string, depth int) {
	results, err := perft.Parallel(context.Background(), fen, depth)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft: parallel run failed:", err)
		os.Exit(1)
	}
	for _, r := range results {
		out.Printf("%s: %d\n", r.Move.StringUci(), r.Nodes)
	}
	out.Printf("Total nodes: %d\n", perft.TotalNodes(results))
}
