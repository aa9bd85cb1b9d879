// Command osprey runs a perft (performance test) over a chess
// position, counting the leaf nodes of the legal move tree to a fixed
// depth.
//
// See https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/DieSeeKat/osprey/chess"
	"github.com/DieSeeKat/osprey/cli"
	"github.com/DieSeeKat/osprey/perft"
)

var knownPositions = map[string]string{
	"startpos": chess.StartFEN,
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func main() {
	fen := flag.String("fen", "startpos", "FEN string to search, or a known position name (startpos, kiwipete, duplain)")
	file := flag.String("file", "", "path to a file containing a FEN string (overrides -fen)")
	depth := flag.Int("depth", 5, "perft depth")
	workers := flag.Int("workers", 1, "number of goroutines to split the root move list across")
	bench := flag.Bool("bench", false, "print elapsed time and nodes-per-second")
	verbose := flag.Bool("verbose", false, "print the starting position before searching")
	flag.Parse()

	if *depth < 0 {
		log.Println("depth must be non-negative")
		os.Exit(2)
	}
	if *workers < 1 {
		log.Println("workers must be at least 1")
		os.Exit(2)
	}

	fenText := *fen
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Printf("reading FEN file: %v", err)
			os.Exit(2)
		}
		fenText = string(data)
	} else if known, ok := knownPositions[*fen]; ok {
		fenText = known
	}

	pos, err := chess.ParseFEN(fenText)
	if err != nil {
		log.Printf("parsing FEN %q: %v", fenText, err)
		os.Exit(1)
	}

	if *verbose {
		log.Printf("\n%s\n\t%s\n", cli.FormatPosition(pos), fenText)
	}

	start := time.Now()
	var nodes int
	if *workers > 1 {
		nodes, err = perft.CountParallel(context.Background(), pos, *depth, *workers)
		if err != nil {
			log.Printf("perft: %v", err)
			os.Exit(2)
		}
	} else {
		nodes = perft.Count(pos, *depth)
	}
	elapsed := time.Since(start)

	if *bench {
		var knps float64
		if elapsed > 0 {
			knps = float64(nodes) / 1000 / elapsed.Seconds()
		}
		fmt.Printf("depth %d: %d nodes, %.3fs, %.0f kN/s\n", *depth, nodes, elapsed.Seconds(), knps)
	} else {
		fmt.Printf("%d\n", nodes)
	}
}
