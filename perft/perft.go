// Package perft counts the leaf nodes of the move generation tree to a
// fixed depth, the standard correctness and performance benchmark for
// a chess move generator. See https://www.chessprogramming.org/Perft_Results.
package perft

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/DieSeeKat/osprey/chess"
)

// Count walks the move tree rooted at pos to the given depth and
// returns the number of legal leaf positions. depth 0 counts the root
// itself as a single node.
func Count(pos chess.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	var l chess.MoveList
	chess.Generate(&pos, &l)

	nodes := 0
	for _, m := range l.Slice() {
		next, err := chess.MakeMove(pos, m)
		if err != nil {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Count(next, depth-1)
	}
	return nodes
}

// CountParallel behaves like Count but fans the root's legal moves out
// across up to workers goroutines, each one recursing the remainder of
// the tree serially. Every worker owns its own Position copies, so no
// locking is needed: Position carries no pointers or slices, and
// MakeMove never mutates its argument.
//
// If there are fewer legal root moves than workers, only as many
// goroutines as there are moves are started. A position with zero
// legal root moves (checkmate or stalemate) returns 0 immediately.
func CountParallel(ctx context.Context, pos chess.Position, depth int, workers int) (int, error) {
	if depth == 0 {
		return 1, nil
	}
	if workers < 1 {
		workers = 1
	}

	var l chess.MoveList
	chess.Generate(&pos, &l)

	type legalMove struct {
		pos chess.Position
	}
	var roots []legalMove
	for _, m := range l.Slice() {
		next, err := chess.MakeMove(pos, m)
		if err != nil {
			continue
		}
		roots = append(roots, legalMove{next})
	}
	if len(roots) == 0 {
		return 0, nil
	}
	if depth == 1 {
		return len(roots), nil
	}
	if workers > len(roots) {
		workers = len(roots)
	}

	counts := make([]int, len(roots))
	g, ctx := errgroup.WithContext(ctx)

	chunks := partition(len(roots), workers)
	start := 0
	for _, size := range chunks {
		start, size := start, size
		g.Go(func() error {
			for i := start; i < start+size; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				counts[i] = Count(roots[i].pos, depth-1)
			}
			return nil
		})
		start += size
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// partition splits n items as evenly as possible across workers shares.
func partition(n, workers int) []int {
	sizes := make([]int, workers)
	base, rem := n/workers, n%workers
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}
