package perft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DieSeeKat/osprey/chess"
)

// Known perft node counts, the standard correctness benchmark for a
// move generator. See https://www.chessprogramming.org/Perft_Results.
var knownPositions = []struct {
	name  string
	fen   string
	nodes []int // nodes[depth-1]
}{
	{
		"startpos",
		chess.StartFEN,
		[]int{20, 400, 8902, 197281},
	},
	{
		"kiwipete",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		[]int{48, 2039, 97862},
	},
	{
		"duplain",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		[]int{14, 191, 2812, 43238},
	},
	{
		"position4",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		[]int{6, 264, 9467},
	},
	{
		"position5",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		[]int{44, 1486, 62379},
	},
	{
		"position6",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		[]int{46, 2079, 89890},
	},
}

func TestCountKnownPositions(t *testing.T) {
	for _, tc := range knownPositions {
		pos, err := chess.ParseFEN(tc.fen)
		require.NoError(t, err, tc.name)
		for i, want := range tc.nodes {
			depth := i + 1
			got := Count(pos, depth)
			require.Equal(t, want, got, "%s depth %d", tc.name, depth)
		}
	}
}

func TestCountParallelMatchesSerial(t *testing.T) {
	pos, err := chess.ParseFEN(chess.StartFEN)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 3, 8} {
		got, err := CountParallel(context.Background(), pos, 4, workers)
		require.NoError(t, err)
		require.Equal(t, Count(pos, 4), got, "workers=%d", workers)
	}
}

func TestCountParallelFewerRootMovesThanWorkers(t *testing.T) {
	// Only a handful of legal root moves; requesting far more workers
	// than that must not panic or deadlock.
	fen := "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"
	pos, err := chess.ParseFEN(fen)
	require.NoError(t, err)

	got, err := CountParallel(context.Background(), pos, 3, 64)
	require.NoError(t, err)
	require.Equal(t, Count(pos, 3), got)
}

func TestCountParallelZeroRootMoves(t *testing.T) {
	// Checkmate: no legal moves at all.
	fen := "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	pos, err := chess.ParseFEN(fen)
	require.NoError(t, err)

	got, err := CountParallel(context.Background(), pos, 1, 4)
	require.NoError(t, err)
	require.Equal(t, 0, got)

	require.Equal(t, 0, Count(pos, 1))
}

func TestCountDepthZero(t *testing.T) {
	pos, err := chess.ParseFEN(chess.StartFEN)
	require.NoError(t, err)
	require.Equal(t, 1, Count(pos, 0))

	got, err := CountParallel(context.Background(), pos, 0, 4)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}
