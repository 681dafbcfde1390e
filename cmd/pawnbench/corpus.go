package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/counterchess/pawnstruct/pkg/common"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/sync/errgroup"
)

// skipPlies leaves the first opening moves out of the corpus, the early
// structures repeat across games.
const skipPlies = 8

func generateCorpus(ctx context.Context, outputPath string, games, plies int) error {
	log.Println("generateCorpus started")
	defer log.Println("generateCorpus finished")

	g, ctx := errgroup.WithContext(ctx)

	var positions = make(chan common.Position, 128)

	g.Go(func() error {
		defer close(positions)
		var rnd = rand.New(rand.NewSource(1))
		for i := 0; i < games; i++ {
			var err = playRandomGame(ctx, rnd, plies, positions)
			if err != nil {
				return err
			}
		}
		return nil
	})

	g.Go(func() error {
		return saveFens(ctx, outputPath, positions)
	})

	return g.Wait()
}

func playRandomGame(ctx context.Context, rnd *rand.Rand, plies int, positions chan<- common.Position) error {
	var board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
	for ply := 0; ply < plies; ply++ {
		var moves = board.GenerateLegalMoves()
		if len(moves) == 0 {
			return nil
		}
		board.Apply(moves[rnd.Intn(len(moves))])
		if ply < skipPlies {
			continue
		}
		var pos, err = common.NewPositionFromFEN(board.ToFen())
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case positions <- pos:
		}
	}
	return nil
}

func saveFens(ctx context.Context, filepath string, positions <-chan common.Position) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	var ticker = time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	var totalCount int
	var uniqueCount int
	var seen = make(map[uint64]struct{})
	var seenPawns = make(map[uint64]struct{})

	var showProgress = func() {
		log.Printf("Total: %v unique: %v pawn structures: %v\n",
			totalCount, uniqueCount, len(seenPawns))
	}

LOOP:
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			showProgress()
		case pos, positionOk := <-positions:
			if !positionOk {
				break LOOP
			}
			totalCount++
			if _, found := seen[pos.Key]; found {
				continue
			}
			seen[pos.Key] = struct{}{}
			seenPawns[pos.PawnKey] = struct{}{}

			uniqueCount++

			_, err = fmt.Fprintln(file, pos.String())
			if err != nil {
				return err
			}
		}
	}

	showProgress()
	return nil
}
