package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/counterchess/pawnstruct/pkg/common"
	"github.com/counterchess/pawnstruct/pkg/pawns"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// runBenchmark probes every corpus position from several workers, each with a
// private table. Matching checksums confirm concurrent workers with private
// tables stay deterministic.
func runBenchmark(inputPath string, threads, tableSize int) error {
	var positions, err = loadPositions(inputPath)
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		return fmt.Errorf("empty corpus %v", inputPath)
	}
	var structures = make(map[uint64]struct{})
	for i := range positions {
		structures[positions[i].PawnKey] = struct{}{}
	}
	log.Printf("loaded %v positions, %v pawn structures\n",
		len(positions), len(structures))

	var checksums = make([]uint64, threads)
	var durations = make([]time.Duration, threads)

	var g errgroup.Group
	for i := 0; i < threads; i++ {
		var workerIndex = i
		g.Go(func() error {
			var table = pawns.NewTable(tableSize)
			var started = time.Now()
			var checksum uint64
			for i := range positions {
				var p = &positions[i]
				var entry = table.Probe(p)
				checksum = mixChecksum(checksum, uint64(entry.Value()))
				var wksq = common.FirstOne(p.Kings & p.White)
				var bksq = common.FirstOne(p.Kings & p.Black)
				checksum = mixChecksum(checksum, uint64(entry.KingSafety(p, common.SideWhite, wksq)))
				checksum = mixChecksum(checksum, uint64(entry.KingSafety(p, common.SideBlack, bksq)))
			}
			checksums[workerIndex] = checksum
			durations[workerIndex] = time.Since(started)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := 1; i < threads; i++ {
		if checksums[i] != checksums[0] {
			return fmt.Errorf("checksum mismatch %v", checksums)
		}
	}

	slices.Sort(durations)
	log.Printf("threads: %v checksum: %x fastest: %v slowest: %v speed: %.0f probes/s\n",
		threads, checksums[0], durations[0], durations[len(durations)-1],
		float64(len(positions))/durations[0].Seconds())
	return nil
}

func mixChecksum(h, k uint64) uint64 {
	h ^= k
	h *= uint64(0xc6a4a7935bd1e995)
	return h ^ (h >> uint(51))
}

func loadPositions(filePath string) ([]common.Position, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result []common.Position
	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		var line = scanner.Text()
		if line == "" {
			continue
		}
		var p, err = common.NewPositionFromFEN(line)
		if err != nil {
			log.Println(err)
			continue
		}
		result = append(result, p)
	}
	return result, scanner.Err()
}
