package main

import (
	"context"
	"log"
	"os"
	"runtime"

	"github.com/counterchess/pawnstruct/pkg/pawns"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	var args = NewCommandArgs(os.Args)
	var handler = NewCommandHandler()
	handler.Add("gen", func() error {
		var output = args.GetString("output", "corpus.fen")
		var games = args.GetInt("games", 2000)
		var plies = args.GetInt("plies", 60)
		return generateCorpus(context.Background(), output, games, plies)
	})
	handler.Add("bench", func() error {
		var input = args.GetString("input", "corpus.fen")
		var threads = args.GetInt("threads", runtime.NumCPU())
		var size = args.GetInt("size", pawns.DefaultTableSize)
		return runBenchmark(input, threads, size)
	})
	return handler.Execute(args.CommandName())
}
