// Command mpqreplay replays a scenario file against a MessagePriorityQueue and prints each result.
//
//	mpqreplay -f testdata/priority.yaml
package main

import (
	"flag"
	"log"
	"os"

	"github.com/g-m-twostay/go-lists/internal/scenario"
)

func dropError(prefix string, err error) {
	if err != nil {
		log.Printf("%s: %v", prefix, err)
	} else {
		log.Print(prefix)
	}
}

func main() {
	path := flag.String("f", "", "scenario file (.yaml, .yml or .json)")
	flag.Parse()
	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}
	s, err := scenario.Load(*path)
	if err != nil {
		dropError("load", err)
		os.Exit(1)
	}
	if err := scenario.Run(s, os.Stdout); err != nil {
		dropError("run", err)
		os.Exit(1)
	}
}
