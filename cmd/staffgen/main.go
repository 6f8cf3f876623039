package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"staffdeck/internal/store"
)

func main() {
	var (
		count    int
		seed     int64
		outPath  string
		toStdout bool
	)

	flag.IntVar(&count, "count", 250, "Number of employees to generate")
	flag.Int64Var(&seed, "seed", 42, "Random seed; the same seed produces the same roster")
	flag.StringVar(&outPath, "out", "", "Output file path. Defaults to roster.json")
	flag.BoolVar(&toStdout, "stdout", false, "Write the roster to stdout instead of a file")
	flag.Parse()

	if count < 0 {
		fmt.Fprintln(os.Stderr, "count must be >= 0")
		os.Exit(2)
	}

	users := store.SeedUsers(count, seed)

	if toStdout {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(users); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if outPath == "" {
		outPath = "roster.json"
	}
	if err := store.SaveUsers(outPath, users); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "wrote %d employees -> %s (seed=%d)\n", count, outPath, seed)
}
