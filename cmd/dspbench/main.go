// Command dspbench is the CLI surface around the densest-subgraph
// toolkit's two reproducible entry points (section 6): evaluate one named
// algorithm on one dataset, or evaluate every algorithm on every dataset
// given on the command line.
//
// This command is deliberately thin: it is the external collaborator
// named in the out-of-scope list (loader, CLI, presentation are "trivial
// glue"), so it does no algorithmic work of its own — it only parses
// flags, loads datasets via the loader package, and prints eval.Record
// maps.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/zayad10/densub/algorithm"
	"github.com/zayad10/densub/eval"
	"github.com/zayad10/densub/loader"
)

var kindByName = map[string]algorithm.Kind{
	"charikar-linear": algorithm.CharikarLinear,
	"charikar-heap":   algorithm.CharikarHeap,
	"greedy++":        algorithm.GreedyPP,
	"greedy++-heap":   algorithm.GreedyPPHeap,
	"goldberg-exact":  algorithm.GoldbergExact,
}

var allKindNames = []string{
	"charikar-linear", "charikar-heap", "greedy++", "greedy++-heap", "goldberg-exact",
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("dspbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algoName := fs.String("algorithm", "", "algorithm to run: "+strings.Join(allKindNames, ", ")+" (required unless -all is set)")
	dataset := fs.String("dataset", "", "path to a single dataset file")
	iterations := fs.Int("iterations", algorithm.DefaultIterations, "pass count for greedy++ variants")
	all := fs.Bool("all", false, "evaluate every algorithm on every dataset file given as positional args")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *all {
		return runAll(fs.Args(), *iterations, stdout, stderr)
	}
	return runOne(*algoName, *dataset, *iterations, stdout, stderr)
}

func runOne(algoName, dataset string, iterations int, stdout, stderr *os.File) int {
	if algoName == "" || dataset == "" {
		fmt.Fprintln(stderr, "dspbench: -algorithm and -dataset are required unless -all is set")
		return 2
	}
	kind, ok := kindByName[algoName]
	if !ok {
		fmt.Fprintf(stderr, "dspbench: unknown algorithm %q\n", algoName)
		return 2
	}

	g, err := loader.FromFile(dataset)
	if err != nil {
		fmt.Fprintf(stderr, "dspbench: %v\n", err)
		return 1
	}

	rec := eval.Evaluate(g, algorithm.Options{Kind: kind, Iterations: iterations})
	printRecord(stdout, rec)
	return 0
}

func runAll(datasets []string, iterations int, stdout, stderr *os.File) int {
	if len(datasets) == 0 {
		fmt.Fprintln(stderr, "dspbench: -all requires at least one dataset path")
		return 2
	}

	for _, path := range datasets {
		g, err := loader.FromFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "dspbench: %v\n", err)
			return 1
		}
		for _, name := range allKindNames {
			rec := eval.Evaluate(g, algorithm.Options{Kind: kindByName[name], Iterations: iterations})
			printRecord(stdout, rec)
		}
	}
	return 0
}

func printRecord(stdout *os.File, rec eval.Record) {
	enc := json.NewEncoder(stdout)
	_ = enc.Encode(rec.ToMap())
}
