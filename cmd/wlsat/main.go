// Command wlsat is a toy SAT solver.
//
// wlsat reads one or more problem specifications in the DIMACS CNF
// format, one per file, and writes the output for each in the
// conventional way: either the first line is UNSAT, or else the first
// line is SAT and the second line gives the assignments as
// space-separated signed literals, with no terminating 0.
//
// If no input file is given, wlsat reads a single problem from standard
// input.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/kr/pretty"

	"github.com/kbrazil/wlsat"
	"github.com/kbrazil/wlsat/internal/stats"
)

type args struct {
	Inputs  []string `arg:"positional" help:"DIMACS CNF files (default: stdin, one problem)"`
	Verbose bool     `arg:"-v" help:"print solver stats to stderr"`
}

func (args) Description() string {
	return "wlsat solves DIMACS CNF files and reports SAT/UNSAT plus a model for each."
}

func main() {
	log.SetFlags(0)
	var a args
	arg.MustParse(&a)

	if len(a.Inputs) == 0 {
		solveOne(os.Stdin, "<stdin>", a.Verbose, nil)
		return
	}

	decisions := stats.NewDecayingMean(0.1)
	for _, name := range a.Inputs {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		solveOne(f, name, a.Verbose, decisions)
		f.Close()
	}
	if a.Verbose && decisions.Count() > 1 {
		fmt.Fprintf(os.Stderr, "mean decisions/solve across %d files: %.2f\n", decisions.Count(), decisions.Mean())
	}
}

func solveOne(r io.Reader, name string, verbose bool, decisions *stats.DecayingMean) {
	cnf, err := wlsat.ParseDIMACS(r)
	if err != nil {
		log.Fatalf("%s: error reading input as DIMACS CNF: %s", name, err)
	}

	prob, err := wlsat.BuildModel(cnf)
	if err != nil {
		log.Fatalf("%s: error building model: %s", name, err)
	}

	model, st, ok := prob.Solve()
	if decisions != nil {
		decisions.Observe(float64(st.Decisions))
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%s: %# v\n", name, pretty.Formatter(st))
	}
	if !ok {
		fmt.Println("UNSAT")
		return
	}
	fmt.Println("SAT")
	for i, v := range model {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(v)
	}
	fmt.Println()
}
