// Command cubenet solves a board-and-moves puzzle and prints its password.
//
// Usage:
//
//	cubenet [-input FILE] [-method affine|color|flat] [-cross-check] [-portals] [-trace] [-v]
//
// The puzzle is read from stdin when -input is empty or "-".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubenet/grid"
	"github.com/katalvlaran/cubenet/solver"
	"github.com/katalvlaran/cubenet/walker"
)

var (
	flagInput      = flag.String("input", "", "puzzle file; empty or \"-\" reads stdin")
	flagMethod     = flag.String("method", "affine", "portal derivation: affine, color or flat")
	flagCrossCheck = flag.Bool("cross-check", false, "derive portals with both cube methods and compare them")
	flagPortals    = flag.Bool("portals", false, "print the derived portals")
	flagTrace      = flag.Bool("trace", false, "print the board with the visited path")
	flagVerbose    = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	if *flagVerbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer) error {
	method, err := solver.ParseMethod(*flagMethod)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if *flagInput != "" && *flagInput != "-" {
		f, err := os.Open(*flagInput)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	p, err := grid.Parse(in)
	if err != nil {
		return err
	}

	opts := []solver.Option{solver.WithMethod(method), solver.WithLogger(log.StandardLogger())}
	if *flagCrossCheck {
		opts = append(opts, solver.WithCrossCheck())
	}
	sol, err := solver.Solve(p, opts...)
	if err != nil {
		return err
	}

	if *flagPortals {
		for _, pt := range sol.Portals {
			fmt.Fprintln(w, pt)
		}
	}
	if *flagTrace {
		fmt.Fprint(w, walker.Render(p.Grid, sol.Walk.Visited))
	}
	fmt.Fprintln(w, sol.Walk.Password)
	return nil
}
