// Command satsolver reads a DIMACS CNF file and runs the CDCL search
// described in internal/sat, reporting SATISFIABLE/UNSATISFIABLE on
// stdout in the standard SAT-competition format.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/watchsat/watchsat/internal/dimacs"
	"github.com/watchsat/watchsat/internal/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile to ./cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile to ./memprof",
)

var flagMaxConflicts = flag.Int64(
	"max_conflicts",
	-1,
	"maximum number of conflicts allowed before giving up (-1 = no maximum)",
)

type config struct {
	instanceFile string
	cpuProfile   bool
	memProfile   bool
	maxConflicts int64
}

func parseConfig() (*config, error) {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		cpuProfile:   *flagCPUProfile,
		memProfile:   *flagMemProfile,
		maxConflicts: *flagMaxConflicts,
	}, nil
}

func solverOptions(cfg *config) sat.Options {
	opts := sat.DefaultOptions
	if cfg.maxConflicts >= 0 {
		opts.MaxConflicts = cfg.maxConflicts
	}
	return opts
}

// exit codes per spec §6.
const (
	exitSAT     = 10
	exitUNSAT   = 20
	exitUnknown = 0
)

func run(cfg *config) (int, error) {
	s := sat.NewSolver(solverOptions(cfg))

	if err := dimacs.Load(cfg.instanceFile, s); err != nil {
		return exitUnknown, fmt.Errorf("could not load instance: %w", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d\n", s.TotalConflicts)
	fmt.Printf("c restarts:   %d\n", s.TotalRestarts)

	switch status {
	case sat.True:
		fmt.Println("s SATISFIABLE")
		printModel(s.Model())
		return exitSAT, nil
	case sat.False:
		fmt.Println("s UNSATISFIABLE")
		return exitUNSAT, nil
	default:
		fmt.Println("c UNKNOWN")
		return exitUnknown, nil
	}
}

// printModel writes the model as "v" lines, ten literals per line, with
// the whole block terminated by " 0" (spec §6).
func printModel(model []bool) {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	const perLine = 10
	count := 0
	for i, val := range model {
		if count%perLine == 0 {
			if count > 0 {
				w.WriteString("\n")
			}
			w.WriteString("v")
		}
		lit := i + 1
		if !val {
			lit = -lit
		}
		fmt.Fprintf(w, " %d", lit)
		count++
	}

	if count == 0 {
		w.WriteString("v 0\n")
		return
	}
	if count%perLine == 0 {
		w.WriteString("\nv 0\n")
	} else {
		w.WriteString(" 0\n")
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	code, err := run(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(code)
}
