package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/crillab/wcnfpp/internal/log"
	"github.com/crillab/wcnfpp/pkg/wcnf"
	"github.com/crillab/wcnfpp/pkg/wcnf/dimacsio"
)

func main() {
	var (
		verbose        bool
		noEqUnit       bool
		noHarden       bool
		noMutex        bool
		hardenBudget   int
		mxMemLimitMB   int
		mxCPULimit     time.Duration
	)
	flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	flag.BoolVar(&noEqUnit, "no-eq-unit", false, "disables equality/unit reduction")
	flag.BoolVar(&noHarden, "no-harden", false, "disables transition-weight hardening")
	flag.BoolVar(&noMutex, "no-mutex", false, "disables mutex discovery and application")
	flag.IntVar(&hardenBudget, "harden-budget", 1024*1024, "propagation budget per hardening probe")
	flag.IntVar(&mxMemLimitMB, "mx-mem-mb", 2048, "memory limit, in MB, for mutex discovery")
	flag.DurationVar(&mxCPULimit, "mx-cpu", 10*time.Second, "wall-clock budget for mutex discovery")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax: %s [options] file.wcnf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Args()[0]

	cfg := wcnf.DefaultConfig()
	cfg.Verbose = verbose
	cfg.EnableEqUnitReduce = !noEqUnit
	cfg.EnableHardening = !noHarden
	cfg.EnableMutexFinder = !noMutex
	cfg.HardenPropBudget = hardenBudget
	cfg.MxMemLimit = int64(mxMemLimitMB) * 1024 * 1024
	cfg.MxCPULimit = mxCPULimit

	fmt.Printf("c preprocessing %s\n", path)
	f, err := parse(path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not parse %q: %v\n", path, err)
		os.Exit(1)
	}
	f.SetLogOutput(log.New(os.Stderr, verbose))

	if err := f.Preprocess(); err != nil {
		fmt.Println("c formula derived unsatisfiable during preprocessing")
		fmt.Println("s UNSATISFIABLE")
		return
	}
	report(f, verbose)
	if err := dimacsio.Write(os.Stdout, f); err != nil {
		fmt.Fprintf(os.Stderr, "could not write simplified formula: %v\n", err)
		os.Exit(1)
	}
}

func parse(path string, cfg wcnf.Config) (*wcnf.Formula, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	return dimacsio.Load(f, cfg)
}

func report(f *wcnf.Formula, verbose bool) {
	if !verbose {
		return
	}
	fmt.Printf("c ======================================================================================\n")
	fmt.Printf("c | Hard clauses   : %9d                                                           |\n", f.NumHardClauses())
	fmt.Printf("c | Soft clauses   : %9d                                                           |\n", f.NumSoftClauses())
	fmt.Printf("c | Variables      : %9d                                                           |\n", f.MaxVar())
	fmt.Printf("c | Base cost      : %9v                                                           |\n", float64(f.BaseCost()))
	fmt.Printf("c | Total weight   : %9v                                                           |\n", float64(f.TotalWeight()))
	fmt.Printf("c | Weight min/max : %9v / %-9v                                               |\n", float64(f.WeightMin()), float64(f.WeightMax()))
	fmt.Printf("c | Weight mean/var: %9v / %-9v                                               |\n", float64(f.WeightMean()), float64(f.WeightVariance()))
	fmt.Printf("c | Distinct wts   : %9d                                                           |\n", f.DistinctWeightCount())
	fmt.Printf("c | Mutexes found  : %9d                                                           |\n", len(f.Mutexes()))
	fmt.Printf("c ======================================================================================\n")
}
