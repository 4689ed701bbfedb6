// Command nekosat is the CLI driver around the solver core: it parses a
// DIMACS CNF file (optionally gzip-compressed), runs the solver under an
// optional CPU time limit, and reports SAT/UNSAT on stdout in the
// conventional "s SATISFIABLE"/"s UNSATISFIABLE" form.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli"

	"github.com/nekosat/nekosat/config"
	"github.com/nekosat/nekosat/dimacs"
	"github.com/nekosat/nekosat/solver"
)

var startTime time.Time

func init() {
	startTime = time.Now()
}

func flags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "debug,d",
			Usage: "Debug mode (dumps conflict diagnostics via pp)",
		},
		cli.BoolTFlag{
			Name:  "verbosity,verb",
			Usage: "Verbosity mode",
		},
		cli.StringFlag{
			Name:  "input-file, in",
			Usage: "Input cnf file for solving (required)",
			Value: "None",
		},
		cli.IntFlag{
			Name:  "cpu-time-limit",
			Usage: "Limit on CPU time allowed in seconds",
			Value: -1,
		},
		cli.StringFlag{
			Name:  "result-output-file, out",
			Usage: "Output file for the model/result",
		},
	}
}

func validateFlags(c *cli.Context) error {
	if c.String("input-file") == "None" {
		return fmt.Errorf("input-file is required")
	}
	return nil
}

func printProblemStatistics(s *solver.Solver) {
	fmt.Printf("c ============================[ Problem Statistics ]=============================\n")
	fmt.Printf("c |  Number of variables:  %12d                                         |\n", s.NumVars())
	fmt.Printf("c |  Number of clauses:    %12d                                         |\n", s.Stats().OriginalClauses)
	fmt.Printf("c ================================================================================\n")
}

func printStatistics(stats solver.Statistics) {
	elapsed := time.Since(startTime).Seconds()
	fmt.Printf("c ================================================================================\n")
	fmt.Printf("c restarts:      %12d\n", stats.Restarts)
	fmt.Printf("c conflicts:     %12d (%.02f / sec)\n", stats.Conflicts, float64(stats.Conflicts)/elapsed)
	fmt.Printf("c decisions:     %12d (%.02f / sec)\n", stats.Decisions, float64(stats.Decisions)/elapsed)
	fmt.Printf("c propagations:  %12d (%.02f / sec)\n", stats.Propagations, float64(stats.Propagations)/elapsed)
	fmt.Printf("c learned:       %12d (avg LBD %.02f)\n", stats.LearnedClauses, stats.AverageLBD())
	fmt.Printf("c cpu time:      %12f\n", elapsed)
}

func writeResult(path string, sat bool, model []bool) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if sat {
		fmt.Fprintln(f, "SAT")
		for i, v := range model {
			if v {
				fmt.Fprintf(f, "%d ", i+1)
			} else {
				fmt.Fprintf(f, "%d ", -(i + 1))
			}
		}
		fmt.Fprintln(f, "0")
	} else {
		fmt.Fprintln(f, "UNSAT")
	}
	return nil
}

func printModel(model []bool) {
	fmt.Print("v ")
	for i, v := range model {
		if v {
			fmt.Printf("%d ", i+1)
		} else {
			fmt.Printf("%d ", -(i + 1))
		}
	}
	fmt.Print("0\n")
}

// Exit codes follow the minisat convention: 10 for SAT, 20 for UNSAT, 0
// for an indeterminate (timeout/interrupt) outcome, 1 on any error.
const (
	exitSAT           = 10
	exitUNSAT         = 20
	exitIndeterminate = 0
	exitError         = 1
)

func main() {
	app := cli.NewApp()
	app.Name = "nekosat"
	app.Usage = "A CDCL SAT solver"
	app.Flags = flags()

	var debugMode bool
	app.Before = func(c *cli.Context) error {
		debugMode = c.Bool("debug")
		return nil
	}

	exitCode := exitError

	app.Action = func(c *cli.Context) error {
		if err := validateFlags(c); err != nil {
			cli.ShowAppHelpAndExit(c, exitError)
			return err
		}

		inputFile := c.String("input-file")
		rc, err := dimacs.Open(inputFile)
		if err != nil {
			return err
		}
		defer rc.Close()

		cfg := config.Default()
		cfg.Verbose = c.BoolT("verbosity")

		// Variables are declared by the parser as it reads the header, so
		// the solver starts empty and grows via AddVars.
		s := solver.New(cfg, 0)

		if err := dimacs.Parse(rc, s); err != nil {
			return err
		}

		if cfg.Verbose {
			printProblemStatistics(s)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if limit := c.Int("cpu-time-limit"); limit > 0 {
			timer := time.AfterFunc(time.Duration(limit)*time.Second, cancel)
			defer timer.Stop()
		}

		sigc := make(chan os.Signal, 2)
		signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigc)
		go func() {
			if _, ok := <-sigc; ok {
				cancel()
			}
		}()

		result := s.Solve(ctx)

		if cfg.Verbose {
			printStatistics(s.Stats())
		}

		if err := ctx.Err(); err != nil && result.Model == nil && !result.Satisfiable {
			// Solve returned because the context was cancelled rather than
			// reaching a definite verdict; report indeterminate, not UNSAT.
			fmt.Println("\ns INDETERMINATE")
			exitCode = exitIndeterminate
			return nil
		}

		if debugMode {
			pp.Println(result)
		}

		if err := writeResult(c.String("result-output-file"), result.Satisfiable, result.Model); err != nil {
			return err
		}

		if result.Satisfiable {
			fmt.Println("\ns SATISFIABLE")
			printModel(result.Model)
			exitCode = exitSAT
		} else {
			fmt.Println("\ns UNSATISFIABLE")
			exitCode = exitUNSAT
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(exitError)
	}
	os.Exit(exitCode)
}
