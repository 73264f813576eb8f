// Command itinera plans minimum-distance multi-stop routes over a flight
// network, either as a one-shot CLI or as an HTTP service.
//
// One-shot:
//
//	itinera --data flights.json --start LAX --targets SFO,DEN,PHX
//
// Service:
//
//	itinera --data flights.json --serve :8080
//
// Environment defaults may be supplied via ITINERA_DATA (comma-separated
// file list) and ITINERA_ADDR, optionally loaded from an env file with
// --env-file.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aerovia/itinera/flightdata"
	"github.com/aerovia/itinera/search"
	"github.com/aerovia/itinera/server"
)

var (
	dataFiles     []string
	start         string
	targets       []string
	maxIterations int
	timeLimit     time.Duration
	serveAddr     string
	envFile       string
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "itinera",
		Short:        "Plan a minimum-distance route visiting a set of airports",
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringSliceVar(&dataFiles, "data", nil, "flight data JSON files")
	rootCmd.Flags().StringVar(&start, "start", "", "start airport code (e.g. LAX)")
	rootCmd.Flags().StringSliceVar(&targets, "targets", nil, "airport codes to visit")
	rootCmd.Flags().IntVar(&maxIterations, "max-iterations", search.DefaultMaxIterations, "search iteration budget")
	rootCmd.Flags().DurationVar(&timeLimit, "time-limit", search.DefaultTimeLimit, "search time budget")
	rootCmd.Flags().StringVar(&serveAddr, "serve", "", "serve HTTP on this address instead of planning once")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "load environment defaults from this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := rootCmd.Execute(); err != nil {
		if isInputError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// isInputError reports whether err is a rejected-input condition, which
// exits with the CLI's historical code 2.
func isInputError(err error) bool {
	return errors.Is(err, search.ErrNodeNotFound) ||
		errors.Is(err, search.ErrTooManyTargets) ||
		errors.Is(err, errNoStart)
}

var errNoStart = errors.New("--start and --targets are required")

func run(_ *cobra.Command, _ []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	}

	files := dataFiles
	if len(files) == 0 {
		if env := os.Getenv("ITINERA_DATA"); env != "" {
			files = strings.Split(env, ",")
		}
	}
	g := flightdata.LoadGraph(files...)
	if g.NodeCount() == 0 {
		log.Warn("flight graph is empty; check --data / ITINERA_DATA")
	}

	if serveAddr == "" {
		if env := os.Getenv("ITINERA_ADDR"); env != "" && start == "" {
			serveAddr = env
		}
	}
	if serveAddr != "" {
		log.Infof("serving itinerary planner on %s over %d airports", serveAddr, g.NodeCount())
		return http.ListenAndServe(serveAddr, server.New(g))
	}

	if start == "" || len(targets) == 0 {
		return errNoStart
	}

	res, err := search.Solve(g, start, targets,
		search.WithMaxIterations(maxIterations),
		search.WithTimeLimit(timeLimit),
	)
	if err != nil {
		return err
	}
	if !res.Found {
		log.Debugf("search stopped: %s after %d iterations", res.Reason, res.Iterations)
		fmt.Println("No itinerary found (iteration/time limit or disconnected network).")
		return nil
	}

	legs, total, err := search.Reconstruct(g, res.Path)
	if err != nil {
		return err
	}

	fmt.Println("Found itinerary:")
	fmt.Println(" " + strings.Join(res.Path, " -> "))
	for _, leg := range legs {
		fmt.Printf("  %s -> %s  %.1f\n", leg.From, leg.To, leg.Weight)
	}
	fmt.Printf("Total distance: %.1f\n", total)

	return nil
}
