package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/eulath/euler"
	"github.com/katalvlaran/eulath/graphtext"
)

var verbose bool
var inputPath string
var startID string

// Execute is the entry point to running the CLI.
func Execute(version string) {
	if err := newRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the root command; factored out so tests can run it
// with injected args and streams.
func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eulath [adjacency text]",
		Short: "Build a closed tour crossing every edge of an undirected graph exactly once",
		Long: `eulath parses an adjacency-list text ("a:b,c; b:a,c; c:a,b;;"),
verifies that a closed tour over every edge exists, and prints the tour
as a vertex string (e.g. "acba"). Input comes from the positional
argument, --file, or stdin with --file=-.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runTour,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVarP(&inputPath, "file", "f", "", `path to adjacency text file ("-" for stdin)`)
	rootCmd.Flags().StringVarP(&startID, "start", "s", "", "start (and end) vertex of the tour")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return rootCmd
}

func runTour(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	g, err := graphtext.Parse(text)
	if err != nil {
		return err
	}
	log.Debugf("parsed %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

	opts := make([]euler.Option, 0, 3)
	if startID != "" {
		opts = append(opts, euler.WithStart(startID))
	}
	if verbose {
		opts = append(opts,
			euler.WithOnExtend(func(from, to string) { log.Debugf("extend %s→%s", from, to) }),
			euler.WithOnBacktrack(func(id string) { log.Debugf("retire %s", id) }),
		)
	}

	res, err := euler.Circuit(g, opts...)
	if err != nil {
		return err
	}
	log.Debugf("tour complete: start=%s edges=%d", res.Start, res.EdgesUsed)

	fmt.Fprintln(cmd.OutOrStdout(), graphtext.FormatTour(res.Tour))

	return nil
}

// readInput resolves the adjacency text from the positional argument, a
// file, or stdin ("-"). Exactly one source must be provided.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) > 0 && inputPath != "":
		return "", errors.New("eulath: both positional text and --file provided")
	case len(args) > 0:
		return args[0], nil
	case inputPath == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}

		return string(data), nil
	case inputPath != "":
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", err
		}

		return string(data), nil
	default:
		return "", errors.New("eulath: no input: pass adjacency text or --file")
	}
}
