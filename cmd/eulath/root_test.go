package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulath/euler"
	"github.com/katalvlaran/eulath/graphtext"
)

// resetFlags restores package-level flag state between runs.
func resetFlags() {
	verbose = false
	inputPath = ""
	startID = ""
}

// runCLI executes the root command with injected args and streams.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	cmd := newRootCmd("test")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	if args == nil {
		// nil would make cobra fall back to os.Args, which carries test flags.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRunTour_PositionalText(t *testing.T) {
	out, err := runCLI(t, "", "a:b,d; b:a,c; c:b,d; d:a,c;;")
	require.NoError(t, err)
	assert.Equal(t, "adcba\n", out)
}

func TestRunTour_StartFlag(t *testing.T) {
	out, err := runCLI(t, "", "--start", "c", "a:b,d; b:a,c; c:b,d; d:a,c;;")
	require.NoError(t, err)
	assert.Equal(t, "cdabc\n", out)
}

func TestRunTour_Stdin(t *testing.T) {
	out, err := runCLI(t, "a:b,b; b:a,a;;", "--file", "-")
	require.NoError(t, err)
	assert.Equal(t, "aba\n", out)
}

func TestRunTour_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("a:b,f; b:a,c,d,e; c:b,d; d:b,c,e,f; e:b,d; f:a,d;;"), 0o644))

	out, err := runCLI(t, "", "--file", path)
	require.NoError(t, err)
	// One line, closed at the default start "a".
	require.True(t, strings.HasSuffix(out, "\n"))
	tour := strings.TrimSuffix(out, "\n")
	assert.Len(t, tour, 9, "8 streets yield 9 junctions")
	assert.Equal(t, byte('a'), tour[0])
	assert.Equal(t, byte('a'), tour[len(tour)-1])
}

func TestRunTour_VerboseStillPrintsTour(t *testing.T) {
	out, err := runCLI(t, "", "-v", "a:a,a;;")
	require.NoError(t, err)
	assert.Equal(t, "aa\n", out)
}

func TestRunTour_InputErrors(t *testing.T) {
	_, err := runCLI(t, "")
	assert.Error(t, err, "no input source")

	_, err = runCLI(t, "", "--file", "graph.txt", "a:;;")
	assert.Error(t, err, "two input sources")

	_, err = runCLI(t, "", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err, "unreadable file")
}

func TestRunTour_DomainErrorsSurface(t *testing.T) {
	_, err := runCLI(t, "", "a:b,b; b:a;;")
	assert.ErrorIs(t, err, graphtext.ErrMalformedText)

	_, err = runCLI(t, "", "a:b; b:a;;")
	assert.ErrorIs(t, err, euler.ErrNotEulerian)

	_, err = runCLI(t, "", "--start", "zz", "a:b,d; b:a,c; c:b,d; d:a,c;;")
	assert.Error(t, err)
}
