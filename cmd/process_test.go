package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with args, returning combined output.
// Flag state is reset so invocations do not leak into each other.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	procBenchmark = ""
	procOutputDir = ""
	procPrecision = -1
	if f := processCmd.Flags(); f != nil {
		for _, name := range []string{"benchmark", "output-dir", "precision"} {
			if fl := f.Lookup(name); fl != nil {
				fl.Changed = false
			}
		}
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleCSV = "Title,MPO_score,norm_docking_score,docking score,Notes\n" +
	"cariprazine,0.5,0.5,-8.0,ref\n" +
	"cariprazine,0.5,0.5,-8.1,ref\n" +
	"cmpd-7,0.9,0.9,-10.0,hit\n" +
	"cmpd-7,0.8,0.8,-10.2,hit\n" +
	"cmpd-9,0.4,0.4,-7.0,weak\n"

func TestProcessWritesAllOutputs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	input := writeInput(t, dir, "export.csv", sampleCSV)

	out, err := runCmd(t, "", "process", input, "--benchmark", "Cariprazine")
	require.NoError(t, err)

	mpoPath := filepath.Join(dir, "Sorted_by_Avg_MPO.csv")
	dockPath := filepath.Join(dir, "Sorted_by_Avg_normDocking.csv")
	filteredPath := filepath.Join(dir, "Above_cariprazine_Compounds.csv")
	for _, p := range []string{mpoPath, dockPath, filteredPath} {
		_, statErr := os.Stat(p)
		assert.NoError(t, statErr, p)
	}

	assert.Contains(t, out, "Processing complete")
	assert.Contains(t, out, "1 unique compounds exceeded Cariprazine on both metrics")

	// MPO output: header order and ranking.
	raw, readErr := os.ReadFile(mpoPath)
	require.NoError(t, readErr)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Equal(t,
		"Title,Avg_MPO,Delta_MPO,MPO_score,Avg_norm_docking,Delta_norm_docking,norm_docking_score,docking score,Notes",
		lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "cmpd-7,"))
	// Singleton passes through last with empty aggregates.
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "cmpd-9,,,"))

	// Filtered output: cmpd-7 pair first, benchmark tail appended.
	raw, readErr = os.ReadFile(filteredPath)
	require.NoError(t, readErr)
	lines = strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Title,Avg_MPO,Avg_norm_docking,norm_docking_score,docking score"))
	assert.True(t, strings.HasPrefix(lines[1], "cmpd-7,"))
	assert.True(t, strings.HasPrefix(lines[3], "cariprazine,"))
	assert.True(t, strings.HasPrefix(lines[4], "cariprazine,"))
}

func TestProcessBenchmarkNotFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	input := writeInput(t, dir, "export.csv", sampleCSV)

	out, err := runCmd(t, "", "process", input, "--benchmark", "zzz")
	require.NoError(t, err)

	assert.Contains(t, out, "Benchmark compound 'zzz' not found")
	// Ranked outputs still produced, filtered output skipped.
	_, statErr := os.Stat(filepath.Join(dir, "Sorted_by_Avg_MPO.csv"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "Sorted_by_Avg_normDocking.csv"))
	assert.NoError(t, statErr)
	matches, _ := filepath.Glob(filepath.Join(dir, "Above_*"))
	assert.Empty(t, matches)
}

func TestProcessPromptsForMissingInputs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	input := writeInput(t, dir, "export.csv", sampleCSV)

	stdin := "\"" + input + "\"\ncariprazine\n"
	out, err := runCmd(t, stdin, "process")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the full path to the input CSV file:")
	assert.Contains(t, out, "Enter the benchmark compound name")
	assert.Contains(t, out, "Processing complete")
}

func TestProcessMissingColumns(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	input := writeInput(t, dir, "bad.csv", "Title,Notes\na,b\n")

	_, err := runCmd(t, "", "process", input, "--benchmark", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "MPO_score")

	matches, _ := filepath.Glob(filepath.Join(dir, "Sorted_*"))
	assert.Empty(t, matches)
}

func TestValidateCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	good := writeInput(t, dir, "good.csv", sampleCSV)

	out, err := runCmd(t, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "schema OK")

	bad := writeInput(t, dir, "bad.csv", "Title\nx\n")
	_, err = runCmd(t, "", "validate", bad)
	require.Error(t, err)
}
