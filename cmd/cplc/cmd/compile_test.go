package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/efratelisha/cplc/internal/config"
	"github.com/stretchr/testify/require"
)

func TestValidateArgsNoFileGiven(t *testing.T) {
	_, ok := validateArgs(nil, config.Default())
	require.False(t, ok)
}

func TestValidateArgsTooManyArguments(t *testing.T) {
	_, ok := validateArgs([]string{"a.ou", "b.ou"}, config.Default())
	require.False(t, ok)
}

func TestValidateArgsWrongSuffix(t *testing.T) {
	_, ok := validateArgs([]string{"a.txt"}, config.Default())
	require.False(t, ok)
}

func TestValidateArgsOutputAlreadyExists(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.ou")
	output := filepath.Join(dir, "a.qud")
	require.NoError(t, os.WriteFile(input, []byte("x: int; { x = 1; }"), 0o644))
	require.NoError(t, os.WriteFile(output, []byte("stale"), 0o644))

	_, ok := validateArgs([]string{input}, config.Default())
	require.False(t, ok)
}

func TestValidateArgsInputMissing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "missing.ou")

	_, ok := validateArgs([]string{input}, config.Default())
	require.False(t, ok)
}

func TestValidateArgsAcceptsWellFormedInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.ou")
	require.NoError(t, os.WriteFile(input, []byte("x: int; { x = 1; }"), 0o644))

	got, ok := validateArgs([]string{input}, config.Default())
	require.True(t, ok)
	require.Equal(t, input, got)
}

func TestOutputFileNameHonorsConfiguredSuffixes(t *testing.T) {
	cfg := &config.Config{InputSuffix: ".src", OutputSuffix: ".out"}
	require.Equal(t, "program.out", outputFileName("program.src", cfg))
}
