package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/schematic/config"
	"github.com/katalvlaran/schematic/textgrid"
)

// execute runs a fresh root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRoot_BundledInput(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "The solution is 4361.\n", out)

	out, err = execute(t, "--part", "2")
	require.NoError(t, err)
	assert.Equal(t, "The solution is 467835.\n", out)
}

func TestRoot_InputFile(t *testing.T) {
	path := writeFile(t, "input.txt", "*920\n")
	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "The solution is 920.\n", out)

	out, err = execute(t, "--workers", "3", path)
	require.NoError(t, err)
	assert.Equal(t, "The solution is 920.\n", out)
}

func TestRoot_GearFlags(t *testing.T) {
	out, err := execute(t, "--part", "2", "--marker", "#", "--group-size", "1")
	require.NoError(t, err)
	assert.Equal(t, "The solution is 633.\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "schematic.yaml", "part: 2\ngear:\n  group_size: 1\n")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "The solution is 617.\n", out.String())

	// flags win over the file
	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "--part", "1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "The solution is 4361.\n", out.String())
}

func TestRoot_Errors(t *testing.T) {
	ragged := writeFile(t, "ragged.txt", "12*\n3\n")
	badLevel := writeFile(t, "level.yaml", "logging:\n  level: loud\n")

	cases := []struct {
		name string
		args []string
		is   error
		msg  string
	}{
		{"Ragged", []string{ragged}, textgrid.ErrNonRectangular, ""},
		{"MissingFile", []string{filepath.Join(t.TempDir(), "missing.txt")}, os.ErrNotExist, ""},
		{"BadPart", []string{"--part", "3"}, config.ErrInvalidPart, ""},
		{"BadMarker", []string{"--marker", "5"}, config.ErrInvalidMarker, ""},
		{"BadLogLevel", []string{"--config", badLevel}, config.ErrInvalidLogLevel, ""},
		{"TooManyArgs", []string{"a", "b"}, nil, "accepts at most 1 arg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Empty(t, out, "no partial output on failure")
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestSolve(t *testing.T) {
	cfg := config.DefaultConfig()
	got, err := solve(bundledInput, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, uint64(4361), got)

	cfg.Part = 2
	got, err = solve(bundledInput, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, uint64(467835), got)

	got, err = solve("467..114\n..35..63", config.DefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runVersion(cmd, []string{}))

	output := buf.String()
	assert.Contains(t, output, "schematic dev")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "OS/Arch:")
}

func TestVersion_IgnoresInvalidConfig(t *testing.T) {
	cfgPath := writeFile(t, "bad.yaml", "part: 3\n")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "schematic dev")

	// the same file still fails a solve
	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath})
	assert.ErrorIs(t, cmd.Execute(), config.ErrInvalidPart)
}
