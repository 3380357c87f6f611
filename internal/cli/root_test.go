package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coral-mesh/profattr/internal/testutil"
	"github.com/coral-mesh/profattr/pkg/version"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"extract", "attributes", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "profattr version "+version.Version)
	assert.Contains(t, out, "Go version: "+version.GoVersion)
}

func TestExtract_LogLevelFlag(t *testing.T) {
	t.Setenv("PROFATTR_CONFIG", t.TempDir())
	path := testutil.WriteProfile(t, testutil.BuildCPUProfile(t, []testutil.Stack{
		{Frames: []string{"main.work", "main.main"}, Count: 4},
	}), "cpu.pb.gz")

	out, logs, err := execute(t, "--log-level", "debug", "extract", path, "--format", "csv", "--columns", "fqmn,self_count")
	require.NoError(t, err)
	assert.Contains(t, out, "main.work,4\n")
	assert.Contains(t, logs, "Aggregated profile")
	assert.Contains(t, logs, "Extracted attributes")

	_, logs, err = execute(t, "extract", path, "--format", "csv")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestExtract_UnsupportedColumn(t *testing.T) {
	t.Setenv("PROFATTR_CONFIG", t.TempDir())
	path := testutil.WriteProfile(t, testutil.BuildCPUProfile(t, []testutil.Stack{
		{Frames: []string{"main.main"}, Count: 1},
	}), "cpu.pb.gz")

	_, _, err := execute(t, "extract", path, "--columns", "new_self_time")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `attribute "New Self Time" (new_self_time) is not defined for entry`)
}
