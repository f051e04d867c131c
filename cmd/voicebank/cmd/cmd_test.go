package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/voicebank/pkg/header"
)

func executeCommand(t *testing.T, args ...string) string {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	// rootCmd is shared across tests, so reset any flags a run has set
	// to keep executions independent.
	for _, c := range rootCmd.Commands() {
		c.Flags().Visit(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}

	require.NoError(t, err)
	return buf.String()
}

func TestStampAndPeekCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voice.timeline")

	out := executeCommand(t, "stamp", "--type", "timeline", path)
	assert.Contains(t, out, "Wrote")
	assert.Contains(t, out, "timeline")

	// The stamped file carries a valid header.
	fileType, err := header.PeekType(path)
	require.NoError(t, err)
	assert.Equal(t, header.Timeline, fileType)

	out = executeCommand(t, "peek", path)
	assert.Contains(t, out, "timeline (500)")
}

func TestPeekCommand_FullOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voice.units")
	executeCommand(t, "stamp", "--type", "units", path)

	out := executeCommand(t, "peek", "--full", path)
	assert.Contains(t, out, "magic:   0x4D415259")
	assert.Contains(t, out, "version: 40")
	assert.Contains(t, out, "units (200)")
	assert.Contains(t, out, "valid:   true")
}

func TestPeekCommand_ForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foreign.bin")
	require.NoError(t, os.WriteFile(path, []byte("GIF89a not a voice file"), 0600))

	out := executeCommand(t, "peek", path)
	assert.Contains(t, out, "Error")
}

func TestStampCommand_RejectsUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")

	out := executeCommand(t, "stamp", "--type", "waveform", path)
	assert.Contains(t, out, "Error")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file should be created for an unknown type")
}
