//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Not through the PTY since it exits right away
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "Usage: weighbridge")
	for _, flag := range []string{"--config", "--data-dir", "--log", "--debug", "--version"} {
		require.Contains(t, output, flag, "Help should document %s", flag)
	}
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartInWorkspace()
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the dashboard")

	require.NoError(t, tf.ToggleHelp())
	require.NoError(t, tf.WaitForE(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return contains(plain, "Weighbridge Help") && contains(plain, "print ticket")
	}, 3*time.Second, "Help overlay should list the key bindings"))

	require.NoError(t, tf.SendKeys(KeyEsc))
	require.NoError(t, tf.Quit())
}
