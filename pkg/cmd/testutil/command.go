// Package testutil runs CLI commands in tests.
package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes command under a test root command and returns what it
// wrote to the root writer.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()
	return RunCommandWithContext(context.Background(), t, command, args...)
}

// RunCommandWithContext executes a command with a custom context
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := &cli.Command{
		Name:      "test",
		Writer:    &out,
		ErrWriter: &errOut,
		Commands:  []*cli.Command{command},
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)

	err := app.Run(ctx, fullArgs)
	return out.String(), err
}

// RunApp executes a root command with args and returns its output.
func RunApp(t *testing.T, app *cli.Command, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(context.Background(), append([]string{app.Name}, args...))
	return out.String(), err
}
