package client

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/yourusername/winswitch/internal/logging"
)

// Runner runs an external command and returns its standard output
type Runner func(ctx context.Context, name string, args ...string) (string, error)

// ExecRunner runs commands with os/exec, bounding each one by timeout
func ExecRunner(timeout time.Duration) Runner {
	return func(ctx context.Context, name string, args ...string) (string, error) {
		if _, ok := ctx.Deadline(); !ok && timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		var stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, name, args...)
		cmd.Stderr = &stderr

		out, err := cmd.Output()
		if err != nil {
			return "", fmt.Errorf("%s %s: %w (stderr: %s)", name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
		}
		return string(out), nil
	}
}

// output runs a read-only command and cleans up its output. A failing
// command is logged and yields "" so callers see "no data" instead of an
// error.
func output(ctx context.Context, run Runner, name string, args ...string) string {
	command := strings.TrimSpace(name + " " + strings.Join(args, " "))
	logging.Debug().Str("command", command).Msg("get command output")

	out, err := run(ctx, name, args...)
	if err != nil {
		logging.Debug().Err(err).Str("command", command).Msg("command failed")
		return ""
	}

	cleaned := strings.TrimRight(out, "\r\n")
	logging.Debug().Str("command", command).Int("bytes", len(cleaned)).Msg("command output")
	return cleaned
}
