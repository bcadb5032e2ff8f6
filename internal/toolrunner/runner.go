package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"reconx/internal/domain"
)

var (
	// ErrNotFound means the binary is not on PATH.
	ErrNotFound = errors.New("tool not found")
	// ErrTimeout means the tool overran its deadline and was killed.
	ErrTimeout = errors.New("tool timed out")
)

const defaultTimeout = 60 * time.Second

// Runner shells out to helper tools with a per-invocation deadline.
type Runner struct {
	Timeout time.Duration
}

func New(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Runner{Timeout: timeout}
}

// Run executes binary with args. Stdout and stderr are captured in full;
// a nonzero exit code is reported in the result, not as an error.
func (r *Runner) Run(ctx context.Context, binary string, args ...string) (domain.ToolResult, error) {
	res := domain.ToolResult{Binary: binary, Args: args}

	if _, err := exec.LookPath(binary); err != nil {
		return res, fmt.Errorf("%w: %s", ErrNotFound, binary)
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return res, fmt.Errorf("%w: %s after %s", ErrTimeout, binary, r.Timeout)
	case ctx.Err() != nil:
		// Parent cancellation kills the process; report it as such rather
		// than as a tool exit.
		return res, fmt.Errorf("run %s: %w", binary, ctx.Err())
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("run %s: %w", binary, err)
	}
	return res, nil
}

var _ domain.Runner = (*Runner)(nil)
