package toolrunner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"reconx/internal/toolrunner"
)

func TestRun_CapturesStdout(t *testing.T) {
	r := toolrunner.New(5 * time.Second)
	res, err := r.Run(context.Background(), "echo", "hello", "world")
	if err != nil {
		t.Fatalf("run echo: %v", err)
	}
	if res.ExitCode != 0 {
		t.Fatalf("exit code %d, want 0", res.ExitCode)
	}
	if res.Stdout != "hello world\n" {
		t.Fatalf("stdout %q, want %q", res.Stdout, "hello world\n")
	}
	if res.Binary != "echo" || len(res.Args) != 2 {
		t.Fatalf("result metadata: %+v", res)
	}
}

func TestRun_MissingBinary(t *testing.T) {
	r := toolrunner.New(time.Second)
	_, err := r.Run(context.Background(), "reconx-no-such-binary-xyzzy")
	if !errors.Is(err, toolrunner.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRun_NonzeroExitIsNotAnError(t *testing.T) {
	r := toolrunner.New(5 * time.Second)
	res, err := r.Run(context.Background(), "false")
	if err != nil {
		t.Fatalf("run false: %v", err)
	}
	if res.ExitCode == 0 {
		t.Fatal("want nonzero exit code from false")
	}
}

func TestRun_ParentCancellation(t *testing.T) {
	r := toolrunner.New(30 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()
	_, err := r.Run(ctx, "sleep", "5")
	if err == nil {
		t.Fatal("cancelled run reported as clean tool result")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRun_Timeout(t *testing.T) {
	r := toolrunner.New(100 * time.Millisecond)
	_, err := r.Run(context.Background(), "sleep", "5")
	if !errors.Is(err, toolrunner.ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
}
