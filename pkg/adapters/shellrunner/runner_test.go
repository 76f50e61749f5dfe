package shellrunner

import (
	"context"
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	runner := New()
	if err := runner.Run(context.Background(), "true"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_CommandFails(t *testing.T) {
	runner := New()
	if err := runner.Run(context.Background(), "exit 3"); err == nil {
		t.Error("expected an error for a failing command")
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	runner := New()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := runner.Run(ctx, "sleep 10")
	if err == nil {
		t.Error("expected an error when the context is cancelled")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("command was not killed promptly, took %v", elapsed)
	}
}
