package system

import (
	"context"
)

// RunWithContext executes a cleanup operation with context awareness.
// It manages the lifecycle of the cleanup operation, ensuring proper
// completion or graceful interruption.
//
// The function handles three key scenarios:
//   - Normal completion: The cleanup finishes successfully
//   - Error during cleanup: The error is propagated to the caller
//   - Context cancellation: The cleanup is signaled to stop but allowed to finish gracefully
//
// Returns:
//   - nil if cleanup completes successfully.
//   - original error if cleanup fails.
//   - wrapped error with context cancellation details if interrupted.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast feedback if the operation was cancelled before we started.
	if err := ctx.Err(); err != nil {
		return err
	}

	// The cleanup gets an independent context so interruption can't
	// leave resources in an inconsistent state.
	cleanupCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the cleanup goroutine can exit even if the parent
	// context is cancelled and nobody reads the result immediately.
	done := make(chan error, 1)

	go func() {
		done <- operation(cleanupCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal cleanup to stop, then still wait for it to finish so
		// critical teardown work is never abandoned mid-flight.
		cancel()
		return <-done
	}
}
