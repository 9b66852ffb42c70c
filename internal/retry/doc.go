// Package retry re-runs filesystem operations that fail with transient errors.
//
// On desktop systems a freshly written file is often held open for a moment
// by antivirus scanners, search indexers or sync clients. Renames and moves
// in that window fail with "busy" or sharing-violation errors that succeed
// a few milliseconds later.
//
// # Example Usage
//
//	executor := retry.NewExecutor(
//	    retry.NewFilesystemErrorClassifier(),
//	    retry.NewExponentialBackoff(3),
//	)
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return os.Rename(src, dst)
//	})
//
// # Thread Safety
//
// ExponentialBackoff and FilesystemErrorClassifier are immutable after
// construction. Executor.WithOnRetry returns a copy, so one Executor can be
// shared while each caller installs its own callback.
package retry
