package workers

import "context"

// Worker is a long-running background task. Run blocks until the worker
// finishes or ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
