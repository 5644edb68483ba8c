package worker

import (
	"context"
)

// Worker long-running background job, stopped through ctx
type Worker interface {
	Run(ctx context.Context) error
}
