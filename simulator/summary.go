package simulator

import (
	"context"
	"time"

	"github.com/uber-go/tally"
)

// Summary is the outcome of a run. Every item is attempted, so
// Succeeded + Failed equals Total unless the run was cancelled.
type Summary struct {
	Succeeded int
	Failed    int
	Total     int
}

type recorder struct {
	summary Summary
	success tally.Counter
	failure tally.Counter
}

func newRecorder(scope tally.Scope, total int) *recorder {
	if scope == nil {
		scope = tally.NoopScope
	}
	scope.Gauge("items").Update(float64(total))

	return &recorder{
		summary: Summary{Total: total},
		success: scope.Counter("success"),
		failure: scope.Counter("failure"),
	}
}

func (r *recorder) succeed() {
	r.summary.Succeeded++
	r.success.Inc(1)
}

func (r *recorder) fail() {
	r.summary.Failed++
	r.failure.Inc(1)
}

// sleep pauses for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
