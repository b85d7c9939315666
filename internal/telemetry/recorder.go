// Package telemetry records every dispatched command line and logs handler results.
package telemetry

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
)

// Recorder writes dispatched lines to the history store.
// It is safe for concurrent use when the underlying store is.
type Recorder struct {
	history domain.HistoryStore
	logger  domain.Logger
	now     func() time.Time
}

// NewRecorder creates a Recorder. A nil history store only logs.
func NewRecorder(history domain.HistoryStore, logger domain.Logger) *Recorder {
	return &Recorder{history: history, logger: logger, now: time.Now}
}

// Consumer returns a result consumer for the dispatcher.
// It logs each handler invocation at debug level.
func (r *Recorder) Consumer() dispatchers.ResultConsumer {
	return func(ctx *dispatchers.Context, success bool, result int) {
		r.logger.Debug("handler %q as %s: success=%t result=%d",
			commandText(ctx), ctx.Source().Name(), success, result)
	}
}

// Dispatch executes line against d and records the outcome.
// Blank lines are neither executed nor recorded.
func (r *Recorder) Dispatch(d *dispatchers.Dispatcher, line string, src dispatchers.Source) (int, error) {
	if strings.TrimSpace(line) == "" {
		return 0, nil
	}

	start := r.now()
	result, err := d.Execute(line, src)
	elapsed := r.now().Sub(start)

	outcome := Classify(err)
	entry := domain.HistoryEntry{
		ID:      uuid.New(),
		Line:    line,
		Source:  src.Name(),
		Success: err == nil,
		Result:  result,
		At:      start,
	}
	if err != nil {
		entry.Error = err.Error()
		r.logger.Warn("dispatch %q as %s: %s: %v", line, src.Name(), outcome, err)
	} else {
		r.logger.Info("dispatch %q as %s: result=%d in %s", line, src.Name(), result, elapsed)
	}

	if r.history != nil {
		if recErr := r.history.Record(entry); recErr != nil {
			r.logger.Error("history: record %q: %v", line, recErr)
		}
	}

	return result, err
}

func commandText(ctx *dispatchers.Context) string {
	rng := ctx.Range()
	if rng.IsEmpty() {
		return ""
	}
	return rng.Get(ctx.Input())
}
