package watcher

import (
	"context"
	"time"

	"github.com/skillscope/skillscope/pkg/logging"
)

// Debouncer batches rapid file system events to avoid re-analyzing on
// every keystroke
type Debouncer struct {
	input       <-chan ChangeEvent
	output      chan ChangeEvent
	quietPeriod time.Duration
	maxWait     time.Duration
}

// NewDebouncer creates a new event debouncer
func NewDebouncer(input <-chan ChangeEvent, quietPeriod, maxWait time.Duration) *Debouncer {
	return &Debouncer{
		input:       input,
		output:      make(chan ChangeEvent, 10),
		quietPeriod: quietPeriod,
		maxWait:     maxWait,
	}
}

// Events returns the debounced event channel
func (d *Debouncer) Events() <-chan ChangeEvent {
	return d.output
}

// Start begins processing events with debouncing
func (d *Debouncer) Start(ctx context.Context) {
	go d.run(ctx)
}

func (d *Debouncer) run(ctx context.Context) {
	var (
		quiet       *time.Timer
		maxWait     *time.Timer
		quietC      <-chan time.Time
		maxWaitC    <-chan time.Time
		accumulated []string
	)

	flush := func() {
		if len(accumulated) == 0 {
			return
		}
		logging.Debug("flushing accumulated change events", "count", len(accumulated))
		d.output <- ChangeEvent{Paths: accumulated, Timestamp: time.Now()}
		accumulated = nil

		if quiet != nil {
			quiet.Stop()
			quietC = nil
		}
		if maxWait != nil {
			maxWait.Stop()
			maxWaitC = nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case event, ok := <-d.input:
			if !ok {
				flush()
				return
			}
			accumulated = append(accumulated, event.Paths...)

			// Restart the quiet-period timer on every event
			if quiet != nil {
				quiet.Stop()
			}
			quiet = time.NewTimer(d.quietPeriod)
			quietC = quiet.C

			// The max-wait timer runs from the first event of a batch
			if maxWaitC == nil {
				maxWait = time.NewTimer(d.maxWait)
				maxWaitC = maxWait.C
			}
		case <-quietC:
			flush()
		case <-maxWaitC:
			flush()
		}
	}
}
