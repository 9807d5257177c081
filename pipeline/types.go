// Package pipeline wires scomplex, oracle, and pinch into the full
// simplification procedure of spec.md §4.4: nerve-reduce to a fixed
// point, then bounded sweeps of pinch, optionally followed by a
// contractible-subcomplex extraction and a minimize-pair step.
package pipeline

import (
	"errors"

	"github.com/kaya-arro/sc-simplify/progress"
)

var (
	// ErrBadMaxPinchLoops carries the message WithMaxPinchLoops panics
	// with for a negative bound.
	ErrBadMaxPinchLoops = errors.New("pipeline: MaxPinchLoops must be non-negative")
)

// Options configures Run.
//
//   - SkipNerve     – skip the initial nerve-reduction phase.
//   - MaxPinchLoops – upper bound on pinch sweeps; 0, the Options
//     default, disables pinching entirely. cmd/sc-simplify passes its
//     `--max-pinch-loops N` flag here (spec.md §6), which defaults to 2.
//     A sweep that makes no pinches also stops the loop early, so this is
//     only ever a ceiling, never a target.
//   - NoPair        – skip contractible-subcomplex extraction and
//     minimize-pair entirely; Run returns only the reduced complex.
//   - SkipMinimizePair – extract the contractible subcomplex but skip
//     shrinking the second half of the pair against it.
//   - Progress      – sink notified of phase transitions; defaults to a
//     no-op sink.
//   - Cancel        – closed to request cooperative cancellation between
//     sweeps and between nerve-reduction steps.
type Options struct {
	SkipNerve         bool
	MaxPinchLoops     int
	NoPair            bool
	SkipMinimizePair  bool
	Progress          progress.Sink
	Cancel            <-chan struct{}
}

// Option is a functional option for Run.
type Option func(*Options)

// WithSkipNerve disables the initial nerve-reduction phase.
func WithSkipNerve() Option {
	return func(o *Options) { o.SkipNerve = true }
}

// WithMaxPinchLoops bounds the number of pinch sweeps. max must be
// non-negative; 0 (the default) disables pinching entirely.
func WithMaxPinchLoops(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxPinchLoops.Error())
		}
		o.MaxPinchLoops = max
	}
}

// WithNoPair disables contractible-subcomplex extraction and
// minimize-pair; Run returns only the reduced complex.
func WithNoPair() Option {
	return func(o *Options) { o.NoPair = true }
}

// WithSkipMinimizePair extracts the contractible subcomplex but skips
// shrinking the pair's second half against it.
func WithSkipMinimizePair() Option {
	return func(o *Options) { o.SkipMinimizePair = true }
}

// WithProgress sets the sink notified of phase transitions.
func WithProgress(sink progress.Sink) Option {
	return func(o *Options) { o.Progress = sink }
}

// WithCancel sets the cancellation channel polled between sweeps.
func WithCancel(cancel <-chan struct{}) Option {
	return func(o *Options) { o.Cancel = cancel }
}

func defaultOptions() *Options {
	return &Options{Progress: progress.NoOp{}}
}
