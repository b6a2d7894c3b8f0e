package strategy

import (
	"time"

	"github.com/arloliu/rota/internal/shuffle"
)

// DefaultRecentWindow is the number of most recent history entries Tiered
// checks before falling back.
const DefaultRecentWindow = 2

// Option configures a strategy.
type Option func(*options)

type options struct {
	recentWindow int
	src          shuffle.Source
	now          func() time.Time
}

func newOptions(opts []Option) options {
	o := options{
		recentWindow: DefaultRecentWindow,
		src:          shuffle.Global(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRecentWindow sets how many of a student's most recent history entries
// must not contain a job for a tier-1 pick.
//
// Values below 1 are ignored.
//
// Parameters:
//   - n: Window size (default: 2)
//
// Returns:
//   - Option: Configuration option
func WithRecentWindow(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.recentWindow = n
		}
	}
}

// WithRand sets the random source used for permutations.
//
// Inject a seeded source for reproducible runs. A source shared between
// goroutines must be safe for concurrent use (see shuffle.Locked).
//
// Parameters:
//   - src: Random source, e.g. rand.New(rand.NewPCG(1, 2)); nil is ignored
//
// Returns:
//   - Option: Configuration option
func WithRand(src shuffle.Source) Option {
	return func(o *options) {
		if src != nil {
			o.src = src
		}
	}
}

// WithClock sets the clock used for the assignment timestamp.
//
// Parameters:
//   - now: Clock function; nil is ignored
//
// Returns:
//   - Option: Configuration option
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
