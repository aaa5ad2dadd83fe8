package schematic

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Defaults for Analyze / SumPartNumbers and for gear selection.
const (
	// DefaultWorkers analyzes rows sequentially.
	DefaultWorkers = 1
	// DefaultGearMarker is the symbol a gear is drawn with.
	DefaultGearMarker = '*'
	// DefaultGearSize is the exact number of adjacent tokens a gear needs.
	DefaultGearSize = 2
)

// Option configures Analyze and SumPartNumbers.
type Option func(*options)

type options struct {
	ctx     context.Context
	workers int
	log     *zap.Logger
}

func gatherOptions(opts []Option) options {
	o := options{
		ctx:     context.Background(),
		workers: DefaultWorkers,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets a context checked before each row. Cancelling it aborts
// the scan with ctx.Err().
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("schematic: WithContext(nil)")
	}
	return func(o *options) { o.ctx = ctx }
}

// WithWorkers sets how many rows may be scanned concurrently. n must be >= 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("schematic: WithWorkers(%d): must be >= 1", n))
	}
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger used for per-row debug output.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.log = l
	}
}

// GearOption configures gear selection in Gears and GearRatioSum.
type GearOption func(*gearOptions)

type gearOptions struct {
	match func(rune) bool
	size  int
}

func gatherGearOptions(opts []GearOption) gearOptions {
	o := gearOptions{
		match: func(r rune) bool { return r == DefaultGearMarker },
		size:  DefaultGearSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMarker selects gears drawn with the symbol r.
func WithMarker(r rune) GearOption {
	if !IsSymbol(r) {
		panic(fmt.Sprintf("schematic: WithMarker(%q): not a symbol", r))
	}
	return func(o *gearOptions) {
		o.match = func(c rune) bool { return c == r }
	}
}

// WithMarkerFunc selects gears whose symbol satisfies match.
func WithMarkerFunc(match func(rune) bool) GearOption {
	if match == nil {
		panic("schematic: WithMarkerFunc(nil)")
	}
	return func(o *gearOptions) { o.match = match }
}

// WithGroupSize sets the exact number of adjacent tokens a gear needs.
// n must be >= 1.
func WithGroupSize(n int) GearOption {
	if n < 1 {
		panic(fmt.Sprintf("schematic: WithGroupSize(%d): must be >= 1", n))
	}
	return func(o *gearOptions) { o.size = n }
}
