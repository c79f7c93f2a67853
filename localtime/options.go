// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package localtime

import "fmt"

// DefaultSplitThreshold is the default hint given to the step front-end
// for the maximum number of event-bearing steps per segment.
const DefaultSplitThreshold = 12

type config struct {
	splitThreshold int
	stats          *Stats
}

func defaultConfig() config {
	return config{splitThreshold: DefaultSplitThreshold}
}

// Option configures a Processor.
type Option func(*config) error

// WithSplitThreshold overrides the default split-threshold hint. n must be
// non-negative; NewProcessor returns an error if it is not.
func WithSplitThreshold(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("localtime: split threshold must be non-negative, got %d", n)
		}
		c.splitThreshold = n
		return nil
	}
}

// WithStats enables matrix-statistics collection into s.
func WithStats(s *Stats) Option {
	return func(c *config) error {
		c.stats = s
		return nil
	}
}
