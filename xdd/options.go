// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"io"
	"log"
)

// config holds the values of the different tunable parameters of a Manager.
type config struct {
	cachesize int
	logger    *log.Logger
}

func defaultConfig() config {
	return config{
		cachesize: defaultCachesize,
		logger:    log.New(io.Discard, "", 0),
	}
}

// Option is a configuration option for NewManager.
type Option func(*config)

// WithCachesize sets the maximum number of entries an operator
// memoization cache holds before it is flushed and starts over. The
// default is 10 000.
func WithCachesize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// WithLogger sets the logger used for debug/progress output. By default a
// Manager is silent.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
