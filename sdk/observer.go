package sdk

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Observer provides hooks for monitoring SDK operations. Implement
// this interface to log requests, track latencies, or feed your own
// instrumentation. Observer methods should be fast and non-blocking.
//
// Example implementation:
//
//	type CountingObserver struct{ requests int64 }
//
//	func (o *CountingObserver) OnRequestStart(method, url string) {
//	    atomic.AddInt64(&o.requests, 1)
//	}
//
//	func (o *CountingObserver) OnRequestEnd(method, url string, duration time.Duration, err error) {}
//
//	config := sdk.NewConfig(key).WithObserver(&CountingObserver{})
type Observer interface {
	// OnRequestStart is called immediately before an HTTP request is
	// sent. The url includes the querystring.
	OnRequestStart(method, url string)

	// OnRequestEnd is called when an HTTP request completes, with the
	// total duration and the error, if any.
	OnRequestEnd(method, url string, duration time.Duration, err error)
}

// NoopObserver is the default Observer. It does nothing and has zero
// overhead.
type NoopObserver struct{}

// OnRequestStart does nothing
func (n *NoopObserver) OnRequestStart(method, url string) {}

// OnRequestEnd does nothing
func (n *NoopObserver) OnRequestEnd(method, url string, duration time.Duration, err error) {}

// LogObserver logs every request through logrus. It is installed
// automatically when Config.Debug is set and no explicit Observer is
// configured.
type LogObserver struct {
	logger *logrus.Logger
}

// NewLogObserver creates a LogObserver writing to the given logger.
// Passing nil creates a dedicated logger at debug level.
func NewLogObserver(logger *logrus.Logger) *LogObserver {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.DebugLevel)
	}
	return &LogObserver{logger: logger}
}

// OnRequestStart logs the outgoing request
func (o *LogObserver) OnRequestStart(method, url string) {
	o.logger.WithFields(logrus.Fields{
		"method": method,
		"url":    url,
	}).Debug("bestbuy: request start")
}

// OnRequestEnd logs the completed request with its duration
func (o *LogObserver) OnRequestEnd(method, url string, duration time.Duration, err error) {
	entry := o.logger.WithFields(logrus.Fields{
		"method":      method,
		"url":         url,
		"duration_ms": duration.Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Warn("bestbuy: request failed")
		return
	}
	entry.Debug("bestbuy: request complete")
}
