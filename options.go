package mpsc

import (
	"io"

	"github.com/sirupsen/logrus"
)

type config struct {
	name   string
	logger logrus.FieldLogger
}

// Option configures a channel created by [New].
type Option func(*config)

func defaultConfig() config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return config{
		name:   "mpsc",
		logger: l,
	}
}

// WithName sets the channel name used in log fields and metric labels.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger that receives lifecycle events: the channel
// closing, the receiver being released and senders collected without Close.
// Individual messages are never logged.
//
// By default events are discarded. WithLogger panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l == nil {
			panic("mpsc: nil logger")
		}
		c.logger = l
	}
}
