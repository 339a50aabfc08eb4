package engine

import "github.com/DarrenJCoxon/educational-adventure-bot/pkg/events"

// Config holds engine dependencies that are not part of the step settings,
// currently only the event sinks notified during a completion call.
type Config struct {
	EventSinks []events.EventSink
}

type Option func(*Config)

func WithSink(sink events.EventSink) Option {
	return func(c *Config) {
		c.EventSinks = append(c.EventSinks, sink)
	}
}

func NewConfig(options ...Option) *Config {
	c := &Config{}
	for _, o := range options {
		o(c)
	}
	return c
}
