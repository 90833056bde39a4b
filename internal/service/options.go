package service

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Option configures the services
type Option func(*options)

type options struct {
	logger       *slog.Logger
	eventBus     *EventBus
	passwordCost int
}

func defaultOptions() options {
	return options{
		logger:       slog.New(slog.DiscardHandler),
		eventBus:     NewEventBus(),
		passwordCost: bcrypt.DefaultCost,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the service logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEventBus publishes service events on bus
func WithEventBus(bus *EventBus) Option {
	return func(o *options) {
		if bus != nil {
			o.eventBus = bus
		}
	}
}

// WithPasswordCost sets the bcrypt cost used to hash user passwords
func WithPasswordCost(cost int) Option {
	return func(o *options) {
		o.passwordCost = cost
	}
}
