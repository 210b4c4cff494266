package observer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/recordval"
)

// Observer triggers validation on record lifecycle events.
type Observer struct {
	validator recordval.Validator
	log       *slog.Logger
	cfg       Config
}

// Option configures observer construction.
type Option func(*Observer)

// WithLogger sets the logger used for validation outcomes. Without it the
// observer stays silent.
func WithLogger(log *slog.Logger) Option {
	return func(o *Observer) {
		if log != nil {
			o.log = log
		}
	}
}

// WithConfig applies an environment-driven config (see LoadConfig).
func WithConfig(cfg Config) Option {
	return func(o *Observer) {
		o.cfg = cfg
	}
}

// New constructs an Observer validating with v.
func New(v recordval.Validator, opts ...Option) (*Observer, error) {
	if v == nil {
		return nil, ErrNilValidator
	}

	o := &Observer{
		validator: v,
		cfg:       Config{Enabled: true, LogFailures: true},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// MustNew is like New but panics on misconfiguration, for wiring done at
// startup where failing fast is preferable.
func MustNew(v recordval.Validator, opts ...Option) *Observer {
	o, err := New(v, opts...)
	if err != nil {
		panic(fmt.Sprintf("observer: %v", err))
	}
	return o
}

// Register subscribes validation hooks for the creating and updating events.
func (o *Observer) Register(d Dispatcher) {
	d.Subscribe(EventCreating, o.Hook(recordval.OpCreate))
	d.Subscribe(EventUpdating, o.Hook(recordval.OpUpdate))
}

// Hook builds the validation hook for one operation. Exposed so hosts with
// bespoke event plumbing can attach hooks without a Dispatcher.
func (o *Observer) Hook(op recordval.Operation) Hook {
	return func(ctx context.Context, rec any) error {
		if !o.cfg.Enabled {
			return nil
		}

		r, ok := rec.(recordval.Record)
		if !ok {
			return nil
		}
		if !recordval.AutoEnabled(r) {
			return nil
		}

		if err := recordval.Validate(ctx, o.validator, r, op); err != nil {
			o.logFailure(ctx, op, err)
			return err
		}
		return nil
	}
}

func (o *Observer) logFailure(ctx context.Context, op recordval.Operation, err error) {
	if o.log == nil || !o.cfg.LogFailures {
		return
	}

	verrs := recordval.AsValidationErrors(err)
	if verrs == nil {
		o.log.ErrorContext(ctx, "validation infrastructure failure",
			slog.String("operation", string(op)),
			slog.String("error", err.Error()),
		)
		return
	}

	// Field names only: attribute values may be sensitive.
	o.log.WarnContext(ctx, "record validation failed",
		slog.String("operation", string(op)),
		slog.Any("fields", verrs.Fields()),
	)
}
