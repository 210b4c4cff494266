package engine

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/recordval"
)

// MessageSource supplies message templates for failed directives, keyed by
// directive name. pkg/messages catalogs satisfy it; hosts may plug in their
// own translation layer.
type MessageSource interface {
	Lookup(name string) (string, bool)
}

// Engine evaluates resolved rules against attribute data. It is stateless
// across calls and safe for concurrent use once constructed.
type Engine struct {
	messages  MessageSource
	attrNames map[string]string
	overrides map[string]string
	bail      bool
}

// Option configures engine construction.
type Option func(*Engine)

// WithMessages sets the message catalog used to render failures.
func WithMessages(src MessageSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.messages = src
		}
	}
}

// WithAttributeNames maps attribute keys to display names used in messages,
// e.g. "email" -> "email address".
func WithAttributeNames(names map[string]string) Option {
	return func(e *Engine) {
		if len(names) > 0 {
			maps.Copy(e.attrNames, names)
		}
	}
}

// WithMessageOverrides sets per-attribute message templates keyed as
// "attribute.directive", winning over catalog and default templates.
func WithMessageOverrides(overrides map[string]string) Option {
	return func(e *Engine) {
		if len(overrides) > 0 {
			maps.Copy(e.overrides, overrides)
		}
	}
}

// WithBailOnFirst stops evaluation at the first failing attribute instead of
// collecting every failure.
func WithBailOnFirst() Option {
	return func(e *Engine) {
		e.bail = true
	}
}

// New constructs an Engine. Without options it renders built-in English
// messages and reports every failure.
func New(opts ...Option) *Engine {
	e := &Engine{
		attrNames: make(map[string]string),
		overrides: make(map[string]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate implements recordval.Validator. Attributes are evaluated in
// sorted order so failure ordering is deterministic.
func (e *Engine) Validate(ctx context.Context, data map[string]any, rules recordval.Rules) error {
	var errs recordval.ValidationErrors

	for _, attr := range slices.Sorted(maps.Keys(rules)) {
		value := data[attr]
		failedBefore := len(errs)

		for _, d := range rules[attr] {
			if d.Check == nil || d.Check(ctx, value) {
				continue
			}
			errs.Add(recordval.ValidationError{
				Field:   attr,
				Rule:    d.Name,
				Message: e.message(attr, d),
				Params:  d.Params,
			})
		}

		if e.bail && len(errs) > failedBefore {
			break
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (e *Engine) message(attr string, d recordval.Directive) string {
	tmpl, ok := e.overrides[attr+"."+d.Name]
	if !ok && e.messages != nil {
		tmpl, ok = e.messages.Lookup(d.Name)
	}
	if !ok {
		tmpl, ok = defaultMessages[d.Name]
	}
	if !ok {
		tmpl = "is invalid"
	}

	params := map[string]any{"field": e.displayName(attr)}
	maps.Copy(params, d.Params)
	return Render(tmpl, params)
}

func (e *Engine) displayName(attr string) string {
	if name, ok := e.attrNames[attr]; ok {
		return name
	}
	return attr
}

// Render interpolates {key} placeholders in tmpl from params. Unknown
// placeholders are left intact so broken templates remain diagnosable.
func Render(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	for key, value := range params {
		tmpl = strings.ReplaceAll(tmpl, "{"+key+"}", fmt.Sprint(value))
	}
	return tmpl
}

// defaultMessages covers the built-in directives when no catalog is set.
var defaultMessages = map[string]string{
	"required":     "field is required",
	"min_len":      "must be at least {min} characters long",
	"max_len":      "must be at most {max} characters long",
	"len_between":  "must be between {min} and {max} characters long",
	"matches":      "has an invalid format",
	"one_of":       "must be one of: {options}",
	"email":        "must be a valid email address",
	"min_num":      "must be at least {min}",
	"max_num":      "must be at most {max}",
	"between":      "must be between {min} and {max}",
	"uuid":         "must be a valid UUID",
	"uuid_not_nil": "UUID cannot be nil",
	"unique":       "has already been taken",
}
