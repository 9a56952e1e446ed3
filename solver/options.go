package solver

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubenet/walker"
)

// Sentinel errors for solving.
var (
	// ErrNilInput is returned for a nil board or puzzle.
	ErrNilInput = errors.New("solver: input is nil")

	// ErrUnknownMethod is returned for an unsupported method.
	ErrUnknownMethod = errors.New("solver: unknown method")

	// ErrMethodsDisagree is returned when the cross-check finds two
	// different portal sets.
	ErrMethodsDisagree = errors.New("solver: affine and color methods disagree")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Option configures a solver run.
type Option func(*Options)

// Options holds the run settings.
type Options struct {
	Method     Method
	CrossCheck bool
	Strict     bool
	Logger     log.FieldLogger
	Walk       []walker.Option

	err error
}

// DefaultOptions returns the affine method with a silent logger.
func DefaultOptions() Options {
	quiet := log.New()
	quiet.SetOutput(io.Discard)

	return Options{
		Method: MethodAffine,
		Logger: quiet,
	}
}

// WithMethod selects the derivation method.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if _, ok := methodNames[m]; !ok {
			o.err = fmt.Errorf("%w: %w %d", ErrOptionViolation, ErrUnknownMethod, int(m))
			return
		}
		o.Method = m
	}
}

// WithCrossCheck derives portals with both cube methods and compares them.
func WithCrossCheck() Option {
	return func(o *Options) { o.CrossCheck = true }
}

// WithStrictFaces rejects partly drawn faces.
func WithStrictFaces() Option {
	return func(o *Options) { o.Strict = true }
}

// WithLogger sets the logger receiving Debug milestones.
func WithLogger(l log.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWalkOptions forwards options to walker.Walk.
func WithWalkOptions(opts ...walker.Option) Option {
	return func(o *Options) { o.Walk = append(o.Walk, opts...) }
}
