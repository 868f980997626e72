package pipeline

import (
	"context"
	"log/slog"

	"github.com/sitescribe/sitescribe/internal/config"
	"github.com/sitescribe/sitescribe/internal/model"
)

// Run accumulates the state of one scrape as it moves through the
// pipeline: the crawl fills Pages, extraction fills Contents, and the
// report steps fill GeneratedFiles.
type Run struct {
	// Config is the immutable session configuration.
	Config *config.Config

	// Questions are the loaded question strings, empty in dump-only mode.
	Questions []string

	// Pages are the successfully fetched pages, in collection order.
	Pages []*model.Page

	// Contents are the extracted structured contents, one per page.
	Contents []*model.Content

	// Summary is the question-and-answer summary, nil in dump-only mode.
	Summary *model.Summary

	// GeneratedFiles are the paths of report files written so far.
	GeneratedFiles []string
}

// Step defines one phase of a scrape run. Steps execute in sequence,
// each receiving the accumulated run state.
//
// Design decision: We use an interface rather than function types because:
//  1. It allows steps to carry configuration state
//  2. It provides a Name() method for logging and debugging
//  3. Construction (fetchers, generators) stays out of the execution path
type Step interface {
	// Do executes the pipeline step. Per-page problems should be
	// recorded in the run; an error aborts the pipeline.
	Do(ctx context.Context, run *Run) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes scrape steps in order.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline. Steps are added with AddSteps.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{steps: make([]Step, 0)}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddSteps appends steps to the pipeline in execution order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence against the run state.
//
// Cancellation is checked between steps; steps that block (the crawl)
// also honor the context internally. The first step error aborts the
// pipeline.
func (p *Pipeline) Execute(ctx context.Context, run *Run) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled", "step", step.Name(), "reason", ctx.Err())
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, run); err != nil {
			p.logger.Error("step failed", "step", step.Name(), "error", err)
			return err
		}
	}

	return nil
}
