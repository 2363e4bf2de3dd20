// pkg/usecase/bestmatch/engine.go

package bestmatch

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/damianoneill/bestmatch/pkg/domain/batch"
	domainhttp "github.com/damianoneill/bestmatch/pkg/domain/http"
	domainlog "github.com/damianoneill/bestmatch/pkg/domain/logging"
	domainmetrics "github.com/damianoneill/bestmatch/pkg/domain/metrics"
	"github.com/damianoneill/bestmatch/pkg/domain/pattern"
	domaintracing "github.com/damianoneill/bestmatch/pkg/domain/tracing"
)

// TracerName names the tracer the engine starts its spans with.
const TracerName = "github.com/damianoneill/bestmatch/pkg/usecase/bestmatch"

var _ domainhttp.BatchRunner = (*Engine)(nil)

// Engine runs batches: decode, rank, match, encode. It holds no state
// between runs, so one Engine serves concurrent callers.
type Engine struct {
	codecs    batch.Factory
	codecOpts []batch.Option
	logger    domainlog.Logger
	tracer    trace.Tracer
	metrics   domainmetrics.Collector
}

// EngineDeps are the collaborators of an Engine. Tracer may be nil.
type EngineDeps struct {
	Codecs  batch.Factory
	Logger  domainlog.Logger
	Tracer  trace.Tracer
	Metrics domainmetrics.Collector
}

// NewEngine creates an engine. codecOpts are applied to every run before
// the per-run options.
func NewEngine(deps EngineDeps, codecOpts ...batch.Option) (*Engine, error) {
	switch {
	case deps.Codecs == nil:
		return nil, fmt.Errorf("codec factory is required")
	case deps.Logger == nil:
		return nil, fmt.Errorf("logger is required")
	case deps.Metrics == nil:
		return nil, fmt.Errorf("metrics collector is required")
	}

	tracer := deps.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(TracerName)
	}

	return &Engine{
		codecs:    deps.Codecs,
		codecOpts: codecOpts,
		logger:    deps.Logger,
		tracer:    tracer,
		metrics:   deps.Metrics,
	}, nil
}

// Run reads one batch from in and writes one line per path to out: the
// best matching pattern or batch.NoMatch. Nothing is written when the
// input is invalid.
func (e *Engine) Run(ctx context.Context, in io.Reader, out io.Writer, opts ...batch.Option) error {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, domaintracing.SpanBatch)
	defer span.End()

	logger := e.logger.WithContext(ctx)

	stats, err := e.run(ctx, in, out, opts)
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.metrics.ObserveBatch(domainmetrics.OutcomeError, 0, duration)
		logger.WarnWith("Batch rejected", domainlog.Fields{
			"error":       err.Error(),
			"input_error": batch.IsInputError(err),
			"duration":    duration.String(),
		})
		return err
	}

	span.SetAttributes(
		attribute.Int(domaintracing.AttrPatterns, stats.patterns),
		attribute.Int(domaintracing.AttrPaths, stats.paths),
		attribute.Int(domaintracing.AttrMatched, stats.matched),
	)
	e.metrics.ObserveBatch(domainmetrics.OutcomeOK, stats.patterns, duration)
	logger.InfoWith("Batch processed", domainlog.Fields{
		"patterns":  stats.patterns,
		"paths":     stats.paths,
		"matched":   stats.matched,
		"unmatched": stats.paths - stats.matched,
		"duration":  duration.String(),
	})
	return nil
}

type runStats struct {
	patterns int
	paths    int
	matched  int
}

func (e *Engine) run(ctx context.Context, in io.Reader, out io.Writer, opts []batch.Option) (runStats, error) {
	var stats runStats

	codecOpts := append(slices.Clone(e.codecOpts), opts...)
	dec, err := e.codecs.NewDecoder(codecOpts...)
	if err != nil {
		return stats, fmt.Errorf("creating decoder: %w", err)
	}
	enc, err := e.codecs.NewEncoder(codecOpts...)
	if err != nil {
		return stats, fmt.Errorf("creating encoder: %w", err)
	}

	b, err := e.parse(ctx, dec, in)
	if err != nil {
		return stats, err
	}
	stats.patterns = len(b.Patterns)
	stats.paths = len(b.Paths)

	ranked := e.rank(ctx, b.Patterns)
	results := e.match(ctx, ranked, b.Paths)
	for _, res := range results {
		if res.Matched {
			stats.matched++
		}
	}

	if err := e.encode(ctx, enc, out, results); err != nil {
		return stats, err
	}
	return stats, nil
}

func (e *Engine) parse(ctx context.Context, dec batch.Decoder, in io.Reader) (batch.Batch, error) {
	_, span := e.tracer.Start(ctx, domaintracing.SpanParse)
	defer span.End()

	b, err := dec.Decode(in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return batch.Batch{}, err
	}
	return b, nil
}

func (e *Engine) rank(ctx context.Context, raw []string) *pattern.Ranked {
	_, span := e.tracer.Start(ctx, domaintracing.SpanRank)
	defer span.End()

	ranked := pattern.NewRanked(pattern.ParseAll(raw))
	span.SetAttributes(attribute.Int(domaintracing.AttrPatterns, ranked.Len()))
	return ranked
}

func (e *Engine) match(ctx context.Context, ranked *pattern.Ranked, raw []string) []pattern.Result {
	ctx, span := e.tracer.Start(ctx, domaintracing.SpanMatch)
	defer span.End()

	logger := e.logger.WithContext(ctx)
	results := ranked.MatchAll(pattern.ParsePaths(raw))
	for _, res := range results {
		e.metrics.ObservePath(res.Matched)
		logger.DebugWith("Path matched", domainlog.Fields{
			"path":    res.Path.String(),
			"matched": res.Matched,
			"pattern": res.Pattern.String(),
		})
	}
	span.SetAttributes(attribute.Int(domaintracing.AttrPaths, len(results)))
	return results
}

func (e *Engine) encode(ctx context.Context, enc batch.Encoder, out io.Writer, results []pattern.Result) error {
	_, span := e.tracer.Start(ctx, domaintracing.SpanEncode)
	defer span.End()

	if err := enc.Encode(out, results); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
