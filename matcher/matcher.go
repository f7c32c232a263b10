package matcher

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vvakame/querymatch/internal/log"
	"github.com/vvakame/querymatch/internal/match"
	"github.com/vvakame/querymatch/internal/result"
)

type (
	// Target is either a *DocumentTarget or a *FieldsTarget.
	Target = match.Target
	// DocumentTarget is a whole parsed query document.
	DocumentTarget = match.DocumentTarget
	// FieldsTarget is the field nodes a resolver is invoked for, plus the operation's fragments.
	FieldsTarget = match.FieldsTarget
	// Result is the per-root match detail returned by Explain.
	Result = result.Tree
)

type config struct {
	patternOperationName string
	matchOpts            []match.Option
}

type Option func(cfg *config)

// WithPatternOperationName selects the pattern operation by name instead of taking the first one.
func WithPatternOperationName(operationName string) Option {
	return func(cfg *config) {
		cfg.patternOperationName = operationName
	}
}

// WithParallelRoots evaluates the roots of a FieldsTarget concurrently.
func WithParallelRoots(parallel bool) Option {
	return func(cfg *config) {
		cfg.matchOpts = append(cfg.matchOpts, match.WithParallelRoots(parallel))
	}
}

// DoesQueryMatch reports whether the shape of pattern's operation is reachable inside target.
// Aliases are ignored on both sides, every aliased occurrence in target is tried as an
// alternative branch, and fragments are expanded inline.
func DoesQueryMatch(ctx context.Context, pattern *ast.QueryDocument, target Target, opts ...Option) (bool, error) {
	cfg := newConfig(opts)

	p, normalized, err := prepare(pattern, target, cfg)
	if err != nil {
		return false, err
	}

	ok, err := match.Reachable(ctx, p, normalized, cfg.matchOpts...)
	if err != nil {
		return false, err
	}

	log.Named(ctx, "matcher").V(1).Info(
		"query matched",
		"reachable", ok,
		"roots", len(normalized.Roots),
	)

	return ok, nil
}

// Explain returns the result tree for each target root. The match succeeds when any of them is reachable,
// see IsReachable.
func Explain(ctx context.Context, pattern *ast.QueryDocument, target Target, opts ...Option) ([]*Result, error) {
	cfg := newConfig(opts)

	p, normalized, err := prepare(pattern, target, cfg)
	if err != nil {
		return nil, err
	}

	return match.Explain(ctx, p, normalized, cfg.matchOpts...)
}

// IsReachable reports whether every field required by the pattern has a live branch in r.
func IsReachable(r *Result) bool {
	return result.IsReachable(r)
}

// DoesQueryStringMatch parses both sources and calls DoesQueryMatch with a DocumentTarget.
func DoesQueryStringMatch(ctx context.Context, pattern string, target string, opts ...Option) (bool, error) {
	patternDoc, gErr := parser.ParseQuery(&ast.Source{
		Name:  "pattern",
		Input: pattern,
	})
	if gErr != nil {
		return false, gErr
	}

	targetDoc, gErr := parser.ParseQuery(&ast.Source{
		Name:  "target",
		Input: target,
	})
	if gErr != nil {
		return false, gErr
	}

	return DoesQueryMatch(ctx, patternDoc, &DocumentTarget{Document: targetDoc}, opts...)
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func prepare(pattern *ast.QueryDocument, target Target, cfg *config) (*match.Pattern, *match.Normalized, error) {
	p, err := match.PatternFromDocument(pattern, cfg.patternOperationName)
	if err != nil {
		return nil, nil, err
	}

	normalized, err := match.Normalize(target)
	if err != nil {
		return nil, nil, err
	}

	return p, normalized, nil
}
