package match

import (
	"context"
	"runtime"

	"github.com/vvakame/querymatch/internal/log"
	"github.com/vvakame/querymatch/internal/result"
	"golang.org/x/sync/errgroup"
)

type rootsConfig struct {
	parallel bool
}

type Option func(cfg *rootsConfig)

// WithParallelRoots evaluates every root concurrently. Results and errors are the same
// as in sequential mode, but there is no short-circuit on the first live root.
func WithParallelRoots(parallel bool) Option {
	return func(cfg *rootsConfig) {
		cfg.parallel = parallel
	}
}

// Reachable reports whether pattern is reachable from at least one root of target.
func Reachable(ctx context.Context, pattern *Pattern, target *Normalized, opts ...Option) (bool, error) {
	logger := log.Named(ctx, "match")

	cfg := &rootsConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if pattern == nil || len(pattern.SelectionSet) == 0 {
		return false, emptyPattern()
	}

	if cfg.parallel {
		outcomes := evaluateParallel(ctx, pattern, target)
		for i, outcome := range outcomes {
			if outcome.err != nil {
				return false, outcome.err
			}
			if result.IsReachable(outcome.tree) {
				logger.V(1).Info("root is reachable", "index", i, "root", target.Roots[i].Name)
				return true, nil
			}
		}
		return false, nil
	}

	m := newMatcher(pattern, target.Fragments)
	for i, root := range target.Roots {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		tree, err := m.matchRoot(ctx, pattern, root)
		if err != nil {
			return false, err
		}
		logger.V(1).Info("root evaluated", "index", i, "root", root.Name, "result", tree)
		if result.IsReachable(tree) {
			return true, nil
		}
	}

	return false, nil
}

// Explain returns the result tree of every root, in root order.
func Explain(ctx context.Context, pattern *Pattern, target *Normalized, opts ...Option) ([]*result.Tree, error) {
	cfg := &rootsConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if pattern == nil || len(pattern.SelectionSet) == 0 {
		return nil, emptyPattern()
	}

	trees := make([]*result.Tree, 0, len(target.Roots))
	if cfg.parallel {
		for _, outcome := range evaluateParallel(ctx, pattern, target) {
			if outcome.err != nil {
				return nil, outcome.err
			}
			trees = append(trees, outcome.tree)
		}
		return trees, nil
	}

	m := newMatcher(pattern, target.Fragments)
	for _, root := range target.Roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tree, err := m.matchRoot(ctx, pattern, root)
		if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}

	return trees, nil
}

func (m *matcher) matchRoot(ctx context.Context, pattern *Pattern, root *Root) (*result.Tree, error) {
	tree, err := m.match(ctx, []scope{{selectionSet: pattern.SelectionSet}}, scope{selectionSet: root.SelectionSet})
	if err != nil {
		return nil, err
	}
	tree.Name = root.Name
	return tree, nil
}

type outcome struct {
	tree *result.Tree
	err  error
}

// evaluateParallel keeps every per-root error instead of failing fast,
// so the caller can pick the first one in root order.
func evaluateParallel(ctx context.Context, pattern *Pattern, target *Normalized) []*outcome {
	logger := log.Named(ctx, "match")

	outcomes := make([]*outcome, len(target.Roots))
	m := newMatcher(pattern, target.Fragments)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, root := range target.Roots {
		i, root := i, root
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				outcomes[i] = &outcome{err: err}
				return nil
			}
			tree, err := m.matchRoot(egCtx, pattern, root)
			outcomes[i] = &outcome{tree: tree, err: err}
			logger.V(1).Info("root evaluated", "index", i, "root", root.Name, "result", tree)
			return nil
		})
	}
	_ = eg.Wait()

	return outcomes
}
