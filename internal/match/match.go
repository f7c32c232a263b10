package match

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/querymatch/internal/log"
	"github.com/vvakame/querymatch/internal/result"
)

// Match matches pattern against a single target selection set.
// targetFragments resolves the spreads found on the target side.
func Match(ctx context.Context, pattern *Pattern, target ast.SelectionSet, targetFragments FragmentMap) (*result.Tree, error) {
	if pattern == nil || len(pattern.SelectionSet) == 0 {
		return nil, emptyPattern()
	}

	m := newMatcher(pattern, targetFragments)
	return m.match(ctx, []scope{{selectionSet: pattern.SelectionSet}}, scope{selectionSet: target})
}

type matcher struct {
	pattern *resolver
	target  *resolver
}

func newMatcher(pattern *Pattern, targetFragments FragmentMap) *matcher {
	return &matcher{
		pattern: &resolver{fragments: pattern.Fragments},
		target:  &resolver{fragments: targetFragments},
	}
}

func (m *matcher) match(ctx context.Context, patternParts []scope, target scope) (*result.Tree, error) {
	logger := log.FromContext(ctx)

	reqs := &requirements{}
	for _, part := range patternParts {
		err := m.pattern.collectRequirements(part.selectionSet, part.path, reqs)
		if err != nil {
			return nil, err
		}
	}

	tree := &result.Tree{}
	for _, req := range reqs.list() {
		candidates, err := m.target.candidates(target.selectionSet, req.name, target.path)
		if err != nil {
			return nil, err
		}

		logger.V(2).Info(
			"collected candidates",
			"field", req.name,
			"candidates", len(candidates),
			"leaf", req.isLeaf(),
		)

		entry := &result.Entry{Name: req.name}
		if req.isLeaf() {
			// existence is enough, the depth of the candidate doesn't matter
			entry.Leaf = len(candidates) != 0
		} else {
			entry.Branches = make([]*result.Branch, 0, len(candidates))
			for _, c := range candidates {
				child, err := m.match(ctx, req.parts, c.children())
				if err != nil {
					return nil, err
				}
				entry.Branches = append(entry.Branches, &result.Branch{
					ResponseName: responseName(c.field),
					Tree:         child,
				})
			}
		}
		tree.Entries = append(tree.Entries, entry)
	}

	return tree, nil
}
