package matcher

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/querymatch/internal/match"
)

// FieldTargetFromContext builds a FieldsTarget for the field currently being resolved by gqlgen.
// The pattern is then matched against the sub selection of that field.
// gqlgen keeps only the first node of a field selected more than once and merges the sub
// selections of every occurrence into CollectedField.Selections, so the root is built from those.
func FieldTargetFromContext(ctx context.Context) (*FieldsTarget, error) {
	fc := graphql.GetFieldContext(ctx)
	if fc == nil || fc.Field.Field == nil {
		return nil, match.NoRootNodesFound()
	}

	var fragments ast.FragmentDefinitionList
	if graphql.HasOperationContext(ctx) {
		if oc := graphql.GetOperationContext(ctx); oc.Doc != nil {
			fragments = oc.Doc.Fragments
		}
	}

	selectionSet := fc.Field.Selections
	if selectionSet == nil {
		selectionSet = fc.Field.SelectionSet
	}
	root := &ast.Field{
		Alias:        fc.Field.Alias,
		Name:         fc.Field.Name,
		Position:     fc.Field.Position,
		SelectionSet: selectionSet,
	}

	return &FieldsTarget{
		RootFields: []*ast.Field{root},
		Fragments:  fragments,
	}, nil
}

// FieldMatches reports whether the current gqlgen field selects the shape of pattern.
//
//	func (r *queryResolver) Document(ctx context.Context) (*model.Document, error) {
//		withNested, err := matcher.FieldMatches(ctx, withNestedPattern)
//		...
//	}
func FieldMatches(ctx context.Context, pattern *ast.QueryDocument, opts ...Option) (bool, error) {
	target, err := FieldTargetFromContext(ctx)
	if err != nil {
		return false, err
	}

	return DoesQueryMatch(ctx, pattern, target, opts...)
}
