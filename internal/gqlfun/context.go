package gqlfun

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

// CreateOperationContext parses query and, when schema is given, validates it against schema.
func CreateOperationContext(ctx context.Context, schema *ast.Schema, query string, variables map[string]interface{}) (*graphql.OperationContext, gqlerror.List) {
	queryDoc, err := parser.ParseQuery(&ast.Source{
		Input:   query,
		BuiltIn: false,
	})
	if err != nil {
		return nil, gqlerror.List{asGQLError(err)}
	}
	if schema != nil {
		gErrs := validator.Validate(schema, queryDoc)
		if len(gErrs) != 0 {
			return nil, gErrs
		}
	}
	if len(queryDoc.Operations) == 0 {
		return nil, gqlerror.List{gqlerror.Errorf("must provide an operation")}
	}

	oc := &graphql.OperationContext{
		RawQuery:             query,
		Variables:            variables,
		OperationName:        "",
		Doc:                  queryDoc,
		Operation:            queryDoc.Operations[0],
		DisableIntrospection: false,
		RecoverFunc:          nil,
		ResolverMiddleware: func(ctx context.Context, next graphql.Resolver) (res interface{}, err error) {
			return next(ctx)
		},
		Stats: graphql.Stats{},
	}

	return oc, nil
}

// WithFieldContext returns ctx as a resolver for the field reached by following responseNames
// from the operation root would see it. Fields are collected by gqlgen, so repeated selections
// of one response name arrive merged into a single CollectedField.
// Without a schema every type condition in the document is treated as satisfied.
func WithFieldContext(ctx context.Context, oc *graphql.OperationContext, responseNames ...string) (context.Context, error) {
	ctx = graphql.WithOperationContext(ctx, oc)

	satisfies := typeConditions(oc.Doc)
	selectionSet := oc.Operation.SelectionSet
	objectName := "Query"
	for _, responseName := range responseNames {
		field, ok := findCollectedField(graphql.CollectFields(oc, selectionSet, satisfies), responseName)
		if !ok {
			return nil, fmt.Errorf("field %s is not found", responseName)
		}
		ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
			Object: objectName,
			Field:  field,
		})
		selectionSet = field.Selections
		objectName = field.Name
	}

	return ctx, nil
}

func findCollectedField(fields []graphql.CollectedField, responseName string) (graphql.CollectedField, bool) {
	for _, field := range fields {
		if field.Alias == responseName {
			return field, true
		}
	}
	return graphql.CollectedField{}, false
}

func typeConditions(doc *ast.QueryDocument) []string {
	seen := make(map[string]struct{})
	var result []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	var walk func(selectionSet ast.SelectionSet)
	walk = func(selectionSet ast.SelectionSet) {
		for _, selection := range selectionSet {
			switch selection := selection.(type) {
			case *ast.Field:
				walk(selection.SelectionSet)
			case *ast.InlineFragment:
				add(selection.TypeCondition)
				walk(selection.SelectionSet)
			}
		}
	}

	for _, fragment := range doc.Fragments {
		add(fragment.TypeCondition)
		walk(fragment.SelectionSet)
	}
	for _, operation := range doc.Operations {
		walk(operation.SelectionSet)
	}

	return result
}

func asGQLError(err error) *gqlerror.Error {
	var gErr *gqlerror.Error
	if errors.As(err, &gErr) {
		return gErr
	}
	return gqlerror.Errorf("%s", err.Error())
}
