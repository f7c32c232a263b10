package match

import (
	"context"
	"testing"

	testlogr "github.com/go-logr/logr/testing"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vvakame/querymatch/internal/log"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	return log.WithLogger(context.Background(), testlogr.NewTestLogger(t))
}

func mustParseQuery(t *testing.T, query string) *ast.QueryDocument {
	t.Helper()

	doc, gErr := parser.ParseQuery(&ast.Source{
		Name:  t.Name(),
		Input: query,
	})
	if gErr != nil {
		t.Fatal(gErr)
	}
	return doc
}

func mustPattern(t *testing.T, query string) *Pattern {
	t.Helper()

	p, err := PatternFromDocument(mustParseQuery(t, query), "")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// rootFieldsTarget turns the top level fields of the first operation into a FieldsTarget,
// the way a resolver receives several field nodes at once.
func rootFieldsTarget(t *testing.T, query string) *FieldsTarget {
	t.Helper()

	doc := mustParseQuery(t, query)
	target := &FieldsTarget{
		RootFields: []*ast.Field{},
		Fragments:  doc.Fragments,
	}
	for _, selection := range doc.Operations[0].SelectionSet {
		field, ok := selection.(*ast.Field)
		if !ok {
			t.Fatalf("unexpected selection: %T", selection)
		}
		target.RootFields = append(target.RootFields, field)
	}
	return target
}

func reachable(t *testing.T, pattern string, target Target, opts ...Option) (bool, error) {
	t.Helper()

	normalized, err := Normalize(target)
	if err != nil {
		return false, err
	}
	return Reachable(testContext(t), mustPattern(t, pattern), normalized, opts...)
}
