package match

import (
	"errors"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestResolveFragment(t *testing.T) {
	doc := mustParseQuery(t, heredoc.Doc(`
		{ ...Outer }
		fragment Outer on Query {
			a: thing { x }
			other
			...Inner
			... on Query {
				c: thing
			}
		}
		fragment Inner on Query {
			b: thing { y }
		}
		fragment Broken on Query {
			...Nowhere
		}
	`))
	fragments := NewFragmentMap(doc.Fragments)

	fields, err := ResolveFragment(fragments, "Outer", "thing")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, field := range fields {
		got = append(got, field.Alias)
	}
	if want := []string{"a", "b", "c"}; !equalStrings(got, want) {
		t.Errorf("unexpected fields: %v, want %v", got, want)
	}

	fields, err = ResolveFragment(fragments, "Inner", "other")
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 0 {
		t.Errorf("unexpected fields: %v", fields)
	}

	_, err = ResolveFragment(fragments, "Unknown", "thing")
	if !errors.Is(err, ErrUndefinedFragment) {
		t.Errorf("unexpected error: %v", err)
	}

	_, err = ResolveFragment(fragments, "Broken", "thing")
	if !errors.Is(err, ErrUndefinedFragment) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolveFragment_unexpectedNode(t *testing.T) {
	fragments := FragmentMap{
		"Holey": &ast.FragmentDefinition{
			Name:         "Holey",
			SelectionSet: ast.SelectionSet{&ast.Field{Name: "a"}, nil},
		},
	}

	_, err := ResolveFragment(fragments, "Holey", "a")
	if !errors.Is(err, ErrUnexpectedNodeKind) {
		t.Errorf("unexpected error: %v", err)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
