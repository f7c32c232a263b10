package match

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// ResolveFragment returns every field named fieldName reachable through the named fragment,
// expanding nested fragment spreads and inline fragments in selection order.
func ResolveFragment(fragments FragmentMap, fragmentName string, fieldName string) ([]*ast.Field, error) {
	r := &resolver{fragments: fragments}
	found, err := r.resolve(&ast.FragmentSpread{Name: fragmentName}, fieldName, nil)
	if err != nil {
		return nil, err
	}

	result := make([]*ast.Field, 0, len(found))
	for _, c := range found {
		result = append(result, c.field)
	}
	return result, nil
}

// scope is a selection set together with the fragments it is lexically nested in,
// outermost first. A spread of any of those fragments inside it is a cycle.
type scope struct {
	selectionSet ast.SelectionSet
	path         []string
}

type candidate struct {
	field *ast.Field
	path  []string
}

func (c *candidate) children() scope {
	return scope{selectionSet: c.field.SelectionSet, path: c.path}
}

type resolver struct {
	fragments FragmentMap
}

// candidates collects the fields named fieldName among selectionSet, looking through fragments.
func (r *resolver) candidates(selectionSet ast.SelectionSet, fieldName string, path []string) ([]*candidate, error) {
	var result []*candidate
	for _, selection := range selectionSet {
		switch selection := selection.(type) {
		case *ast.Field:
			if selection == nil {
				return nil, unexpectedNodeKind(selection)
			}
			if selection.Name == fieldName {
				result = append(result, &candidate{field: selection, path: path})
			}

		case *ast.FragmentSpread:
			if selection == nil {
				return nil, unexpectedNodeKind(selection)
			}
			found, err := r.resolve(selection, fieldName, path)
			if err != nil {
				return nil, err
			}
			result = append(result, found...)

		case *ast.InlineFragment:
			if selection == nil {
				return nil, unexpectedNodeKind(selection)
			}
			found, err := r.candidates(selection.SelectionSet, fieldName, path)
			if err != nil {
				return nil, err
			}
			result = append(result, found...)

		default:
			return nil, unexpectedNodeKind(selection)
		}
	}

	return result, nil
}

func (r *resolver) resolve(spread *ast.FragmentSpread, fieldName string, path []string) ([]*candidate, error) {
	fragment, err := r.enter(spread, path)
	if err != nil {
		return nil, err
	}

	return r.candidates(fragment.SelectionSet, fieldName, extendPath(path, spread.Name))
}

// enter looks the spread up, failing on unknown names and on names already being expanded.
func (r *resolver) enter(spread *ast.FragmentSpread, path []string) (*ast.FragmentDefinition, error) {
	for i, name := range path {
		if name == spread.Name {
			return nil, cyclicFragmentReference(spread, path[i:])
		}
	}

	fragment, ok := r.fragments[spread.Name]
	if !ok || fragment == nil {
		return nil, undefinedFragment(spread)
	}

	return fragment, nil
}

// extendPath never writes into the backing array of path, siblings share it.
func extendPath(path []string, name string) []string {
	result := make([]string, 0, len(path)+1)
	result = append(result, path...)
	return append(result, name)
}
